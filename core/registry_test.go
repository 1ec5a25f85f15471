// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/dotcom/core"
)

type fancyWidget struct {
	widget
}

func newWidget() Element { return &widget{} }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	ss := NewStyleSheet(":host { display: block; }")
	require.NoError(t, r.Define("x-widget", newWidget, ss))
	assert.Error(t, r.Define("x-widget", newWidget, nil))
	assert.Error(t, r.Define("", newWidget, nil))

	assert.Error(t, r.Extend("x-fancy", "x-missing", func() Element { return &fancyWidget{} }, nil))
	require.NoError(t, r.Extend("x-fancy", "x-widget", func() Element { return &fancyWidget{} }, nil))
	require.NoError(t, r.Extend("x-fancier", "x-fancy", func() Element { return &fancyWidget{} }, nil))

	assert.Equal(t, []string{"x-widget", "x-fancy", "x-fancier"}, r.Tags())
	assert.Equal(t, []string{"x-fancier", "x-fancy", "x-widget"}, r.Lineage("x-fancier"))
	assert.True(t, r.IsA("x-fancier", "x-widget"))
	assert.True(t, r.IsA("x-widget", "x-widget"))
	assert.False(t, r.IsA("x-widget", "x-fancy"))
	assert.Nil(t, r.Lineage("x-none"))

	e, ok := r.New("x-fancy")
	require.True(t, ok)
	fw, ok := e.(*fancyWidget)
	require.True(t, ok)
	assert.Equal(t, "x-fancy", fw.Tag)
	assert.Nil(t, fw.StyleSheet)
	assert.Equal(t, []string{"label", "size", "open"}, fw.Props.Names())

	e, ok = r.New("x-widget")
	require.True(t, ok)
	assert.Same(t, ss, e.AsElement().StyleSheet)

	_, ok = r.New("x-none")
	assert.False(t, ok)
	def, ok := r.Lookup("x-fancy")
	require.True(t, ok)
	assert.Equal(t, "x-widget", def.Extends)
}

func TestStyleSheet(t *testing.T) {
	ss := NewStyleSheet(".a, .b { color: red; } @media print { .c { color: blue; } }")
	assert.Equal(t, []string{".a", ".b"}, ss.Selectors())
	assert.Contains(t, ss.String(), "color: red")

	var none *StyleSheet
	assert.Equal(t, "", none.String())
	assert.Nil(t, none.Selectors())
}
