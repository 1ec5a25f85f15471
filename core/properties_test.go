// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"

	. "cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/tree"
)

func TestPropertiesDefine(t *testing.T) {
	var p Properties
	assert.False(t, p.Define(Property{Name: "a", Attribute: "x"}))
	assert.False(t, p.Define(Property{Name: "b"}))
	assert.Equal(t, []string{"a", "b"}, p.Names())

	// same attribute: the later one replaces it in place
	assert.True(t, p.Define(Property{Name: "c", Attribute: "x"}))
	assert.Equal(t, []string{"c", "b"}, p.Names())
	assert.Equal(t, "c", p.ByAttribute("x").Name)
	assert.Nil(t, p.ByName("a"))

	// colliding with two entries removes the second one
	assert.True(t, p.Define(Property{Name: "b", Attribute: "x"}))
	assert.Equal(t, []string{"b"}, p.Names())
	assert.Equal(t, 1, p.Len())

	assert.True(t, p.Remove("b"))
	assert.False(t, p.Remove("b"))
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.ByAttribute(""))
}

func TestSetAttribute(t *testing.T) {
	w := tree.New[*widget]()
	w.SetAttribute("LABEL", "hello")
	assert.Equal(t, "hello", w.Label)
	v, ok := w.Attribute("label")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	w.SetAttribute("size", "12.5")
	if assert.NotNil(t, w.Size) {
		assert.Equal(t, 12.5, *w.Size)
	}
	w.SetAttribute("size", "big")
	assert.Nil(t, w.Size)

	w.SetAttribute("open", "")
	assert.True(t, w.Open)
	w.RemoveAttribute("open")
	assert.False(t, w.Open)

	w.RemoveAttribute("label")
	assert.Equal(t, "", w.Label)
	_, ok = w.Attribute("label")
	assert.False(t, ok)
}

func TestAttributesReflect(t *testing.T) {
	w := tree.New[*widget]()
	w.SetAttribute("data-kind", "demo")
	w.SetOpen(true)
	assert.Equal(t, []html.Attribute{
		{Key: "data-kind", Val: "demo"},
		{Key: "open", Val: ""},
	}, w.Attributes())

	// a property write is reflected even over a stale attribute value
	w.SetAttribute("open", "")
	w.SetOpen(false)
	_, ok := w.Attribute("open")
	assert.False(t, ok)
	assert.Equal(t, []html.Attribute{{Key: "data-kind", Val: "demo"}}, w.Attributes())
}

func TestUnboundAttribute(t *testing.T) {
	w := tree.New[*widget]()
	w.SetAttribute("title", "tip")
	assert.Empty(t, w.PendingChanges())
	v, ok := w.Attribute("title")
	assert.True(t, ok)
	assert.Equal(t, "tip", v)
}

func TestSetFunc(t *testing.T) {
	doc := NewDocument()
	w := tree.New[*widget](doc)
	doc.Flush()

	var f func() string
	g := func() string { return "g" }
	SetFunc(&w.ElementBase, &f, "fn", g)
	SetFunc(&w.ElementBase, &f, "fn", g)
	assert.Equal(t, "g", f())
	assert.True(t, w.PendingChanges().Has("fn"))
	assert.Equal(t, 1, doc.Scheduler.Pending())
}

func TestSetValueNilElement(t *testing.T) {
	var s string
	SetValue(nil, &s, "s", "set")
	assert.Equal(t, "set", s)
}
