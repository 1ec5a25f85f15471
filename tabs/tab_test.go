// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/tree"
)

func TestTabRender(t *testing.T) {
	doc := core.NewDocument()
	tb := tree.New[*Tab](doc)
	doc.Flush()
	assert.Equal(t, TabTag, tb.Tag)
	assert.Equal(t, `<a class="bx--tabs__nav-link" role="tab" aria-selected="false" tabindex="-1"><slot></slot></a>`,
		core.ShadowMarkup(tb))

	tb.SetAttribute("selected", "")
	tb.SetAttribute("disabled", "")
	doc.Flush()
	assert.True(t, tb.Selected)
	assert.Equal(t, `<a class="bx--tabs__nav-link" role="tab" aria-selected="true" disabled="" tabindex="-1"><slot></slot></a>`,
		core.ShadowMarkup(tb))
	_, ok := tb.Attribute("selected")
	assert.True(t, ok)

	tb.RemoveAttribute("selected")
	assert.False(t, tb.Selected)
	_, ok = tb.Attribute("selected")
	assert.False(t, ok)
}

func TestSelect(t *testing.T) {
	doc := core.NewDocument()
	list := core.NewGeneric(doc, "div")
	var all []*Tab
	for _, v := range []string{"a", "b", "c"} {
		tb := tree.New[*Tab](list)
		tb.SetValue(v)
		all = append(all, tb)
	}
	all[2].SetDisabled(true)
	doc.Flush()

	sel := Select(doc, "b")
	require.NotNil(t, sel)
	assert.Same(t, all[1], sel)
	assert.False(t, all[0].Selected)
	assert.True(t, all[1].Selected)

	assert.Nil(t, Select(doc, "c"))
	assert.True(t, all[1].Selected)
	assert.Nil(t, Select(doc, "missing"))

	Select(doc, "a")
	doc.Flush()
	assert.Contains(t, core.ShadowMarkup(all[0]), `aria-selected="true"`)
	assert.Contains(t, core.ShadowMarkup(all[1]), `aria-selected="false"`)
}
