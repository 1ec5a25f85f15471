// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabs provides the tab element of a tab list.
package tabs

import (
	_ "embed"
	"strconv"

	"golang.org/x/net/html"

	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/tree"
)

//go:embed tabs.css
var tabsCSS string

// Styles is the stylesheet of the tab elements.
var Styles = core.NewStyleSheet(tabsCSS)

// TabTag is the tag of [Tab].
const TabTag = core.Prefix + "-tab"

// Tab is one tab of a tab list.
type Tab struct {
	core.ElementBase

	// Value is the value of the tab, which identifies it in its list.
	Value string

	// Target is the id of the panel the tab shows.
	Target string

	// Disabled is whether the tab can not be selected.
	Disabled bool

	// Selected is whether the tab is the selected tab.
	Selected bool
}

func (t *Tab) Init() {
	t.Tag = TabTag
	t.Props.Define(core.StringProperty("value", "value", func() string { return t.Value }, t.SetValue))
	t.Props.Define(core.StringProperty("target", "target", func() string { return t.Target }, t.SetTarget))
	disabled := core.BoolProperty("disabled", "disabled", func() bool { return t.Disabled }, t.SetDisabled)
	disabled.Reflect = true
	t.Props.Define(disabled)
	selected := core.BoolProperty("selected", "selected", func() bool { return t.Selected }, t.SetSelected)
	selected.Reflect = true
	t.Props.Define(selected)
	t.RequestUpdate("selected")
}

// SetValue sets [Tab.Value].
func (t *Tab) SetValue(v string) {
	core.SetValue(&t.ElementBase, &t.Value, "value", v)
}

// SetTarget sets [Tab.Target].
func (t *Tab) SetTarget(v string) {
	core.SetValue(&t.ElementBase, &t.Target, "target", v)
}

// SetDisabled sets [Tab.Disabled].
func (t *Tab) SetDisabled(v bool) {
	core.SetValue(&t.ElementBase, &t.Disabled, "disabled", v)
}

// SetSelected sets [Tab.Selected].
func (t *Tab) SetSelected(v bool) {
	core.SetValue(&t.ElementBase, &t.Selected, "selected", v)
}

// NavAttrs returns the attributes of the navigation control of the tab.
func (t *Tab) NavAttrs() []html.Attribute {
	attrs := core.Attrs(
		"class", core.Class(core.Prefix, "tabs__nav-link"),
		"role", "tab",
		"aria-selected", strconv.FormatBool(t.Selected),
	)
	if t.Disabled {
		attrs = append(attrs, html.Attribute{Key: "disabled"})
	}
	return attrs
}

func (t *Tab) Render() []*html.Node {
	attrs := append(t.NavAttrs(), html.Attribute{Key: "tabindex", Val: "-1"})
	return []*html.Node{core.El("a", attrs, core.Slot(""))}
}

// Select selects the tab with the given value among the tabs under
// root, and deselects all others. It returns the selected tab, or nil
// if no enabled tab has the value.
func Select(root tree.Node, value string) *Tab {
	var sel *Tab
	var all []*Tab
	root.AsTree().WalkDown(func(n tree.Node) bool {
		if t, ok := n.(interface{ AsTab() *Tab }); ok {
			all = append(all, t.AsTab())
		}
		return tree.Continue
	})
	for _, t := range all {
		if sel == nil && !t.Disabled && t.Value == value {
			sel = t
		}
	}
	if sel == nil {
		return nil
	}
	for _, t := range all {
		t.SetSelected(t == sel)
	}
	return sel
}

// AsTab returns the [Tab] of the element, so that types that
// embed Tab are found by [Select].
func (t *Tab) AsTab() *Tab {
	return t
}
