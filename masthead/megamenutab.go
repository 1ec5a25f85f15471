// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package masthead provides the masthead elements of the cloud site.
package masthead

import (
	_ "embed"

	"golang.org/x/net/html"

	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/tabs"
)

//go:embed masthead.css
var mastheadCSS string

// Styles is the stylesheet of the masthead elements.
var Styles = core.NewStyleSheet(mastheadCSS)

// CloudMegaMenuTabTag is the tag of [CloudMegaMenuTab].
const CloudMegaMenuTabTag = core.StablePrefix + "-cloud-megamenu-tab"

// CloudMegaMenuTab is a tab of the cloud mega menu. It extends
// [tabs.Tab], rendering its navigation control as a button.
type CloudMegaMenuTab struct {
	tabs.Tab
}

func (t *CloudMegaMenuTab) Init() {
	t.Tab.Init()
	t.Tag = CloudMegaMenuTabTag
}

func (t *CloudMegaMenuTab) Render() []*html.Node {
	return []*html.Node{core.El("button", t.NavAttrs(), core.Slot(""))}
}
