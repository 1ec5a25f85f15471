// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skeleton provides the loading placeholders of form controls.
package skeleton

import (
	_ "embed"

	"golang.org/x/net/html"

	"cogentcore.org/dotcom/core"
)

//go:embed skeleton.css
var skeletonCSS string

// Styles is the stylesheet of the skeleton elements.
var Styles = core.NewStyleSheet(skeletonCSS)

// TextareaSkeletonTag is the tag of [TextareaSkeleton].
const TextareaSkeletonTag = core.Prefix + "-textarea-skeleton"

// TextareaSkeleton is the placeholder of a text area while it loads.
type TextareaSkeleton struct {
	core.ElementBase
}

func (s *TextareaSkeleton) Init() {
	s.Tag = TextareaSkeletonTag
}

func (s *TextareaSkeleton) Render() []*html.Node {
	return []*html.Node{
		core.El("span", core.Attrs("class", core.Class(core.Prefix, "label", "skeleton"))),
		core.El("div", core.Attrs("class", core.Class(core.Prefix, "skeleton", "text-area"))),
	}
}
