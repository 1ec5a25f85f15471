// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package card provides the link card elements and their footers.
package card

import (
	_ "embed"

	"golang.org/x/net/html"

	"cogentcore.org/dotcom/core"
)

//go:embed card.css
var cardCSS string

// Styles is the stylesheet of the card elements.
var Styles = core.NewStyleSheet(cardCSS)

// Tags of the card elements.
var (
	LinkTag          = core.StableTag("card-link")
	LinkHeadingTag   = core.StableTag("card-link-heading")
	FooterTag        = core.StableTag("card-footer")
	FeatureFooterTag = core.StableTag("feature-card-footer")
)

// Link is a card that is a link as a whole. Its light DOM holds the heading,
// the copy and the footer of the card.
type Link struct {
	core.ElementBase

	// Href is the link target of the card.
	Href string

	// HeadingRenderer renders the heading part of the card in place of
	// [Link.RenderHeading]. Types that embed Link set it in Init.
	HeadingRenderer func() []*html.Node `copier:"-" json:"-"`
}

func (l *Link) Init() {
	l.Tag = LinkTag
	l.Props.Define(core.StringProperty("href", "href", func() string { return l.Href }, l.SetHref))
}

// SetHref sets [Link.Href].
func (l *Link) SetHref(v string) {
	core.SetValue(&l.ElementBase, &l.Href, "href", v)
}

// RenderHeading renders the default heading part, which is the heading slot.
func (l *Link) RenderHeading() []*html.Node {
	return []*html.Node{core.Slot("heading")}
}

func (l *Link) Render() []*html.Node {
	heading := l.RenderHeading
	if l.HeadingRenderer != nil {
		heading = l.HeadingRenderer
	}
	kids := append(heading(), core.Slot(""), core.Slot("footer"))
	content := core.El("div", core.Attrs("class", core.Class(core.Prefix, "card__content")), kids...)
	wrapper := core.El("div", core.Attrs("class", core.Class(core.Prefix, "card__wrapper")),
		core.Slot("image"), content)
	return []*html.Node{
		core.El("a", core.Attrs(
			"class", core.Class(core.Prefix, "card", "card--link"),
			"part", "link",
			"href", l.Href,
		), wrapper),
	}
}

// LinkHeading is the heading of a [Link].
type LinkHeading struct {
	core.ElementBase
}

func (h *LinkHeading) Init() {
	h.Tag = LinkHeadingTag
}

func (h *LinkHeading) Render() []*html.Node {
	return []*html.Node{
		core.El("div", core.Attrs("class", core.Class(core.Prefix, "card__heading"), "role", "heading"),
			core.Slot("")),
	}
}
