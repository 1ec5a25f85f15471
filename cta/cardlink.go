// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cta

import (
	"strings"

	"golang.org/x/net/html"

	"cogentcore.org/dotcom/card"
	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/mediafmt"
	"cogentcore.org/dotcom/traits"
)

// MonitoredProperties are the properties of a [CardLinkCTA] whose
// change makes it reconcile its footer.
var MonitoredProperties = []string{
	traits.CTATypeProperty,
	traits.FormatCaptionProperty,
	traits.FormatDurationProperty,
	traits.VideoDurationProperty,
	traits.VideoNameProperty,
}

// FooterSetter is the setter surface of a footer that a
// [CardLinkCTA] writes its derived configuration into.
type FooterSetter interface {
	SetAltAriaLabel(v string)
	SetCTAType(v traits.CTAType)
	SetVideoDuration(v *float64)
	SetVideoName(v string)
	SetVideoDescription(v string)
	SetFormatCaption(v mediafmt.CaptionFunc)
	SetFormatDuration(v mediafmt.DurationFunc)
}

// CardLinkCTA is a link card with a call to action. Whenever its CTA
// type, video metadata or formatters change, it writes the derived
// configuration into the first [CardCTAFooter] in its light DOM. The
// card is the source of truth; the footer never writes back.
type CardLinkCTA struct {
	card.Link
	traits.CTA
	traits.Video

	// Finder locates the footer and the heading. If it is nil,
	// [core.DefaultFinder] is used.
	Finder core.Finder `copier:"-" json:"-"`
}

func (c *CardLinkCTA) Init() {
	c.Link.Init()
	c.Tag = CardLinkTag
	traits.Apply(c, &c.CTA, &c.Video)
	c.FormatCaption = mediafmt.FormatCaption
	c.HeadingRenderer = c.renderHeading
}

// renderHeading renders the video caption as the heading of
// video cards and the default heading otherwise.
func (c *CardLinkCTA) renderHeading() []*html.Node {
	if !c.IsVideo() {
		return c.Link.RenderHeading()
	}
	caption := c.CaptionFor(mediafmt.Caption{Name: c.VideoName})
	return []*html.Node{
		core.Slot("heading"),
		core.El(card.LinkHeadingTag, nil, core.TextNode(caption)),
	}
}

func (c *CardLinkCTA) Updated(changes core.Changes) {
	c.Link.Updated(changes)
	if !changes.HasAny(MonitoredProperties...) {
		return
	}
	c.Reconcile()
}

func (c *CardLinkCTA) finder() core.Finder {
	if c.Finder != nil {
		return c.Finder
	}
	return core.DefaultFinder
}

// Footer returns the footer the card keeps in sync, or nil.
func (c *CardLinkCTA) Footer() core.Element {
	if c.This == nil {
		return nil
	}
	return c.finder().QuerySelector(c.This, SelectorFooter)
}

// Reconcile writes the derived configuration of the card into its
// footer through the setters of the footer, which schedule its update.
// It returns false if there is no footer. The CTA type and video data
// are always written, so cleared values clear the footer; the
// formatters are only written if they are set on the card.
func (c *CardLinkCTA) Reconcile() bool {
	e := c.Footer()
	if e == nil {
		return false
	}
	footer, ok := e.(FooterSetter)
	if !ok {
		return false
	}
	footer.SetAltAriaLabel(c.AltAriaLabel())
	footer.SetCTAType(c.CTAType)
	footer.SetVideoDuration(c.VideoDuration)
	footer.SetVideoName(c.VideoName)
	footer.SetVideoDescription(c.VideoDescription)
	if c.FormatCaption != nil {
		footer.SetFormatCaption(c.FormatCaption)
	}
	if c.FormatDuration != nil {
		footer.SetFormatDuration(c.FormatDuration)
	}
	return true
}

// AltAriaLabel returns the accessible label for the footer: the video
// name, else the text of the heading, else the text of the card.
func (c *CardLinkCTA) AltAriaLabel() string {
	if c.VideoName != "" {
		return c.VideoName
	}
	if c.This == nil {
		return ""
	}
	if h := c.finder().QuerySelector(c.This, SelectorHeading); h != nil {
		if txt := strings.TrimSpace(core.TextContent(h)); txt != "" {
			return txt
		}
	}
	return strings.TrimSpace(core.TextContent(c.This))
}
