// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cta provides the call to action elements: card footers that
// show a link or a video affordance, and the card that keeps its footer
// in sync with its own call to action.
package cta

import (
	_ "embed"
	"strings"

	strip "github.com/grokify/html-strip-tags-go"

	"cogentcore.org/dotcom/card"
	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/mediafmt"
	"cogentcore.org/dotcom/traits"
)

//go:embed cta.css
var ctaCSS string

// Styles is the stylesheet of the call to action elements.
var Styles = core.NewStyleSheet(ctaCSS)

// Tags and selectors of the call to action elements.
const (
	// CardLinkTag is the tag of [CardLinkCTA].
	CardLinkTag = core.StablePrefix + "-card-link-cta"

	// CardFooterTag is the tag of [CardCTAFooter].
	CardFooterTag = core.StablePrefix + "-card-cta-footer"

	// FeatureFooterTag is the tag of [FeatureCTAFooter].
	FeatureFooterTag = core.StablePrefix + "-feature-cta-footer"

	// SelectorFooter selects the footer that a [CardLinkCTA] keeps in sync.
	SelectorFooter = CardFooterTag

	// SelectorHeading selects the heading whose text a [CardLinkCTA]
	// uses as the accessible label of its footer.
	SelectorHeading = core.StablePrefix + "-card-link-heading"

	// StableSelector is the stable selector of [CardLinkCTA].
	StableSelector = core.StablePrefix + "--card-link-cta"

	// FeatureFooterStableSelector is the stable selector of [FeatureCTAFooter].
	FeatureFooterStableSelector = core.StablePrefix + "--feature-cta-footer"
)

// Config is the displayable configuration of a call to action footer,
// without its formatters.
type Config struct {
	AltAriaLabel      string
	CTAType           traits.CTAType
	VideoDuration     *float64
	VideoName         string
	VideoDescription  string
	VideoThumbnailURL string
}

// CardCTAFooter is a card footer that shows a link, or a video
// affordance with the caption and duration of the video when its
// CTA type is [traits.CTAVideo].
type CardCTAFooter struct {
	card.Footer
	traits.CTA
	traits.Video
}

func (f *CardCTAFooter) Init() {
	f.Footer.Init()
	f.Tag = CardFooterTag
	traits.Apply(f, &f.CTA, &f.Video)
	f.FormatCaption = mediafmt.FormatCaption
	f.FormatDuration = mediafmt.FormatDuration
	f.Hooks = footerHooks(&f.Footer, &f.CTA, &f.Video)
}

// Config returns the current configuration of the footer.
func (f *CardCTAFooter) Config() Config {
	return Config{
		AltAriaLabel:      f.AltAriaLabel,
		CTAType:           f.CTAType,
		VideoDuration:     f.VideoDuration,
		VideoName:         f.VideoName,
		VideoDescription:  f.VideoDescription,
		VideoThumbnailURL: f.VideoThumbnailURL,
	}
}

// FeatureCTAFooter is the feature card version of [CardCTAFooter].
// It does not support video thumbnails, and its video name can only
// be set through code.
type FeatureCTAFooter struct {
	card.FeatureFooter
	traits.CTA
	traits.Video
}

func (f *FeatureCTAFooter) Init() {
	f.FeatureFooter.Init()
	f.Tag = FeatureFooterTag
	traits.Apply(f, &f.CTA, &f.Video)
	f.Props.Remove(traits.VideoThumbnailURLProperty)
	f.Props.Define(core.Property{Name: traits.VideoNameProperty})
	f.FormatCaption = mediafmt.FormatCaption
	f.FormatDuration = mediafmt.FormatDuration
	f.Hooks = footerHooks(&f.Footer, &f.CTA, &f.Video)
}

// Config returns the current configuration of the footer.
func (f *FeatureCTAFooter) Config() Config {
	return Config{
		AltAriaLabel:     f.AltAriaLabel,
		CTAType:          f.CTAType,
		VideoDuration:    f.VideoDuration,
		VideoName:        f.VideoName,
		VideoDescription: f.VideoDescription,
	}
}

// footerHooks returns the render hooks of a footer with the given traits.
func footerHooks(f *card.Footer, c *traits.CTA, v *traits.Video) card.FooterHooks {
	return card.FooterHooks{
		Content:  v.Wrap(f.RenderContent, c.IsVideo),
		Icon:     c.IconName,
		Target:   c.LinkTarget,
		Download: c.Download,
		Title: func() string {
			if !c.IsVideo() {
				return ""
			}
			return strings.Join(strings.Fields(strip.StripTags(v.VideoDescription)), " ")
		},
	}
}
