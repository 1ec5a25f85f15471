// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"golang.org/x/net/html"

	"cogentcore.org/dotcom/base/validate"
	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/mediafmt"
)

// Video property names.
const (
	VideoDurationProperty     = "videoDuration"
	VideoNameProperty         = "videoName"
	VideoDescriptionProperty  = "videoDescription"
	VideoThumbnailURLProperty = "videoThumbnailUrl"
	FormatCaptionProperty     = "formatCaption"
	FormatDurationProperty    = "formatDuration"
)

// ContentRenderer renders the content part of the shadow of an element.
type ContentRenderer func() []*html.Node

// Video is a trait that adds video metadata and formatters to an element,
// and can render the video affordance in place of the content of the element.
type Video struct {

	// VideoDuration is the duration of the video in seconds, or nil if unknown.
	VideoDuration *float64 `validate:"omitempty,gte=0"`

	// VideoName is the name of the video.
	VideoName string

	// VideoDescription is the description of the video. It may contain markup.
	VideoDescription string

	// VideoThumbnailURL is the URL of the thumbnail image of the video.
	VideoThumbnailURL string `validate:"omitempty,url"`

	// FormatCaption formats the caption from the video name and duration.
	// If it is nil, [mediafmt.FormatCaption] is used.
	FormatCaption mediafmt.CaptionFunc `json:"-"`

	// FormatDuration formats the video duration.
	// If it is nil, [mediafmt.FormatDuration] is used.
	FormatDuration mediafmt.DurationFunc `json:"-"`

	host *core.ElementBase
}

// Apply implements [Trait]. It binds the video-duration, video-name,
// video-description and video-thumbnail-url attributes, and the
// formatters as properties with no attribute.
func (t *Video) Apply(host core.Element) {
	t.host = host.AsElement()
	ps := &t.host.Props
	ps.Define(core.NumberProperty(VideoDurationProperty, "video-duration",
		func() *float64 { return t.VideoDuration }, t.SetVideoDuration))
	ps.Define(core.StringProperty(VideoNameProperty, "video-name",
		func() string { return t.VideoName }, t.SetVideoName))
	ps.Define(core.StringProperty(VideoDescriptionProperty, "video-description",
		func() string { return t.VideoDescription }, t.SetVideoDescription))
	ps.Define(core.StringProperty(VideoThumbnailURLProperty, "video-thumbnail-url",
		func() string { return t.VideoThumbnailURL }, t.SetVideoThumbnailURL))
	ps.Define(core.Property{Name: FormatCaptionProperty})
	ps.Define(core.Property{Name: FormatDurationProperty})
	t.host.RequestUpdate(VideoDurationProperty, VideoNameProperty, VideoDescriptionProperty,
		VideoThumbnailURLProperty, FormatCaptionProperty, FormatDurationProperty)
}

// SetVideoDuration sets [Video.VideoDuration].
func (t *Video) SetVideoDuration(v *float64) {
	core.SetPointer(t.host, &t.VideoDuration, VideoDurationProperty, v)
}

// SetVideoName sets [Video.VideoName].
func (t *Video) SetVideoName(v string) {
	core.SetValue(t.host, &t.VideoName, VideoNameProperty, v)
}

// SetVideoDescription sets [Video.VideoDescription].
func (t *Video) SetVideoDescription(v string) {
	core.SetValue(t.host, &t.VideoDescription, VideoDescriptionProperty, v)
}

// SetVideoThumbnailURL sets [Video.VideoThumbnailURL].
func (t *Video) SetVideoThumbnailURL(v string) {
	core.SetValue(t.host, &t.VideoThumbnailURL, VideoThumbnailURLProperty, v)
}

// SetFormatCaption sets [Video.FormatCaption].
func (t *Video) SetFormatCaption(v mediafmt.CaptionFunc) {
	core.SetFunc(t.host, &t.FormatCaption, FormatCaptionProperty, v)
}

// SetFormatDuration sets [Video.FormatDuration].
func (t *Video) SetFormatDuration(v mediafmt.DurationFunc) {
	core.SetFunc(t.host, &t.FormatDuration, FormatDurationProperty, v)
}

// Validate returns an error if the duration is negative or the
// thumbnail URL is not a URL.
func (t *Video) Validate() error {
	return validate.Struct(t)
}

// Duration returns the video duration formatted with the
// duration formatter in effect.
func (t *Video) Duration() string {
	f := t.FormatDuration
	if f == nil {
		f = mediafmt.FormatDuration
	}
	return f(mediafmt.Duration{Seconds: t.VideoDuration})
}

// Caption returns the caption formatted with the caption formatter
// in effect, from the video name and the formatted duration.
func (t *Video) Caption() string {
	return t.CaptionFor(mediafmt.Caption{Name: t.VideoName, Duration: t.Duration()})
}

// CaptionFor returns the given caption data formatted with the
// caption formatter in effect.
func (t *Video) CaptionFor(c mediafmt.Caption) string {
	f := t.FormatCaption
	if f == nil {
		f = mediafmt.FormatCaption
	}
	return f(c)
}

// RenderContent renders the video affordance: the thumbnail if any,
// and the caption.
func (t *Video) RenderContent() []*html.Node {
	var nodes []*html.Node
	if t.VideoThumbnailURL != "" {
		nodes = append(nodes, core.El("img", core.Attrs(
			"class", core.Class(core.StablePrefix, "card__video-thumbnail"),
			"src", t.VideoThumbnailURL,
			"alt", t.VideoName,
		)))
	}
	return append(nodes, core.El("span", core.Attrs("class", core.Class(core.Prefix, "card__cta__copy")),
		core.TextNode(t.Caption())))
}

// Wrap returns a [ContentRenderer] that renders the video affordance
// when active returns true and delegates to base otherwise.
func (t *Video) Wrap(base ContentRenderer, active func() bool) ContentRenderer {
	return func() []*html.Node {
		if active != nil && active() {
			return t.RenderContent()
		}
		if base == nil {
			return nil
		}
		return base()
	}
}
