// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package card

import (
	"golang.org/x/net/html"

	"cogentcore.org/dotcom/core"
)

// FooterHooks are the parts of the render of a [Footer] that types
// embedding it can replace. Nil hooks use the default of the footer.
type FooterHooks struct {

	// Content renders the content of the footer link.
	Content func() []*html.Node

	// Icon returns the name of the icon of the footer link.
	Icon func() string

	// Target returns the target window of the footer link.
	Target func() string

	// Download returns whether the footer link downloads its target.
	Download func() bool

	// Title returns the title of the footer link.
	Title func() string
}

// Footer is the footer of a card: a link with content and an icon.
type Footer struct {
	core.ElementBase

	// Href is the link target of the footer.
	Href string

	// AltAriaLabel is the accessible label of the footer link.
	AltAriaLabel string

	// Class is the class name of the footer link, without the prefix.
	Class string `copier:"-" json:"-"`

	// Hooks are the replaced parts of the render.
	Hooks FooterHooks `copier:"-" json:"-"`
}

func (f *Footer) Init() {
	f.Tag = FooterTag
	f.Class = "card__footer"
	f.Props.Define(core.StringProperty("href", "href", func() string { return f.Href }, f.SetHref))
	f.Props.Define(core.StringProperty("altAriaLabel", "alt-aria-label",
		func() string { return f.AltAriaLabel }, f.SetAltAriaLabel))
}

// SetHref sets [Footer.Href].
func (f *Footer) SetHref(v string) {
	core.SetValue(&f.ElementBase, &f.Href, "href", v)
}

// SetAltAriaLabel sets [Footer.AltAriaLabel].
func (f *Footer) SetAltAriaLabel(v string) {
	core.SetValue(&f.ElementBase, &f.AltAriaLabel, "altAriaLabel", v)
}

// RenderContent renders the default content, which is the default slot.
func (f *Footer) RenderContent() []*html.Node {
	return []*html.Node{core.Slot("")}
}

// RenderIcon renders the icon with the given name.
func (f *Footer) RenderIcon(name string) *html.Node {
	if name == "" {
		return nil
	}
	return core.El("svg", core.Attrs(
		"class", core.Class(core.Prefix, "card__cta"),
		"data-icon", name,
		"aria-hidden", "true",
	))
}

func (f *Footer) Render() []*html.Node {
	content := f.RenderContent
	if f.Hooks.Content != nil {
		content = f.Hooks.Content
	}
	icon := "arrow-right"
	if f.Hooks.Icon != nil {
		icon = f.Hooks.Icon()
	}
	kv := []string{
		"class", core.Class(core.Prefix, f.Class),
		"part", "link",
		"href", f.Href,
		"aria-label", f.AltAriaLabel,
	}
	if f.Hooks.Target != nil {
		kv = append(kv, "target", f.Hooks.Target())
	}
	if f.Hooks.Title != nil {
		kv = append(kv, "title", f.Hooks.Title())
	}
	attrs := core.Attrs(kv...)
	if f.Hooks.Download != nil && f.Hooks.Download() {
		attrs = append(attrs, html.Attribute{Key: "download"})
	}
	kids := append(content(), f.RenderIcon(icon))
	return []*html.Node{core.El("a", attrs, kids...)}
}

// FeatureFooter is the footer of a feature card, which shows its
// icon in a circle.
type FeatureFooter struct {
	Footer
}

func (f *FeatureFooter) Init() {
	f.Footer.Init()
	f.Tag = FeatureFooterTag
	f.Class = "feature-card__footer"
}
