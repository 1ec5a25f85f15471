// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package components registers all of the element types of the library.
package components

import (
	"fmt"

	"cogentcore.org/dotcom/base/errors"
	"cogentcore.org/dotcom/card"
	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/cta"
	"cogentcore.org/dotcom/masthead"
	"cogentcore.org/dotcom/skeleton"
	"cogentcore.org/dotcom/tabs"
)

// Register defines the tags of all element types in the given registry.
// Base types are defined before the types that extend them.
func Register(r *core.Registry) error {
	defs := []struct {
		tag, extends string
		new          func() core.Element
		styles       *core.StyleSheet
	}{
		{tag: card.LinkTag, new: func() core.Element { return &card.Link{} }, styles: card.Styles},
		{tag: card.LinkHeadingTag, new: func() core.Element { return &card.LinkHeading{} }, styles: card.Styles},
		{tag: card.FooterTag, new: func() core.Element { return &card.Footer{} }, styles: card.Styles},
		{tag: card.FeatureFooterTag, extends: card.FooterTag, new: func() core.Element { return &card.FeatureFooter{} }, styles: card.Styles},
		{tag: cta.CardFooterTag, extends: card.FooterTag, new: func() core.Element { return &cta.CardCTAFooter{} }, styles: cta.Styles},
		{tag: cta.FeatureFooterTag, extends: card.FeatureFooterTag, new: func() core.Element { return &cta.FeatureCTAFooter{} }, styles: cta.Styles},
		{tag: cta.CardLinkTag, extends: card.LinkTag, new: func() core.Element { return &cta.CardLinkCTA{} }, styles: cta.Styles},
		{tag: tabs.TabTag, new: func() core.Element { return &tabs.Tab{} }, styles: tabs.Styles},
		{tag: masthead.CloudMegaMenuTabTag, extends: tabs.TabTag, new: func() core.Element { return &masthead.CloudMegaMenuTab{} }, styles: masthead.Styles},
		{tag: skeleton.TextareaSkeletonTag, new: func() core.Element { return &skeleton.TextareaSkeleton{} }, styles: skeleton.Styles},
	}
	for _, d := range defs {
		var err error
		if d.extends != "" {
			err = r.Extend(d.tag, d.extends, d.new, d.styles)
		} else {
			err = r.Define(d.tag, d.new, d.styles)
		}
		if err != nil {
			return fmt.Errorf("components.Register: %w", err)
		}
	}
	return nil
}

// NewRegistry returns a new registry with all element types registered.
func NewRegistry() *core.Registry {
	r := core.NewRegistry()
	errors.Must(Register(r))
	return r
}
