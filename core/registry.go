// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"slices"

	"cogentcore.org/dotcom/tree"
)

// Definition is the registration of an element type under a tag name.
type Definition struct {

	// Tag is the tag name.
	Tag string

	// New returns a new, uninitialized element of the type.
	New func() Element

	// Extends is the tag whose type this type extends, if any.
	Extends string

	// StyleSheet is the stylesheet attached to the type, if any.
	StyleSheet *StyleSheet
}

// Registry associates tag names with element types.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{defs: map[string]*Definition{}}
}

// Define registers the given constructor under the given tag.
// It returns an error if the tag is already defined.
func (r *Registry) Define(tag string, new func() Element, styles *StyleSheet) error {
	return r.define(&Definition{Tag: tag, New: new, StyleSheet: styles})
}

// Extend registers the given constructor under the given tag as an
// extension of the type registered under base, which must already be
// defined. The new type is expected to embed the base type.
func (r *Registry) Extend(tag, base string, new func() Element, styles *StyleSheet) error {
	if _, ok := r.defs[base]; !ok {
		return fmt.Errorf("core.Registry.Extend: %q extends undefined tag %q", tag, base)
	}
	return r.define(&Definition{Tag: tag, New: new, Extends: base, StyleSheet: styles})
}

func (r *Registry) define(def *Definition) error {
	if def.Tag == "" || def.New == nil {
		return fmt.Errorf("core.Registry: invalid definition for tag %q", def.Tag)
	}
	if _, ok := r.defs[def.Tag]; ok {
		return fmt.Errorf("core.Registry: tag %q is already defined", def.Tag)
	}
	r.defs[def.Tag] = def
	r.order = append(r.order, def.Tag)
	return nil
}

// Lookup returns the definition of the given tag.
func (r *Registry) Lookup(tag string) (*Definition, bool) {
	def, ok := r.defs[tag]
	return def, ok
}

// New returns a new initialized element of the type registered under
// the given tag, and false if the tag is not defined.
func (r *Registry) New(tag string) (Element, bool) {
	def, ok := r.defs[tag]
	if !ok {
		return nil, false
	}
	e := def.New()
	tree.InitNode(e)
	eb := e.AsElement()
	eb.Tag = tag
	if def.StyleSheet != nil {
		eb.StyleSheet = def.StyleSheet
	}
	return e, true
}

// Tags returns all defined tags in definition order.
func (r *Registry) Tags() []string {
	return slices.Clone(r.order)
}

// Lineage returns the given tag followed by the tags it extends,
// nearest first.
func (r *Registry) Lineage(tag string) []string {
	var tags []string
	for def, ok := r.defs[tag]; ok; def, ok = r.defs[def.Extends] {
		if slices.Contains(tags, def.Tag) { // cycle guard
			break
		}
		tags = append(tags, def.Tag)
	}
	return tags
}

// IsA returns whether the type registered under tag is, or extends,
// the type registered under base.
func (r *Registry) IsA(tag, base string) bool {
	return slices.Contains(r.Lineage(tag), base)
}
