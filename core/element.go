// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the custom element model: elements living in a
// light-DOM [tree], reactive properties with attribute bindings, a
// batching update scheduler, the tag registry, and descendant lookup.
package core

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"cogentcore.org/dotcom/tree"
)

const (
	// StablePrefix is the tag prefix of the dotcom elements.
	// Tags are the external identity of elements and must not change.
	StablePrefix = "dds"

	// Prefix is the tag and class prefix of the vendored base elements.
	Prefix = "bx"
)

// StableTag returns the tag name of a dotcom element with the given suffix.
func StableTag(suffix string) string {
	return StablePrefix + "-" + suffix
}

// Element is the interface that all custom elements satisfy.
// The core element functionality is defined on [ElementBase],
// and all higher-level element types must embed it. This
// interface only contains the methods that higher-level
// element types may need to override.
type Element interface {
	tree.Node

	// AsElement returns the [ElementBase] of this Element.
	AsElement() *ElementBase

	// Render returns the shadow content of the element for its
	// current property values. It is called once per update pass.
	Render() []*html.Node

	// Updated is called after each render with the set of
	// properties that changed since the previous pass. Element types
	// that push state into their descendants do it here.
	Updated(changes Changes)
}

// ElementBase implements the [Element] interface and provides the core
// functionality of an element. You must use ElementBase as an embedded
// struct in all higher-level element types.
type ElementBase struct {
	tree.NodeBase

	// Tag is the tag name the element is registered under.
	Tag string `copier:"-"`

	// Props is the table of reactive properties of the element.
	Props Properties `copier:"-" json:"-"`

	// StyleSheet is the stylesheet attached to the element type, if any.
	StyleSheet *StyleSheet `copier:"-" json:"-"`

	// Shadow is the result of the last [Element.Render].
	Shadow []*html.Node `copier:"-" json:"-"`

	// Renders is the number of update passes the element has completed.
	Renders int `copier:"-" json:"-"`

	// pending is the set of properties changed since the last pass.
	pending Changes

	// queued is whether the element is in its scheduler queue.
	queued bool
}

// AsElement returns the [ElementBase] of this element.
func (eb *ElementBase) AsElement() *ElementBase {
	return eb
}

// Render is the default render, which projects the light DOM children
// through a single default slot.
func (eb *ElementBase) Render() []*html.Node {
	return []*html.Node{Slot("")}
}

// Updated is a placeholder implementation of [Element.Updated]
// that does nothing.
func (eb *ElementBase) Updated(changes Changes) {}

// OnAdd enqueues the element and any of its descendant elements that
// have pending changes or have never rendered, now that they may be
// in a document.
func (eb *ElementBase) OnAdd() {
	s := eb.Scheduler()
	if s == nil {
		return
	}
	eb.WalkDown(func(n tree.Node) bool {
		if e, ok := n.(Element); ok && (e.AsElement().Renders == 0 || len(e.AsElement().pending) > 0) {
			s.Enqueue(e)
		}
		return tree.Continue
	})
}

// CopyFieldsFrom copies the fields of the given element and then records
// every property as changed, so the copy renders on its next pass.
func (eb *ElementBase) CopyFieldsFrom(from tree.Node) {
	eb.NodeBase.CopyFieldsFrom(from)
	eb.pending = nil
	eb.queued = false
	eb.RequestUpdate(eb.Props.Names()...)
}

// Scheduler returns the scheduler of the document the element is in,
// or nil if it is not in a document.
func (eb *ElementBase) Scheduler() *Scheduler {
	if eb.This == nil {
		return nil
	}
	if d, ok := tree.Root(eb.This).(*Document); ok {
		return &d.Scheduler
	}
	return nil
}

// RequestUpdate records the given property names as changed and
// enqueues the element on its scheduler. If the element is not in a
// document yet, the changes are kept until it is added to one.
func (eb *ElementBase) RequestUpdate(names ...string) {
	eb.pending.add(names...)
	if eb.This == nil {
		return
	}
	if s := eb.Scheduler(); s != nil {
		s.Enqueue(eb.This.(Element))
	}
}

// PendingChanges returns a copy of the changes that the next
// update pass will receive.
func (eb *ElementBase) PendingChanges() Changes {
	return maps.Clone(eb.pending)
}

// performUpdate runs one update pass: render, then [Element.Updated]
// with the changes that accumulated since the previous pass.
func (eb *ElementBase) performUpdate() {
	e := eb.This.(Element)
	changes := eb.pending
	eb.pending = nil
	if changes == nil {
		changes = Changes{}
	}
	eb.Shadow = e.Render()
	eb.Renders++
	e.Updated(changes)
}

// Attributes:

// SetAttribute sets the given attribute. If a property is bound to the
// attribute, the value is coerced into it.
func (eb *ElementBase) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	eb.SetProperty(name, value)
	if p := eb.Props.ByAttribute(name); p != nil && p.Set != nil {
		p.Set(value, true)
	}
}

// RemoveAttribute removes the given attribute. If a property is bound
// to the attribute, it is unset.
func (eb *ElementBase) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	eb.DeleteProperty(name)
	if p := eb.Props.ByAttribute(name); p != nil && p.Set != nil {
		p.Set("", false)
	}
}

// Attribute returns the value of the given attribute and whether it is
// present. Reflected properties report their current value.
func (eb *ElementBase) Attribute(name string) (string, bool) {
	name = strings.ToLower(name)
	if p := eb.Props.ByAttribute(name); p != nil && p.Reflect && p.Get != nil {
		return p.Get()
	}
	v, ok := eb.Properties[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Attributes returns all present attributes, sorted by name.
func (eb *ElementBase) Attributes() []html.Attribute {
	set := map[string]string{}
	for k, v := range eb.Properties {
		if s, ok := v.(string); ok {
			set[k] = s
		}
	}
	for _, p := range eb.Props.list {
		if p.Attribute == "" || !p.Reflect || p.Get == nil {
			continue
		}
		if v, ok := p.Get(); ok {
			set[p.Attribute] = v
		} else {
			delete(set, p.Attribute)
		}
	}
	attrs := make([]html.Attribute, 0, len(set))
	for _, k := range slices.Sorted(maps.Keys(set)) {
		attrs = append(attrs, html.Attribute{Key: k, Val: set[k]})
	}
	return attrs
}
