// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"strings"

	"cogentcore.org/dotcom/tree"
)

// Document is the root of an element tree. It owns the [Scheduler]
// that batches the update passes of all elements inside it.
type Document struct {
	tree.NodeBase

	// Scheduler is the update queue of the document.
	Scheduler Scheduler `copier:"-" json:"-"`
}

// NewDocument returns a new empty document.
func NewDocument() *Document {
	d := tree.New[*Document]()
	d.SetName("document")
	return d
}

// Flush runs all pending update passes. See [Scheduler.Flush].
func (d *Document) Flush() int {
	return d.Scheduler.Flush()
}

// Generic is an element with no registered type, such as a plain
// heading or paragraph. It has no properties and renders its default slot.
type Generic struct {
	ElementBase
}

// NewGeneric adds a new [Generic] element with the given tag to the given parent.
func NewGeneric(parent tree.Node, tag string) *Generic {
	g := tree.New[*Generic]()
	g.Tag = tag
	if parent != nil {
		parent.AsTree().AddChild(g)
	}
	return g
}

// Text is a text node in the light DOM.
type Text struct {
	tree.NodeBase

	// Data is the text.
	Data string
}

// NewText adds a new text node with the given text to the given parent.
func NewText(parent tree.Node, data string) *Text {
	t := tree.New[*Text]()
	t.Data = data
	if parent != nil {
		parent.AsTree().AddChild(t)
	}
	return t
}

// TextContent returns the concatenation of the data of all text nodes
// under the given node, in document order.
func TextContent(n tree.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.AsTree().WalkDown(func(k tree.Node) bool {
		if t, ok := k.(*Text); ok {
			b.WriteString(t.Data)
		}
		return tree.Continue
	})
	return b.String()
}
