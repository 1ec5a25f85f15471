// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"cogentcore.org/dotcom/base/errors"
	"cogentcore.org/dotcom/tree"
)

// Finder locates descendants of an element in its light DOM.
// Element types that push state into a descendant hold a Finder,
// so the lookup can be replaced, for example by a counting one in tests.
type Finder interface {

	// QuerySelector returns the first descendant element of root, in
	// document order, that matches the given CSS selector, or nil.
	QuerySelector(root tree.Node, selector string) Element
}

// SelectorFinder is the default [Finder]. It mirrors the light DOM into
// [html.Node]s and matches CSS selectors against the mirror by tag name,
// so custom element tags match like standard ones.
type SelectorFinder struct{}

// DefaultFinder is the [Finder] used by elements that are not given one.
var DefaultFinder Finder = SelectorFinder{}

// QuerySelector implements [Finder].
func (SelectorFinder) QuerySelector(root tree.Node, selector string) Element {
	return QuerySelector(root, selector)
}

// QuerySelector returns the first descendant element of root, in document
// order, that matches the given CSS selector. The root itself is never
// matched. It returns nil if nothing matches or the selector is invalid.
func QuerySelector(root tree.Node, selector string) Element {
	all := QuerySelectorAll(root, selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// QuerySelectorAll returns all descendant elements of root that match the
// given CSS selector, in document order.
func QuerySelectorAll(root tree.Node, selector string) []Element {
	if root == nil || root.AsTree().This == nil {
		return nil
	}
	sel := compileSelector(selector)
	if sel == nil {
		return nil
	}
	m := mirror(root)
	matches := cascadia.QueryAll(m.doc, sel)
	found := make([]bool, len(m.elements))
	for _, hn := range matches {
		if i, ok := m.index[hn]; ok {
			found[i] = true
		}
	}
	var res []Element
	for i, f := range found {
		if f {
			res = append(res, m.elements[i])
		}
	}
	return res
}

// Find returns the first descendant element of root, in document order,
// for which match returns true, or nil.
func Find(root tree.Node, match func(e Element) bool) Element {
	n := root.AsTree().FindDescendant(func(n tree.Node) bool {
		e, ok := n.(Element)
		return ok && match(e)
	})
	if n == nil {
		return nil
	}
	return n.(Element)
}

// selectors caches compiled selector groups; nil entries are invalid selectors.
var selectors sync.Map

// compileSelector returns the compiled form of the given selector group,
// logging and caching a nil result for invalid selectors.
func compileSelector(selector string) cascadia.SelectorGroup {
	if v, ok := selectors.Load(selector); ok {
		return v.(cascadia.SelectorGroup)
	}
	sel, err := cascadia.ParseGroup(selector)
	if errors.Log(err) != nil {
		sel = nil
	}
	selectors.Store(selector, sel)
	return sel
}

// lightMirror is an [html.Node] copy of the light DOM under a root,
// with an index back to the elements it was made from.
type lightMirror struct {
	doc      *html.Node
	elements []Element
	index    map[*html.Node]int
}

// mirror builds the [lightMirror] of the descendants of root. The root
// itself becomes a document node so that it can never match.
func mirror(root tree.Node) *lightMirror {
	m := &lightMirror{
		doc:   &html.Node{Type: html.DocumentNode},
		index: map[*html.Node]int{},
	}
	var add func(parent *html.Node, n tree.Node)
	add = func(parent *html.Node, n tree.Node) {
		var hn *html.Node
		switch k := n.(type) {
		case *Text:
			hn = &html.Node{Type: html.TextNode, Data: k.Data}
		case Element:
			eb := k.AsElement()
			hn = &html.Node{Type: html.ElementNode, Data: eb.Tag, Attr: eb.Attributes()}
			m.index[hn] = len(m.elements)
			m.elements = append(m.elements, k)
		default:
			return
		}
		parent.AppendChild(hn)
		for _, kid := range n.AsTree().Children {
			add(hn, kid)
		}
	}
	for _, kid := range root.AsTree().Children {
		add(m.doc, kid)
	}
	return m
}
