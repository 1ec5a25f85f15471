// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"strings"

	selcss "github.com/ericchiang/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cogentcore.org/dotcom/base/errors"
)

// This file contains the helpers that element templates use
// to build their shadow content as [html.Node] trees.

// El returns a new element node with the given tag, attributes and children.
// Nil children are skipped, so optional parts can be passed inline.
func El(tag string, attrs []html.Attribute, kids ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag)), Attr: attrs}
	for _, k := range kids {
		if k != nil {
			n.AppendChild(k)
		}
	}
	return n
}

// TextNode returns a new text node.
func TextNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Slot returns a new slot element with the given name,
// or the default slot if the name is empty.
func Slot(name string) *html.Node {
	if name == "" {
		return El("slot", nil)
	}
	return El("slot", Attrs("name", name))
}

// Attrs returns attributes from alternating key and value strings.
// Pairs with an empty value are skipped, except for "class".
func Attrs(kv ...string) []html.Attribute {
	attrs := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" && kv[i] != "class" {
			continue
		}
		attrs = append(attrs, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return attrs
}

// Class returns a space separated class list of the given names,
// each with the given prefix and a "--" separator.
func Class(prefix string, names ...string) string {
	cls := make([]string, 0, len(names))
	for _, nm := range names {
		if nm != "" {
			cls = append(cls, prefix+"--"+nm)
		}
	}
	return strings.Join(cls, " ")
}

// RenderNodes returns the HTML markup for the given nodes.
func RenderNodes(nodes []*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := html.Render(&b, n); err != nil {
			return b.String()
		}
	}
	return b.String()
}

// ShadowMarkup returns the markup of the last render of the given element.
func ShadowMarkup(e Element) string {
	return RenderNodes(e.AsElement().Shadow)
}

// QueryShadow returns the nodes of the last render of the given element
// that match the given CSS selector. Shadow content is built from standard
// HTML tags only, which are the only tags the selector can name. It returns
// nil if the selector is invalid.
func QueryShadow(e Element, selector string) []*html.Node {
	sel, err := selcss.Parse(selector)
	if errors.Log(err) != nil {
		return nil
	}
	var res []*html.Node
	for _, n := range e.AsElement().Shadow {
		if n != nil && n.Type == html.ElementNode {
			res = append(res, sel.Select(n)...)
		}
	}
	return res
}
