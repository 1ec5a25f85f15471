// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markup reads element trees from HTML and Markdown, and writes
// them back as HTML with declarative shadow roots.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	mdhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cogentcore.org/dotcom/base/errors"
	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/tree"
)

// Validator is implemented by elements that can check their
// property values after their attributes are read.
type Validator interface {
	Validate() error
}

// ReadHTML reads HTML from the given reader and adds the corresponding
// elements to the given parent, using the given registry for the
// element types. Tags that are not in the registry result in
// [core.Generic] elements. Invalid property values are logged.
func ReadHTML(reg *core.Registry, parent tree.Node, r io.Reader) error {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return fmt.Errorf("error parsing HTML: %w", err)
	}
	for _, n := range nodes {
		readNode(reg, parent, n)
	}
	return nil
}

// ReadHTMLString reads HTML from the given string and adds the
// corresponding elements to the given parent. See [ReadHTML].
func ReadHTMLString(reg *core.Registry, parent tree.Node, s string) error {
	return ReadHTML(reg, parent, strings.NewReader(s))
}

// ReadMD reads MD (markdown) from the given bytes and adds the
// corresponding elements to the given parent. Raw HTML in the markdown,
// such as custom element tags, is kept.
func ReadMD(reg *core.Registry, parent tree.Node, b []byte) error {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			mdhtml.WithUnsafe(),
		),
	)
	var buf bytes.Buffer
	err := md.Convert(b, &buf)
	if err != nil {
		return fmt.Errorf("error parsing MD (markdown): %w", err)
	}
	return ReadHTML(reg, parent, &buf)
}

// ReadMDString reads MD (markdown) from the given string and adds the
// corresponding elements to the given parent. See [ReadMD].
func ReadMDString(reg *core.Registry, parent tree.Node, s string) error {
	return ReadMD(reg, parent, []byte(s))
}

// ReadFile reads the given file into the given parent, as markdown
// if it has a .md extension and as HTML otherwise.
func ReadFile(reg *core.Registry, parent tree.Node, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return ReadMD(reg, parent, b)
	}
	return ReadHTML(reg, parent, bytes.NewReader(b))
}

// readNode adds the element or text of the given html node to the given
// parent. Attributes are set before the element is added, so that its
// first update pass sees all of them.
func readNode(reg *core.Registry, parent tree.Node, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		core.NewText(parent, n.Data)
		return
	case html.ElementNode:
	default:
		return
	}
	if isShadowRoot(n) {
		return
	}
	e, ok := reg.New(n.Data)
	if !ok {
		e = core.NewGeneric(nil, n.Data)
	}
	eb := e.AsElement()
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		eb.SetAttribute(a.Key, a.Val)
	}
	if v, ok := e.(Validator); ok {
		if err := v.Validate(); err != nil {
			errors.Log(fmt.Errorf("<%s>: %w", n.Data, err))
		}
	}
	parent.AsTree().AddChild(e)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		readNode(reg, e, c)
	}
}

// isShadowRoot returns whether the given node is a declarative shadow
// root, which is output and never read back.
func isShadowRoot(n *html.Node) bool {
	if n.Data != "template" {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == "shadowrootmode" {
			return true
		}
	}
	return false
}
