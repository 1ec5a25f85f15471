// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"cogentcore.org/dotcom/base/errors"
	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/tree"
)

// Options are the options of writing HTML.
type Options struct {

	// Styles is whether shadow roots include the stylesheets
	// of the element types.
	Styles bool
}

// DefaultOptions are the options used by [ToHTML] and [Write].
var DefaultOptions = Options{Styles: true}

// ToHTML returns the html nodes of the given node, with [DefaultOptions].
// See [Options.ToHTML].
func ToHTML(n tree.Node) []*html.Node {
	return DefaultOptions.ToHTML(n)
}

// ToHTML returns the html nodes of the given node. A [core.Document]
// results in its children. Each element that has rendered gets a
// declarative shadow root holding its last render.
func (o Options) ToHTML(n tree.Node) []*html.Node {
	if _, ok := n.(*core.Document); ok {
		var nodes []*html.Node
		for _, k := range n.AsTree().Children {
			if hn := o.toHTML(k); hn != nil {
				nodes = append(nodes, hn)
			}
		}
		return nodes
	}
	if hn := o.toHTML(n); hn != nil {
		return []*html.Node{hn}
	}
	return nil
}

func (o Options) toHTML(n tree.Node) *html.Node {
	switch k := n.(type) {
	case *core.Text:
		return core.TextNode(k.Data)
	case *core.Generic:
		hn := core.El(k.Tag, k.Attributes())
		o.appendChildren(hn, n)
		return hn
	case core.Element:
		eb := k.AsElement()
		hn := core.El(eb.Tag, eb.Attributes())
		if eb.Renders > 0 {
			sr := core.El("template", core.Attrs("shadowrootmode", "open"))
			if css := eb.StyleSheet.String(); o.Styles && css != "" {
				sr.AppendChild(core.El("style", nil, core.TextNode(css)))
			}
			for _, s := range eb.Shadow {
				sr.AppendChild(clone(s))
			}
			hn.AppendChild(sr)
		}
		o.appendChildren(hn, n)
		return hn
	}
	return nil
}

func (o Options) appendChildren(hn *html.Node, n tree.Node) {
	for _, k := range n.AsTree().Children {
		if kn := o.toHTML(k); kn != nil {
			hn.AppendChild(kn)
		}
	}
}

// clone returns a deep copy of the given html node that has no parent,
// so that renders can be written any number of times.
func clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      slices.Clone(n.Attr),
	}
	for k := n.FirstChild; k != nil; k = k.NextSibling {
		c.AppendChild(clone(k))
	}
	return c
}

// Write writes the HTML of the given node to the given writer,
// with [DefaultOptions].
func Write(w io.Writer, n tree.Node) error {
	return DefaultOptions.Write(w, n)
}

// Write writes the HTML of the given node to the given writer.
// See [Options.ToHTML].
func (o Options) Write(w io.Writer, n tree.Node) error {
	for _, hn := range o.ToHTML(n) {
		if err := html.Render(w, hn); err != nil {
			return err
		}
	}
	return nil
}

// WriteString returns the HTML of the given node. See [ToHTML].
func WriteString(n tree.Node) string {
	var b strings.Builder
	errors.Log(Write(&b, n))
	return b.String()
}
