// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"cogentcore.org/dotcom/base/errors"
)

// StyleSheet is the styling resource attached to an element type.
// It is opaque to the element behavior; it is only written out
// with the shadow content of the element.
type StyleSheet struct {

	// Sheet is the parsed stylesheet.
	Sheet *css.Stylesheet
}

// NewStyleSheet parses the given CSS source into a new [StyleSheet].
// Parse errors are logged and result in an empty stylesheet.
func NewStyleSheet(source string) *StyleSheet {
	sheet := errors.Log1(parser.Parse(source))
	if sheet == nil {
		sheet = css.NewStylesheet()
	}
	return &StyleSheet{Sheet: sheet}
}

// String returns the CSS of the stylesheet.
func (ss *StyleSheet) String() string {
	if ss == nil || ss.Sheet == nil {
		return ""
	}
	return ss.Sheet.String()
}

// Selectors returns the selectors of all of the rules in the stylesheet,
// in order.
func (ss *StyleSheet) Selectors() []string {
	if ss == nil || ss.Sheet == nil {
		return nil
	}
	var sels []string
	for _, r := range ss.Sheet.Rules {
		if r.Kind == css.AtRule {
			continue
		}
		sels = append(sels, r.Selectors...)
	}
	return sels
}
