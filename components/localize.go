// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package components

import (
	"cogentcore.org/dotcom/mediafmt"
	"cogentcore.org/dotcom/tree"
)

// videoFormatted is implemented by elements with video formatters.
type videoFormatted interface {
	SetFormatCaption(v mediafmt.CaptionFunc)
	SetFormatDuration(v mediafmt.DurationFunc)
}

// Localize sets the given formatters on all of the elements with video
// formatters under root, and returns how many it set them on. The new
// formatters take effect in the next update pass of each element.
func Localize(root tree.Node, f mediafmt.Formatters) int {
	n := 0
	root.AsTree().WalkDown(func(k tree.Node) bool {
		if v, ok := k.(videoFormatted); ok {
			v.SetFormatCaption(f.Caption)
			v.SetFormatDuration(f.Duration)
			n++
		}
		return tree.Continue
	})
	return n
}
