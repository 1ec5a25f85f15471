// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/tree"
)

func TestTextareaSkeleton(t *testing.T) {
	doc := core.NewDocument()
	s := tree.New[*TextareaSkeleton](doc)
	assert.Equal(t, 1, doc.Flush())
	assert.Equal(t, `<span class="bx--label bx--skeleton"></span><div class="bx--skeleton bx--text-area"></div>`,
		core.ShadowMarkup(s))
	assert.Equal(t, 0, s.Props.Len())
	assert.Contains(t, Styles.String(), "bx--text-area")
}
