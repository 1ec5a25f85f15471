// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"maps"
	"slices"
)

// Changes is the set of property names that changed since the
// previous update pass of an element. It is the diff set passed
// to [Element.Updated].
type Changes map[string]struct{}

// Has returns whether the named property changed.
func (c Changes) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// HasAny returns whether any of the named properties changed.
func (c Changes) HasAny(names ...string) bool {
	for _, nm := range names {
		if c.Has(nm) {
			return true
		}
	}
	return false
}

// Names returns the sorted names of the changed properties.
func (c Changes) Names() []string {
	return slices.Sorted(maps.Keys(c))
}

// add records the given property names as changed.
func (c *Changes) add(names ...string) {
	if *c == nil {
		*c = Changes{}
	}
	for _, nm := range names {
		(*c)[nm] = struct{}{}
	}
}
