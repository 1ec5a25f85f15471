// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traits provides reusable sets of reactive properties that can be
// layered onto any element type. A trait is a struct embedded in the
// element type, applied to the element in its Init method with [Apply].
// Traits never refer to each other; the element type that embeds several
// of them coordinates them.
package traits

import (
	"cogentcore.org/dotcom/core"
)

// Trait is a set of properties that can be bound to a host element.
type Trait interface {

	// Apply binds the properties of the trait into the property table
	// of the given host, and records them as changed so that the
	// first update pass of the host sees them.
	Apply(host core.Element)
}

// Apply applies the given traits to the given host, in order. A trait
// applied later replaces any property of an earlier one with the same
// property or attribute name.
func Apply(host core.Element, ts ...Trait) {
	for _, t := range ts {
		t.Apply(host)
	}
}

// PropertyNames returns the property names of the given host, in
// definition order.
func PropertyNames(host core.Element) []string {
	return host.AsElement().Props.Names()
}
