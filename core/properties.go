// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"slices"
	"strconv"
)

// Property describes one reactive property of an element and its
// optional attribute binding.
type Property struct {

	// Name is the property name, as recorded in [Changes].
	Name string

	// Attribute is the name of the bound attribute, if any.
	// Properties with no attribute can only be set through code.
	Attribute string

	// Reflect is whether the current property value is reflected
	// back to the attribute in [ElementBase.Attributes].
	Reflect bool

	// Get returns the attribute form of the current value, and
	// false if the property is unset.
	Get func() (string, bool)

	// Set coerces the given attribute value into the property.
	// present is false when the attribute is removed.
	Set func(value string, present bool)
}

// Properties is the ordered table of the properties of an element.
// Traits and element types add to it in [tree.Node.Init]; a later
// definition of the same property or attribute name replaces the
// earlier one.
type Properties struct {
	list []*Property
}

// Define adds the given property to the table. If a property with the
// same name or attribute name already exists, it is replaced in place and
// Define returns true.
func (p *Properties) Define(prop Property) bool {
	np := &prop
	replaced := false
	for i, ep := range p.list {
		if ep == nil {
			continue
		}
		if ep.Name == prop.Name || (prop.Attribute != "" && ep.Attribute == prop.Attribute) {
			if !replaced {
				slog.Debug("core.Properties.Define: replacing property", "name", ep.Name, "by", prop.Name)
				p.list[i] = np
				replaced = true
			} else {
				p.list[i] = nil
			}
		}
	}
	p.list = slices.DeleteFunc(p.list, func(ep *Property) bool { return ep == nil })
	if !replaced {
		p.list = append(p.list, np)
	}
	return replaced
}

// Remove removes the named property from the table.
// It returns false if there is no such property.
func (p *Properties) Remove(name string) bool {
	n := len(p.list)
	p.list = slices.DeleteFunc(p.list, func(ep *Property) bool { return ep.Name == name })
	return len(p.list) != n
}

// ByName returns the property with the given name, or nil.
func (p *Properties) ByName(name string) *Property {
	for _, ep := range p.list {
		if ep.Name == name {
			return ep
		}
	}
	return nil
}

// ByAttribute returns the property bound to the given attribute, or nil.
func (p *Properties) ByAttribute(attr string) *Property {
	if attr == "" {
		return nil
	}
	for _, ep := range p.list {
		if ep.Attribute == attr {
			return ep
		}
	}
	return nil
}

// Names returns the property names in definition order.
func (p *Properties) Names() []string {
	names := make([]string, len(p.list))
	for i, ep := range p.list {
		names[i] = ep.Name
	}
	return names
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.list)
}

// Setters:

// SetValue sets the given field to the given value on behalf of the given
// element. If the value differs from the current one, the property name is
// recorded as changed and an update pass is requested. A nil element only
// sets the field.
func SetValue[T comparable](eb *ElementBase, field *T, name string, v T) {
	if *field == v {
		return
	}
	*field = v
	if eb != nil {
		eb.RequestUpdate(name)
	}
}

// SetPointer is [SetValue] for optional values, where nil means unset.
// Two pointers are equal if both are nil or they point to equal values.
func SetPointer[T comparable](eb *ElementBase, field **T, name string, v *T) {
	cur := *field
	if (cur == nil && v == nil) || (cur != nil && v != nil && *cur == *v) {
		return
	}
	if v != nil {
		c := *v
		v = &c
	}
	*field = v
	if eb != nil {
		eb.RequestUpdate(name)
	}
}

// SetFunc sets the given function field. Functions can not be compared,
// so the property is always recorded as changed.
func SetFunc[F any](eb *ElementBase, field *F, name string, v F) {
	*field = v
	if eb != nil {
		eb.RequestUpdate(name)
	}
}

// Attribute converters:

// StringProperty returns a [Property] bound to the given attribute that
// stores the attribute value in a string field through set.
func StringProperty(name, attr string, get func() string, set func(v string)) Property {
	return Property{
		Name:      name,
		Attribute: attr,
		Get: func() (string, bool) {
			v := get()
			return v, v != ""
		},
		Set: func(value string, present bool) {
			if !present {
				value = ""
			}
			set(value)
		},
	}
}

// NumberProperty returns a [Property] bound to the given attribute that
// coerces the attribute value to a number. Values that are not numbers
// are logged and treated as unset.
func NumberProperty(name, attr string, get func() *float64, set func(v *float64)) Property {
	return Property{
		Name:      name,
		Attribute: attr,
		Get: func() (string, bool) {
			v := get()
			if v == nil {
				return "", false
			}
			return strconv.FormatFloat(*v, 'f', -1, 64), true
		},
		Set: func(value string, present bool) {
			if !present {
				set(nil)
				return
			}
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				slog.Error("core.NumberProperty: invalid number", "attribute", attr, "value", value)
				set(nil)
				return
			}
			set(&f)
		},
	}
}

// BoolProperty returns a [Property] bound to the given attribute that
// is true whenever the attribute is present.
func BoolProperty(name, attr string, get func() bool, set func(v bool)) Property {
	return Property{
		Name:      name,
		Attribute: attr,
		Get: func() (string, bool) {
			return "", get()
		},
		Set: func(value string, present bool) {
			set(present)
		},
	}
}
