// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"slices"
	"strconv"

	"github.com/iancoleman/strcase"
)

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node: it sets [NodeBase.This] and calls
// [Node.Init]. It does nothing if the node is already initialized.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		n.Init()
	}
}

// TypeName returns the kebab-case name of the type of the given node,
// which is used for default node names.
func TypeName(n Node) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strcase.ToKebab(t.Name())
}

// SetParent sets the parent of the given node to the given parent node.
// This is only for nodes with no existing parent; see [MoveToParent] to
// move nodes that already have a parent. It does not add the node to the
// parent's list of children; see [NodeBase.AddChild] for a version that does.
func SetParent(child Node, parent Node) {
	n := child.AsTree()
	n.Parent = parent
	if parent != nil {
		pn := parent.AsTree()
		pn.numLifetimeChildren++
		if n.Name == "" {
			n.Name = TypeName(child) + "-" + strconv.FormatUint(pn.numLifetimeChildren-1, 10)
		}
	}
	child.OnAdd()
	n.WalkUpParent(func(k Node) bool {
		if f := k.AsTree().OnChildAdded; f != nil {
			f(child)
		}
		return Continue
	})
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
// The old and new parents can be in different trees (or not).
func MoveToParent(child Node, parent Node) {
	cb := child.AsTree()
	if oldParent := cb.Parent; oldParent != nil {
		ob := oldParent.AsTree()
		if idx := IndexOf(ob.Children, child); idx >= 0 {
			ob.Children = slices.Delete(ob.Children, idx, idx+1)
		}
		cb.Parent = nil
	}
	parent.AsTree().AddChild(child)
}

// New returns a new initialized node of the given type.
// If a parent is given, the node is added as its last child.
func New[T Node](parent ...Node) T {
	n := reflect.New(reflect.TypeFor[T]().Elem()).Interface().(T)
	InitNode(n)
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(n)
	}
	return n
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	nb := n.AsTree()
	return nb.This == nil || nb.Parent == nil || nb.Parent.AsTree().This == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n) {
		return n.AsTree().This
	}
	return Root(n.AsTree().Parent)
}

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument
// allows for optimized bidirectional searching if you have a guess
// at where the node might be.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	return findFunc(slice, func(e Node) bool { return e == child }, startIndex...)
}

// IndexByName returns the index of the first element in the given slice that
// has the given name, or -1 if none is found. See [IndexOf] for info on startIndex.
func IndexByName(slice []Node, name string, startIndex ...int) int {
	return findFunc(slice, func(ch Node) bool { return ch.AsTree().Name == name }, startIndex...)
}

// findFunc searches outward in both directions from the start index,
// which defaults to the start of the slice.
func findFunc(s []Node, match func(e Node) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	si := 0
	if len(startIndex) > 0 {
		si = min(max(startIndex[0], 0), n-1)
	}
	for d := 0; si-d >= 0 || si+d < n; d++ {
		if i := si + d; i < n && match(s[i]) {
			return i
		}
		if i := si - d; d > 0 && i >= 0 && match(s[i]) {
			return i
		}
	}
	return -1
}
