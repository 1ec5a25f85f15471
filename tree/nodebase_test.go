// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/dotcom/tree"
)

type testNode struct {
	NodeBase

	Label string
	Count int
	inits int
}

func (tn *testNode) Init() {
	tn.inits++
}

func names(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.AsTree().Name
	}
	return out
}

func TestNodeAddChild(t *testing.T) {
	parent := New[*testNode]()
	parent.SetName("par")
	child := &testNode{}
	parent.AddChild(child)
	child.SetName("child1")
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "/par/child1", child.Path())
	assert.Equal(t, 1, child.inits)
	assert.Equal(t, 0, child.IndexInParent())
}

func TestNodeDefaultNames(t *testing.T) {
	parent := New[*testNode]()
	a := New[*testNode](parent)
	b := New[*testNode](parent)
	assert.Equal(t, "test-node-0", a.Name)
	assert.Equal(t, "test-node-1", b.Name)
	assert.Equal(t, Node(b), parent.ChildByName("test-node-1"))
	assert.Nil(t, parent.ChildByName("missing"))
}

func TestNodeInsertChild(t *testing.T) {
	parent := New[*testNode]()
	for _, nm := range []string{"a", "c"} {
		New[*testNode](parent).SetName(nm)
	}
	b := &testNode{}
	b.SetName("b")
	parent.InsertChild(b, 1)
	assert.Equal(t, []string{"a", "b", "c"}, names(parent.Children))
	assert.Equal(t, 1, b.IndexInParent())
}

func TestNodeWalkDownDocumentOrder(t *testing.T) {
	root := New[*testNode]()
	root.SetName("root")
	a := New[*testNode](root)
	a.SetName("a")
	New[*testNode](a).SetName("a1")
	New[*testNode](a).SetName("a2")
	b := New[*testNode](root)
	b.SetName("b")
	New[*testNode](b).SetName("b1")

	var order []string
	root.WalkDown(func(n Node) bool {
		order = append(order, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b", "b1"}, order)

	order = nil
	root.WalkDown(func(n Node) bool {
		order = append(order, n.AsTree().Name)
		return n.AsTree().Name != "a"
	})
	assert.Equal(t, []string{"root", "a", "b", "b1"}, order)
}

func TestNodeFindDescendant(t *testing.T) {
	root := New[*testNode]()
	root.Label = "x"
	a := New[*testNode](root)
	a1 := New[*testNode](a)
	a1.Label = "x"
	b := New[*testNode](root)
	b.Label = "x"

	found := root.FindDescendant(func(n Node) bool {
		return n.(*testNode).Label == "x"
	})
	assert.Equal(t, Node(a1), found, "first match in document order, excluding the root")
	assert.Nil(t, root.FindDescendant(func(n Node) bool { return false }))
}

func TestNodeDelete(t *testing.T) {
	parent := New[*testNode]()
	child := New[*testNode](parent)
	grand := New[*testNode](child)
	assert.True(t, parent.DeleteChild(child))
	assert.Len(t, parent.Children, 0)
	assert.Nil(t, child.This)
	assert.Nil(t, grand.This)
	assert.False(t, parent.DeleteChild(child))
	assert.False(t, parent.DeleteChildAt(3))
}

func TestMoveToParent(t *testing.T) {
	a := New[*testNode]()
	b := New[*testNode]()
	kid := New[*testNode](a)
	MoveToParent(kid, b)
	assert.Len(t, a.Children, 0)
	assert.Len(t, b.Children, 1)
	assert.Equal(t, Node(b), kid.Parent)
	assert.Equal(t, Node(b), Root(kid))
}

func TestOnChildAdded(t *testing.T) {
	root := New[*testNode]()
	var added []Node
	root.OnChildAdded = func(n Node) {
		added = append(added, n)
	}
	mid := New[*testNode](root)
	leaf := New[*testNode](mid)
	assert.Equal(t, []Node{mid, leaf}, added)
}

func TestClone(t *testing.T) {
	root := New[*testNode]()
	root.SetName("root")
	root.Label = "top"
	root.SetProperty("href", "https://example.com")
	kid := New[*testNode](root)
	kid.SetName("kid")
	kid.Count = 3

	cl, ok := root.Clone().(*testNode)
	require.True(t, ok)
	assert.Equal(t, "root", cl.Name)
	assert.Equal(t, "top", cl.Label)
	assert.Equal(t, "https://example.com", cl.Property("href"))
	require.Len(t, cl.Children, 1)
	ck := cl.Children[0].(*testNode)
	assert.Equal(t, 3, ck.Count)
	assert.Equal(t, "/root/kid", ck.Path())
	assert.NotSame(t, kid, ck)
	assert.True(t, IsRoot(cl))
}

func TestNodeChildren(t *testing.T) {
	parent := New[*testNode]()
	assert.False(t, parent.HasChildren())
	assert.Equal(t, 0, parent.NumChildren())
	assert.Nil(t, parent.Child(0))

	a := New[*testNode](parent)
	b := New[*testNode](parent)
	assert.True(t, parent.HasChildren())
	assert.Equal(t, 2, parent.NumChildren())
	assert.Equal(t, Node(b), parent.Child(1))
	assert.Nil(t, parent.Child(2))
	assert.Nil(t, parent.Child(-1))

	parent.DeleteChildren()
	assert.False(t, parent.HasChildren())
	assert.Nil(t, a.Parent)
	assert.Nil(t, b.This)
}

func TestNodeWalkUp(t *testing.T) {
	root := New[*testNode]()
	root.SetName("root")
	mid := New[*testNode](root)
	mid.SetName("mid")
	leaf := New[*testNode](mid)
	leaf.SetName("leaf")

	var visited []string
	assert.True(t, leaf.WalkUp(func(n Node) bool {
		visited = append(visited, n.AsTree().Name)
		return Continue
	}))
	assert.Equal(t, []string{"leaf", "mid", "root"}, visited)

	visited = nil
	assert.True(t, leaf.WalkUpParent(func(n Node) bool {
		visited = append(visited, n.AsTree().Name)
		return Continue
	}))
	assert.Equal(t, []string{"mid", "root"}, visited)

	visited = nil
	assert.False(t, leaf.WalkUpParent(func(n Node) bool {
		visited = append(visited, n.AsTree().Name)
		return Break
	}))
	assert.Equal(t, []string{"mid"}, visited)
	assert.True(t, root.WalkUpParent(func(n Node) bool { return Break }))
}

func TestNodePath(t *testing.T) {
	root := New[*testNode]()
	root.SetName("a/b")
	kid := New[*testNode](root)
	kid.SetName("c")
	assert.Equal(t, `/a\\b/c`, kid.Path())
	assert.Equal(t, "test-node", TypeName(kid))
}

func TestNodeProperties(t *testing.T) {
	n := New[*testNode]()
	n.DeleteProperty("missing")
	assert.Nil(t, n.Property("label"))
	n.SetProperty("label", "x")
	assert.Equal(t, "x", n.Property("label"))
	n.DeleteProperty("label")
	assert.Nil(t, n.Property("label"))
}
