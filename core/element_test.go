// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/tree"
)

type widget struct {
	ElementBase
	Label string
	Size  *float64
	Open  bool

	changes   []Changes
	onUpdated func(w *widget, c Changes)
}

func (w *widget) Init() {
	w.Tag = "x-widget"
	w.Props.Define(StringProperty("label", "label", func() string { return w.Label }, w.SetLabel))
	w.Props.Define(NumberProperty("size", "size", func() *float64 { return w.Size }, w.SetSize))
	open := BoolProperty("open", "open", func() bool { return w.Open }, w.SetOpen)
	open.Reflect = true
	w.Props.Define(open)
}

func (w *widget) SetLabel(v string) { SetValue(&w.ElementBase, &w.Label, "label", v) }
func (w *widget) SetSize(v *float64) { SetPointer(&w.ElementBase, &w.Size, "size", v) }
func (w *widget) SetOpen(v bool)     { SetValue(&w.ElementBase, &w.Open, "open", v) }

func (w *widget) Updated(c Changes) {
	w.changes = append(w.changes, c)
	if w.onUpdated != nil {
		w.onUpdated(w, c)
	}
}

func ptr(v float64) *float64 { return &v }

func TestFirstPass(t *testing.T) {
	doc := NewDocument()
	w := tree.New[*widget](doc)
	assert.Equal(t, 1, doc.Scheduler.Pending())
	assert.Equal(t, 1, doc.Flush())
	assert.Equal(t, 1, w.Renders)
	assert.Equal(t, "<slot></slot>", ShadowMarkup(w))
	assert.Equal(t, 0, doc.Flush())
}

func TestCoalescing(t *testing.T) {
	doc := NewDocument()
	w := tree.New[*widget](doc)
	doc.Flush()

	w.SetLabel("a")
	w.SetSize(ptr(3))
	w.SetOpen(true)
	assert.Equal(t, 1, doc.Scheduler.Pending())
	assert.Equal(t, []string{"label", "open", "size"}, w.PendingChanges().Names())

	assert.Equal(t, 1, doc.Flush())
	assert.Equal(t, 2, w.Renders)
	require.Len(t, w.changes, 2)
	assert.Equal(t, []string{"label", "open", "size"}, w.changes[1].Names())
	assert.Empty(t, w.PendingChanges())
}

func TestSetValueEqual(t *testing.T) {
	doc := NewDocument()
	w := tree.New[*widget](doc)
	w.SetLabel("a")
	w.SetSize(ptr(2))
	doc.Flush()

	w.SetLabel("a")
	w.SetSize(ptr(2))
	assert.Equal(t, 0, doc.Scheduler.Pending())

	w.SetSize(nil)
	assert.Equal(t, 1, doc.Scheduler.Pending())
	assert.Nil(t, w.Size)
}

func TestSetPointerCopies(t *testing.T) {
	w := tree.New[*widget]()
	v := 4.0
	w.SetSize(&v)
	v = 5
	assert.Equal(t, 4.0, *w.Size)
}

func TestFlushOrder(t *testing.T) {
	doc := NewDocument()
	a := tree.New[*widget](doc)
	b := tree.New[*widget](doc)
	doc.Flush()

	var order []*widget
	a.onUpdated = func(w *widget, c Changes) {
		order = append(order, w)
		if c.Has("label") {
			b.SetLabel("from a")
		}
	}
	b.onUpdated = func(w *widget, c Changes) { order = append(order, w) }

	a.SetLabel("x")
	assert.Equal(t, 2, doc.Flush())
	assert.Equal(t, []*widget{a, b}, order)
	assert.Equal(t, "from a", b.Label)
	assert.Equal(t, 2, doc.Scheduler.Flushes)
}

func TestReentrantQueued(t *testing.T) {
	doc := NewDocument()
	a := tree.New[*widget](doc)
	b := tree.New[*widget](doc)
	a.onUpdated = func(w *widget, c Changes) {
		b.SetLabel("set")
	}
	// both are queued from the start, so b is not queued twice
	assert.Equal(t, 2, doc.Flush())
	assert.Equal(t, 1, b.Renders)
	assert.True(t, b.changes[0].Has("label"))
}

func TestNestedFlush(t *testing.T) {
	doc := NewDocument()
	a := tree.New[*widget](doc)
	inner := -1
	a.onUpdated = func(w *widget, c Changes) {
		inner = doc.Flush()
	}
	assert.Equal(t, 1, doc.Flush())
	assert.Equal(t, 0, inner)
}

func TestMaxPasses(t *testing.T) {
	doc := NewDocument()
	doc.Scheduler.MaxPasses = 5
	a := tree.New[*widget](doc)
	b := tree.New[*widget](doc)
	a.onUpdated = func(w *widget, c Changes) { b.RequestUpdate("label") }
	b.onUpdated = func(w *widget, c Changes) { a.RequestUpdate("label") }

	assert.Equal(t, 5, doc.Flush())
	assert.Equal(t, 0, doc.Scheduler.Pending())

	// dropped elements can be queued again
	a.onUpdated = nil
	b.onUpdated = nil
	a.SetLabel("again")
	assert.Equal(t, 1, doc.Flush())
}

func TestDetached(t *testing.T) {
	w := tree.New[*widget]()
	w.SetLabel("x")
	assert.Nil(t, w.Scheduler())
	assert.True(t, w.PendingChanges().Has("label"))

	doc := NewDocument()
	doc.AddChild(w)
	assert.Equal(t, 1, doc.Scheduler.Pending())
	doc.Flush()
	require.Len(t, w.changes, 1)
	assert.True(t, w.changes[0].Has("label"))
}

func TestDetachedSubtree(t *testing.T) {
	parent := tree.New[*widget]()
	kid := tree.New[*widget](parent)
	kid.SetLabel("k")

	doc := NewDocument()
	doc.AddChild(parent)
	assert.Equal(t, 2, doc.Scheduler.Pending())
	assert.Equal(t, 2, doc.Flush())
}

func TestDestroyedWhileQueued(t *testing.T) {
	doc := NewDocument()
	a := tree.New[*widget](doc)
	b := tree.New[*widget](doc)
	b.Delete()
	assert.Equal(t, 1, doc.Flush())
	assert.Equal(t, 1, a.Renders)
}

func TestClone(t *testing.T) {
	w := tree.New[*widget]()
	w.SetLabel("orig")
	w.SetSize(ptr(1))

	c := w.Clone().(*widget)
	assert.Equal(t, "orig", c.Label)
	assert.Equal(t, 1.0, *c.Size)
	assert.Equal(t, 0, c.Renders)
	assert.True(t, c.PendingChanges().HasAny("label", "size", "open"))

	c.SetLabel("copy")
	assert.Equal(t, "orig", w.Label)
}

func TestChanges(t *testing.T) {
	c := Changes{"b": {}, "a": {}}
	assert.True(t, c.Has("a"))
	assert.False(t, c.Has("c"))
	assert.True(t, c.HasAny("c", "b"))
	assert.False(t, c.HasAny())
	assert.Equal(t, []string{"a", "b"}, c.Names())
}
