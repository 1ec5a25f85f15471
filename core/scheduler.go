// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
)

// DefaultMaxPasses is the default value of [Scheduler.MaxPasses].
const DefaultMaxPasses = 10000

// Scheduler is the batching update queue of a [Document]. Property
// writes on an element record the property name and enqueue the element
// at most once; [Scheduler.Flush] then runs one update pass per queued
// element, so any number of synchronous writes before a flush coalesce
// into a single pass. Everything runs on the caller's goroutine.
type Scheduler struct {

	// MaxPasses is the maximum number of update passes in one flush.
	// Elements that keep re-queueing each other past this limit are
	// dropped from the queue with an error log instead of looping forever.
	// If it is 0, [DefaultMaxPasses] is used.
	MaxPasses int

	// Flushes is the number of flushes that performed at least one pass.
	Flushes int

	// queue is the FIFO list of elements waiting for an update pass.
	queue []Element

	// flushing is whether a flush is in progress.
	flushing bool
}

// Enqueue adds the given element to the queue if it is not already queued.
func (s *Scheduler) Enqueue(e Element) {
	eb := e.AsElement()
	if eb.queued {
		return
	}
	eb.queued = true
	s.queue = append(s.queue, e)
}

// Pending returns the number of elements waiting for an update pass.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Flush runs update passes until the queue is empty, including passes for
// elements enqueued by earlier passes of the same flush. It returns the
// number of passes run. Calling Flush from within a pass does nothing, as
// the running flush will pick up any new work.
func (s *Scheduler) Flush() int {
	if s.flushing {
		return 0
	}
	s.flushing = true
	defer func() { s.flushing = false }()

	limit := s.MaxPasses
	if limit <= 0 {
		limit = DefaultMaxPasses
	}
	passes := 0
	for len(s.queue) > 0 {
		if passes >= limit {
			slog.Error("core.Scheduler.Flush: update pass limit reached; dropping queued elements", "limit", limit, "dropped", len(s.queue))
			for _, e := range s.queue {
				e.AsElement().queued = false
			}
			s.queue = nil
			break
		}
		e := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		eb := e.AsElement()
		eb.queued = false
		if eb.This == nil { // destroyed while queued
			continue
		}
		eb.performUpdate()
		passes++
	}
	if passes > 0 {
		s.Flushes++
	}
	return passes
}
