// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/coalesce.go
// Summary: Trailing-edge coalescing timer (debounce) over a Scheduler.

package core

import "time"

// Coalescer runs action once, delay after the most recent Trigger. A Trigger
// inside the window restarts it and replaces the pending argument, so bursts
// collapse into a single trailing call with the last argument.
//
// A Coalescer belongs to the UI goroutine and is not safe for concurrent use.
type Coalescer[T any] struct {
	sched   Scheduler
	delay   time.Duration
	action  func(T)
	timer   Timer
	pending T
	gen     uint64
}

// NewCoalescer returns a coalescer that schedules through sched.
func NewCoalescer[T any](sched Scheduler, delay time.Duration, action func(T)) *Coalescer[T] {
	return &Coalescer[T]{sched: sched, delay: delay, action: action}
}

// Trigger (re)starts the window with arg as the pending argument.
func (c *Coalescer[T]) Trigger(arg T) {
	if c == nil || c.sched == nil {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.pending = arg
	c.timer = c.sched.AfterFunc(c.delay, func() { c.fire(gen) })
}

// Cancel drops the pending call, if any.
func (c *Coalescer[T]) Cancel() {
	if c == nil {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	var zero T
	c.pending = zero
}

// Pending reports whether a call is scheduled.
func (c *Coalescer[T]) Pending() bool {
	return c != nil && c.timer != nil
}

func (c *Coalescer[T]) fire(gen uint64) {
	if gen != c.gen {
		return
	}
	arg := c.pending
	var zero T
	c.pending = zero
	c.timer = nil
	c.action(arg)
}
