// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/host.go
// Summary: Host services offered to mounted widgets and the global event listener registry.

package core

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ScrollEvent reports a change of a scroll container's offset.
// Target identifies the container whose offset changed.
type ScrollEvent struct {
	Target    Widget
	ScrollTop int
	Delta     int
}

// PointerEvent is a mouse position delivered to global listeners.
type PointerEvent struct {
	X, Y    int
	Buttons tcell.ButtonMask
}

// Release removes a listener registration. Calling it more than once is safe.
type Release func()

// Host is what a mounted widget can reach in the managing UI.
//
// Global listeners see every event of their kind regardless of which widget
// is under the pointer. Scroll listeners run before the target's own handler
// (capture order), pointer listeners run before normal mouse routing.
type Host interface {
	Scheduler() Scheduler
	OnGlobalScroll(fn func(*ScrollEvent)) Release
	OnPointerMove(fn func(PointerEvent)) Release
	OnPointerUp(fn func(PointerEvent)) Release
	EmitScroll(ev *ScrollEvent)
	Invalidate(r Rect)
}

// listenerSet is an ordered, concurrency-safe list of callbacks.
type listenerSet[T any] struct {
	mu     sync.Mutex
	nextID uint64
	items  []listenerEntry[T]
}

type listenerEntry[T any] struct {
	id uint64
	fn func(T)
}

func (s *listenerSet[T]) add(fn func(T)) Release {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.items = append(s.items, listenerEntry[T]{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, it := range s.items {
			if it.id == id {
				s.items = append(s.items[:i:i], s.items[i+1:]...)
				return
			}
		}
	}
}

// snapshot copies the callbacks so they can run without the lock held;
// listeners may register or release others while being notified.
func (s *listenerSet[T]) snapshot() []func(T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]func(T), len(s.items))
	for i, it := range s.items {
		out[i] = it.fn
	}
	return out
}

func (s *listenerSet[T]) fire(v T) {
	for _, fn := range s.snapshot() {
		fn(v)
	}
}

func (s *listenerSet[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
