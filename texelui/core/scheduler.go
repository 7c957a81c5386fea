// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/scheduler.go
// Summary: Deferred work on the UI goroutine: timers and animation frames.

package core

import (
	"sync/atomic"
	"time"
)

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the callback was still pending.
	Stop() bool
}

// Scheduler defers work onto the UI goroutine. Callbacks never run
// concurrently with event handlers.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	RequestFrame(f func())
}

// loopTimer wraps a runtime timer whose callback is queued to the UI loop.
// The stopped flag covers the window between the runtime timer firing and
// the queued callback running.
type loopTimer struct {
	t       *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

func (lt *loopTimer) Stop() bool {
	if lt.stopped.Swap(true) {
		return false
	}
	lt.t.Stop()
	return !lt.fired.Load()
}

// AfterFunc implements Scheduler. f runs from Flush on the UI goroutine.
func (u *UIManager) AfterFunc(d time.Duration, f func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		u.QueueUpdate(func() {
			if lt.stopped.Load() {
				return
			}
			lt.fired.Store(true)
			f()
		})
	})
	return lt
}

// RequestFrame implements Scheduler. f runs in the next frame flush.
func (u *UIManager) RequestFrame(f func()) {
	u.dirtyMu.Lock()
	u.frames = append(u.frames, f)
	u.requestRefreshLocked()
	u.dirtyMu.Unlock()
}

// QueueUpdate queues f to run on the UI goroutine at the next Flush.
// Safe to call from any goroutine.
func (u *UIManager) QueueUpdate(f func()) {
	u.dirtyMu.Lock()
	u.updates = append(u.updates, f)
	u.requestRefreshLocked()
	u.dirtyMu.Unlock()
}

// Flush runs queued updates and, when the frame interval has elapsed, the
// queued frame callbacks. It reports whether anything ran. Frames requested
// while a frame runs wait for the next one.
func (u *UIManager) Flush() bool {
	now := time.Now()

	u.dirtyMu.Lock()
	updates := u.updates
	u.updates = nil
	var frames []func()
	if len(u.frames) > 0 {
		if wait := u.frameInterval - now.Sub(u.lastFrame); wait > 0 {
			u.armFrameTimerLocked(wait)
		} else {
			frames = u.frames
			u.frames = nil
			u.lastFrame = now
		}
	}
	u.dirtyMu.Unlock()

	if len(updates) == 0 && len(frames) == 0 {
		return false
	}

	u.mu.Lock()
	for _, f := range updates {
		f()
	}
	for _, f := range frames {
		f()
	}
	u.mu.Unlock()

	u.dirtyMu.Lock()
	if len(u.frames) > 0 {
		u.armFrameTimerLocked(u.frameInterval)
	}
	u.dirtyMu.Unlock()
	return true
}

// armFrameTimerLocked asks for a refresh once the frame interval allows the
// next flush. Assumes dirtyMu is held.
func (u *UIManager) armFrameTimerLocked(wait time.Duration) {
	if u.frameTimerArmed {
		return
	}
	u.frameTimerArmed = true
	time.AfterFunc(wait, func() {
		u.dirtyMu.Lock()
		u.frameTimerArmed = false
		u.requestRefreshLocked()
		u.dirtyMu.Unlock()
	})
}
