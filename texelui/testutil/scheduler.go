// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/testutil/scheduler.go
// Summary: Deterministic scheduler with a virtual clock for widget tests.

package testutil

import (
	"sort"
	"time"

	"github.com/framegrace/texelscroll/texelui/core"
)

// ManualScheduler implements core.Scheduler on a virtual clock. Timers fire
// only from Advance, frame callbacks only from Frame.
type ManualScheduler struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
	frames []func()
}

type manualTimer struct {
	s   *ManualScheduler
	at  time.Duration
	seq uint64
	fn  func()
}

func (t *manualTimer) Stop() bool {
	for i, cur := range t.s.timers {
		if cur == t {
			t.s.timers = append(t.s.timers[:i:i], t.s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements core.Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) core.Timer {
	s.seq++
	t := &manualTimer{s: s, at: s.now + max(d, 0), seq: s.seq, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// RequestFrame implements core.Scheduler.
func (s *ManualScheduler) RequestFrame(f func()) {
	s.frames = append(s.frames, f)
}

// Now returns the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration { return s.now }

// Advance moves the clock forward by d, firing due timers in deadline order.
// Timers scheduled by a firing callback run too when they fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		t := s.nextDue(end)
		if t == nil {
			break
		}
		t.Stop()
		s.now = t.at
		t.fn()
	}
	s.now = end
}

func (s *ManualScheduler) nextDue(end time.Duration) *manualTimer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].at != s.timers[j].at {
			return s.timers[i].at < s.timers[j].at
		}
		return s.timers[i].seq < s.timers[j].seq
	})
	if s.timers[0].at > end {
		return nil
	}
	return s.timers[0]
}

// Frame runs the callbacks queued before the call. It reports how many ran.
func (s *ManualScheduler) Frame() int {
	frames := s.frames
	s.frames = nil
	for _, f := range frames {
		f()
	}
	return len(frames)
}

// PendingTimers reports the number of armed timers.
func (s *ManualScheduler) PendingTimers() int { return len(s.timers) }

// PendingFrames reports the number of queued frame callbacks.
func (s *ManualScheduler) PendingFrames() int { return len(s.frames) }
