// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/drag.go
// Summary: Thumb drag translating pointer travel into frame-coalesced offset writes.

package scroll

import (
	"math"

	"github.com/framegrace/texelscroll/texelui/core"
)

// dragController maps pointer travel to region offsets. Pointer moves are
// observed globally so the drag keeps working when the pointer leaves the
// track. At most one offset write happens per frame, using the latest Y.
type dragController struct {
	vp           *Viewport
	session      *DragSession
	sched        core.Scheduler
	lastY        int
	framePending bool
}

func (dc *dragController) start(sched core.Scheduler) {
	dc.sched = sched
}

func (dc *dragController) stop() {
	dc.session = nil
	dc.framePending = false
	dc.sched = nil
}

// begin opens a session at pointer row y.
func (dc *dragController) begin(y int) {
	if !dc.vp.mounted {
		return
	}
	dc.session = &DragSession{StartPointerY: y, StartScrollTop: dc.vp.region.ScrollTop()}
	dc.lastY = y
	dc.vp.thumbs.setHover(func(h *HoverState) { h.ThumbPressed = true })
}

func (dc *dragController) onPointerMove(ev core.PointerEvent) {
	dc.lastY = ev.Y
	if dc.session == nil || dc.framePending || dc.sched == nil {
		return
	}
	dc.framePending = true
	dc.sched.RequestFrame(dc.frame)
}

func (dc *dragController) frame() {
	dc.framePending = false
	s := dc.session
	if s == nil || !dc.vp.mounted {
		return
	}
	vh := dc.vp.viewportHeight()
	if vh <= 0 {
		return
	}
	ch := dc.vp.geom.Geometry().Height
	delta := float64(dc.lastY-s.StartPointerY) / float64(vh) * float64(ch)
	maxScroll := max(ch-vh, 0)
	next := int(math.Round(float64(s.StartScrollTop) + delta))
	next = min(max(next, 0), maxScroll)
	dc.vp.region.SetScrollTop(next)
}

func (dc *dragController) onPointerUp(core.PointerEvent) {
	if dc.session == nil {
		return
	}
	dc.session = nil
	dc.vp.thumbs.setHover(func(h *HoverState) { h.ThumbPressed = false })
}
