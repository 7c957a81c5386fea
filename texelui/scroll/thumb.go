// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/thumb.go
// Summary: Thumb visibility state machine, hover tracking and debounced styling.

package scroll

import (
	"time"

	"github.com/framegrace/texelscroll/texelui/core"
)

// thumbController owns thumb visibility and presentation. The hide timer
// restarts on every scroll and on every end of interaction; when it fires
// during an interaction the hide is skipped. Style changes go through a
// single debounced channel so hover flicker settles on the last request.
type thumbController struct {
	vp      *Viewport
	visible bool
	hover   HoverState
	style   StyleVariant
	hide    *core.Coalescer[struct{}]
	styler  *core.Coalescer[StyleVariant]
}

func (tc *thumbController) start(sched core.Scheduler, hideDelay, styleDelay time.Duration) {
	tc.hide = core.NewCoalescer(sched, hideDelay, func(struct{}) { tc.onHideTimer() })
	tc.styler = core.NewCoalescer(sched, styleDelay, tc.applyStyle)
}

func (tc *thumbController) stop() {
	tc.hide.Cancel()
	tc.styler.Cancel()
	tc.hide, tc.styler = nil, nil
	tc.hover = HoverState{}
	tc.visible = false
	tc.style = StyleResting
	tc.vp.region.SetPointerEvents(true)
}

func (tc *thumbController) state() ThumbState {
	switch {
	case !tc.visible:
		return ThumbHidden
	case tc.hover.Active():
		return ThumbVisibleActive
	default:
		return ThumbVisibleIdle
	}
}

// setHover applies change to the hover state and reacts to edges of Active.
func (tc *thumbController) setHover(change func(*HoverState)) {
	was := tc.hover.Active()
	change(&tc.hover)
	now := tc.hover.Active()
	switch {
	case !was && now:
		tc.show()
		tc.requestStyle(StyleExpanded)
	case was && !now:
		tc.requestStyle(StyleResting)
		tc.resetHideTimer()
	}
	tc.vp.invalidate()
}

// onScroll runs for every scroll of the own region before user callbacks.
func (tc *thumbController) onScroll() {
	tc.show()
	tc.vp.invalidate()
}

// show makes the thumb visible and restarts the hide timer.
func (tc *thumbController) show() {
	if !tc.vp.mounted {
		return
	}
	if !tc.visible {
		tc.visible = true
		tc.vp.invalidate()
	}
	tc.resetHideTimer()
}

func (tc *thumbController) resetHideTimer() {
	if !tc.vp.mounted {
		return
	}
	tc.hide.Trigger(struct{}{})
}

func (tc *thumbController) onHideTimer() {
	if !tc.vp.mounted || tc.hover.Active() {
		return
	}
	tc.visible = false
	tc.styler.Cancel()
	tc.applyStyle(StyleResting)
	tc.vp.invalidate()
}

func (tc *thumbController) requestStyle(v StyleVariant) {
	if !tc.vp.mounted {
		return
	}
	tc.styler.Trigger(v)
}

func (tc *thumbController) applyStyle(v StyleVariant) {
	if !tc.vp.mounted || tc.style == v {
		return
	}
	tc.style = v
	tc.vp.region.SetPointerEvents(v != StyleExpanded)
	tc.vp.invalidate()
}
