// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/region.go
// Summary: Region is the native vertical scroller that owns the scroll offset.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/texel/theme"
	"github.com/framegrace/texelscroll/texelui/core"
)

// Region clips a child taller than itself and scrolls it with the wheel,
// paging keys or programmatic writes. The offset it holds is the only copy;
// every write is clamped to [0, MaxScroll()].
//
// Each change of the offset is dispatched as a core.ScrollEvent: first to
// the host's global scroll listeners, then to the region's own handler.
type Region struct {
	core.BaseWidget
	Style     tcell.Style
	WheelStep int

	child         core.Widget
	scrollTop     int
	host          core.Host
	inv           func(core.Rect)
	onScroll      func(*core.ScrollEvent)
	pointerEvents bool
}

// NewRegion creates a focusable region with the given bounds.
func NewRegion(x, y, w, h int, style tcell.Style) *Region {
	r := &Region{WheelStep: DefaultWheelStep, pointerEvents: true}
	r.SetPosition(x, y)
	r.Resize(w, h)
	r.SetFocusable(true)

	tm := theme.Get()
	fg, bg, attr := style.Decompose()
	if fg == tcell.ColorDefault {
		fg = tm.GetSemanticColor("text.primary")
	}
	if bg == tcell.ColorDefault {
		bg = tm.GetSemanticColor("bg.surface")
	}
	r.Style = tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attr)
	return r
}

// SetChild sets the scrolled content. The offset is re-clamped.
func (r *Region) SetChild(child core.Widget) {
	old := r.child
	r.child = child
	if old != nil && r.host != nil {
		core.UnmountTree(old)
	}
	if child != nil {
		if r.inv != nil {
			if ia, ok := child.(core.InvalidationAware); ok {
				ia.SetInvalidator(r.inv)
			}
		}
		if r.host != nil {
			core.MountTree(child, r.host)
		}
	}
	r.scrollTop = r.clamp(r.scrollTop)
	r.invalidate()
}

// Child returns the scrolled content.
func (r *Region) Child() core.Widget { return r.child }

// SetOnScroll installs the region's own scroll handler.
func (r *Region) SetOnScroll(fn func(*core.ScrollEvent)) { r.onScroll = fn }

// ContentHeight measures the child at the region's width.
func (r *Region) ContentHeight() int {
	_, h := r.contentSize()
	return h
}

func (r *Region) contentSize() (int, int) {
	if r.child == nil {
		return r.Rect.W, 0
	}
	if m, ok := r.child.(core.Measurer); ok {
		w, h := m.Measure(r.Rect.W)
		return w, max(h, 0)
	}
	w, h := r.child.Size()
	return w, max(h, 0)
}

// MaxScroll is the largest valid offset.
func (r *Region) MaxScroll() int {
	return max(r.ContentHeight()-r.Rect.H, 0)
}

// ScrollTop returns the current offset.
func (r *Region) ScrollTop() int { return r.scrollTop }

// SetScrollTop clamps v and, when the offset changes, dispatches a scroll event.
func (r *Region) SetScrollTop(v int) {
	v = r.clamp(v)
	if v == r.scrollTop {
		return
	}
	delta := v - r.scrollTop
	r.scrollTop = v
	r.invalidate()

	ev := &core.ScrollEvent{Target: r, ScrollTop: v, Delta: delta}
	if r.host != nil {
		r.host.EmitScroll(ev)
	}
	if r.onScroll != nil {
		r.onScroll(ev)
	}
}

// restoreScrollTop sets the offset without dispatching an event.
func (r *Region) restoreScrollTop(v int) {
	r.scrollTop = r.clamp(v)
	r.invalidate()
}

// ScrollBy scrolls by delta rows (positive = down).
func (r *Region) ScrollBy(delta int) { r.SetScrollTop(r.scrollTop + delta) }

// ScrollToTop scrolls to the first row.
func (r *Region) ScrollToTop() { r.SetScrollTop(0) }

// ScrollToBottom scrolls to the last page.
func (r *Region) ScrollToBottom() { r.SetScrollTop(r.MaxScroll()) }

func (r *Region) clamp(v int) int {
	return min(max(v, 0), r.MaxScroll())
}

// CanScrollUp reports whether rows are hidden above the viewport.
func (r *Region) CanScrollUp() bool { return r.scrollTop > 0 }

// CanScrollDown reports whether rows are hidden below the viewport.
func (r *Region) CanScrollDown() bool { return r.scrollTop < r.MaxScroll() }

// SetPointerEvents enables or disables forwarding of non-wheel mouse
// events to the child.
func (r *Region) SetPointerEvents(on bool) { r.pointerEvents = on }

// PointerEvents reports whether the child receives mouse events.
func (r *Region) PointerEvents() bool { return r.pointerEvents }

// Mount implements core.Mountable.
func (r *Region) Mount(host core.Host) {
	r.host = host
	r.scrollTop = r.clamp(r.scrollTop)
}

// Updated implements core.Mountable. Content may have shrunk.
func (r *Region) Updated() {
	if c := r.clamp(r.scrollTop); c != r.scrollTop {
		r.SetScrollTop(c)
	}
}

// Unmount implements core.Mountable.
func (r *Region) Unmount() { r.host = nil }

// SetInvalidator implements core.InvalidationAware.
func (r *Region) SetInvalidator(fn func(core.Rect)) {
	r.inv = fn
	if r.child != nil {
		if ia, ok := r.child.(core.InvalidationAware); ok {
			ia.SetInvalidator(fn)
		}
	}
}

func (r *Region) invalidate() {
	if r.inv != nil {
		r.inv(r.Rect)
	}
}

// Draw lays the child out at the current offset and draws it clipped.
func (r *Region) Draw(p *core.Painter) {
	style := r.EffectiveStyle(r.Style)
	p.Fill(r.Rect, ' ', style)
	if r.child == nil {
		return
	}
	w, h := r.contentSize()
	r.child.SetPosition(r.Rect.X, r.Rect.Y-r.scrollTop)
	r.child.Resize(min(w, r.Rect.W), h)
	r.child.Draw(p.WithClip(r.Rect))
}

// Resize keeps the offset valid for the new height.
func (r *Region) Resize(w, h int) {
	r.BaseWidget.Resize(w, h)
	if r.child != nil {
		r.scrollTop = r.clamp(r.scrollTop)
	}
}

// HandleKey scrolls on paging keys and passes the rest to the child.
func (r *Region) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyPgUp:
		r.ScrollBy(-r.Rect.H)
		return true
	case tcell.KeyPgDn:
		r.ScrollBy(r.Rect.H)
		return true
	case tcell.KeyUp:
		r.ScrollBy(-1)
		return true
	case tcell.KeyDown:
		r.ScrollBy(1)
		return true
	case tcell.KeyHome:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			r.ScrollToTop()
			return true
		}
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			r.ScrollToBottom()
			return true
		}
	}
	if r.child != nil {
		return r.child.HandleKey(ev)
	}
	return false
}

// HandleMouse scrolls on the wheel. Other events reach the child only while
// pointer events are enabled.
func (r *Region) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !r.HitTest(x, y) {
		return false
	}
	step := r.WheelStep
	if step <= 0 {
		step = DefaultWheelStep
	}
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		r.ScrollBy(-step)
		return true
	case ev.Buttons()&tcell.WheelDown != 0:
		r.ScrollBy(step)
		return true
	}
	if !r.pointerEvents {
		return true
	}
	if ma, ok := r.child.(core.MouseAware); ok {
		return ma.HandleMouse(ev)
	}
	return false
}

// VisitChildren implements core.ChildContainer.
func (r *Region) VisitChildren(f func(core.Widget)) {
	if r.child != nil {
		f(r.child)
	}
}

// WidgetAt implements core.HitTester. The region routes to its child itself.
func (r *Region) WidgetAt(x, y int) core.Widget {
	if !r.HitTest(x, y) {
		return nil
	}
	return r
}
