// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/parts.go
// Summary: Track and Thumb, the hit-testable parts of the synthetic scrollbar.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/texelui/core"
)

// Track is the column at the right edge of the viewport the thumb moves in.
type Track struct {
	core.BaseWidget
	vp *Viewport
}

// MouseEnter implements core.HoverAware.
func (t *Track) MouseEnter() {
	t.vp.thumbs.setHover(func(h *HoverState) { h.OverTrack = true })
}

// MouseLeave implements core.HoverAware.
func (t *Track) MouseLeave() {
	t.vp.thumbs.setHover(func(h *HoverState) { h.OverTrack = false })
}

// HandleMouse pages towards the pointer on press and forwards the wheel to
// the region.
func (t *Track) HandleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown) != 0 {
		return t.vp.region.HandleMouse(wheelAt(ev, t.vp.region.Rect))
	}
	if ev.Buttons()&tcell.Button1 == 0 || t.vp.drag.session != nil {
		return true
	}
	_, y := ev.Position()
	top, height := t.vp.ThumbMetrics()
	row := float64(y - t.Rect.Y)
	switch {
	case row < top:
		t.vp.region.ScrollBy(-t.vp.viewportHeight())
	case row >= top+height:
		t.vp.region.ScrollBy(t.vp.viewportHeight())
	}
	return true
}

// Draw paints the track column, or blanks it while the thumb is hidden.
func (t *Track) Draw(p *core.Painter) {
	if t.Rect.Empty() {
		return
	}
	vp := t.vp
	if vp.thumbs.state() == ThumbHidden {
		p.Fill(t.Rect, ' ', vp.region.Style)
		return
	}
	for row := 0; row < t.Rect.H; row++ {
		p.SetCell(t.Rect.X, t.Rect.Y+row, vp.timing.Glyphs.Track, vp.trackStyle)
	}
}

// Thumb is the draggable handle. Its bounds follow the scroll offset.
type Thumb struct {
	core.BaseWidget
	vp *Viewport
}

// Bounds returns the cells the thumb covers, or an empty Rect when hidden.
func (t *Thumb) Bounds() core.Rect {
	vp := t.vp
	if !vp.trackEnabled() || vp.thumbs.state() == ThumbHidden {
		return core.Rect{}
	}
	track := vp.track.Rect
	span := vp.thumbSpan()
	if span.length == 0 {
		return core.Rect{}
	}
	cols := 1
	if vp.thumbs.style == StyleExpanded {
		cols = 2
	}
	first, last := span.firstCell(), span.lastCell()
	return core.Rect{
		X: track.X + 1 - cols,
		Y: track.Y + first,
		W: cols,
		H: last - first + 1,
	}
}

func (t *Thumb) Position() (int, int) {
	b := t.Bounds()
	return b.X, b.Y
}

func (t *Thumb) Size() (int, int) {
	b := t.Bounds()
	return b.W, b.H
}

func (t *Thumb) HitTest(x, y int) bool { return t.Bounds().Contains(x, y) }

// MouseEnter implements core.HoverAware.
func (t *Thumb) MouseEnter() {
	t.vp.thumbs.setHover(func(h *HoverState) { h.OverThumb = true })
}

// MouseLeave implements core.HoverAware.
func (t *Thumb) MouseLeave() {
	t.vp.thumbs.setHover(func(h *HoverState) { h.OverThumb = false })
}

// HandleMouse starts a drag on press and consumes everything else so the
// content and ancestors never see thumb input.
func (t *Thumb) HandleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown) != 0 {
		return t.vp.region.HandleMouse(wheelAt(ev, t.vp.region.Rect))
	}
	if ev.Buttons()&tcell.Button1 != 0 && t.vp.drag.session == nil {
		_, y := ev.Position()
		t.vp.drag.begin(y)
	}
	return true
}

// Draw paints the thumb span with eighth-cell glyphs.
func (t *Thumb) Draw(p *core.Painter) {
	b := t.Bounds()
	if b.Empty() {
		return
	}
	vp := t.vp
	style := vp.thumbStyle()
	span := vp.thumbSpan()
	trackY := vp.track.Rect.Y
	for row := b.Y; row < b.Y+b.H; row++ {
		start, fill := span.cellFill(row - trackY)
		r, ok := vp.timing.Glyphs.glyph(start, fill)
		if !ok {
			continue
		}
		for col := b.X; col < b.X+b.W; col++ {
			p.SetCell(col, row, r, style)
		}
	}
}

// wheelAt re-targets a wheel event into r so the region's own hit test passes.
func wheelAt(ev *tcell.EventMouse, r core.Rect) *tcell.EventMouse {
	_, y := ev.Position()
	x := r.X + max(r.W-1, 0)
	return tcell.NewEventMouse(x, y, ev.Buttons(), ev.Modifiers())
}
