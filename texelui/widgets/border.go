// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/border.go
// Summary: Border frames a single child and can show a title in its top edge.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelscroll/texelui/core"
)

// Border draws a frame around its Rect with the child laid out inside.
type Border struct {
	core.BaseWidget
	Style   tcell.Style
	Charset [6]rune // h, v, tl, tr, bl, br
	Title   string
	Child   core.Widget
	inv     func(core.Rect)
}

func NewBorder(x, y, w, h int, style tcell.Style) *Border {
	b := &Border{Style: style}
	b.Charset = [6]rune{'─', '│', '┌', '┐', '└', '┘'}
	b.SetPosition(x, y)
	b.Resize(w, h)
	return b
}

// ClientRect is the area inside the frame.
func (b *Border) ClientRect() core.Rect {
	r := b.Rect
	if r.W < 2 || r.H < 2 {
		return core.Rect{X: r.X, Y: r.Y}
	}
	return core.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

func (b *Border) SetChild(w core.Widget) {
	b.Child = w
	if w != nil && b.inv != nil {
		if ia, ok := w.(core.InvalidationAware); ok {
			ia.SetInvalidator(b.inv)
		}
	}
	b.layout()
}

func (b *Border) SetPosition(x, y int) {
	b.BaseWidget.SetPosition(x, y)
	b.layout()
}

func (b *Border) Resize(w, h int) {
	b.BaseWidget.Resize(w, h)
	b.layout()
}

func (b *Border) layout() {
	if b.Child == nil {
		return
	}
	cr := b.ClientRect()
	b.Child.SetPosition(cr.X, cr.Y)
	b.Child.Resize(cr.W, cr.H)
}

// SetInvalidator implements core.InvalidationAware.
func (b *Border) SetInvalidator(fn func(core.Rect)) { b.inv = fn }

func (b *Border) Draw(p *core.Painter) {
	p.DrawBorder(b.Rect, b.Style, b.Charset)
	if b.Title != "" && b.Rect.W > 4 {
		title := runewidth.Truncate(" "+b.Title+" ", b.Rect.W-4, "…")
		p.DrawText(b.Rect.X+2, b.Rect.Y, title, b.Style)
	}
	if b.Child != nil {
		b.Child.Draw(p.WithClip(b.ClientRect()))
	}
}

// VisitChildren implements core.ChildContainer.
func (b *Border) VisitChildren(f func(core.Widget)) {
	if b.Child != nil {
		f(b.Child)
	}
}

// WidgetAt implements core.HitTester, preferring the deepest child widget.
func (b *Border) WidgetAt(x, y int) core.Widget {
	if !b.HitTest(x, y) {
		return nil
	}
	if b.Child != nil && b.ClientRect().Contains(x, y) {
		if ht, ok := b.Child.(core.HitTester); ok {
			if w := ht.WidgetAt(x, y); w != nil {
				return w
			}
		}
		if b.Child.HitTest(x, y) {
			return b.Child
		}
	}
	return b
}
