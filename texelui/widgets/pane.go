// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/pane.go
// Summary: Pane fills its Rect and can show one line of text, e.g. a status bar.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelscroll/texelui/core"
)

type Pane struct {
	core.BaseWidget
	Style tcell.Style
	text  string
	inv   func(core.Rect)
}

func NewPane(x, y, w, h int, style tcell.Style) *Pane {
	p := &Pane{Style: style}
	p.SetPosition(x, y)
	p.Resize(w, h)
	return p
}

// SetText replaces the line shown at the top-left of the pane.
func (p *Pane) SetText(s string) {
	if s == p.text {
		return
	}
	p.text = s
	if p.inv != nil {
		p.inv(p.Rect)
	}
}

// Text returns the line shown by the pane.
func (p *Pane) Text() string { return p.text }

// SetInvalidator implements core.InvalidationAware.
func (p *Pane) SetInvalidator(fn func(core.Rect)) { p.inv = fn }

func (p *Pane) Draw(painter *core.Painter) {
	style := p.EffectiveStyle(p.Style)
	painter.Fill(p.Rect, ' ', style)
	if p.text != "" && p.Rect.H > 0 {
		painter.DrawText(p.Rect.X, p.Rect.Y, runewidth.Truncate(p.text, p.Rect.W, "…"), style)
	}
}
