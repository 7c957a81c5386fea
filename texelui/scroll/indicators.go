// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/indicators.go
// Summary: ▲/▼ overflow markers drawn when a viewport has no track.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/texelui/core"
)

// Indicators mark rows hidden above or below a trackless viewport, in its
// rightmost column.
type Indicators struct {
	Style    tcell.Style
	Up, Down rune
}

// DefaultIndicators uses ▲ and ▼.
func DefaultIndicators(style tcell.Style) Indicators {
	return Indicators{Style: style, Up: '▲', Down: '▼'}
}

func (in Indicators) draw(p *core.Painter, r *Region) {
	rect := r.Rect
	if rect.Empty() {
		return
	}
	x := rect.X + rect.W - 1
	if in.Up != 0 && r.CanScrollUp() {
		p.SetCell(x, rect.Y, in.Up, in.Style)
	}
	if in.Down != 0 && r.CanScrollDown() {
		p.SetCell(x, rect.Y+rect.H-1, in.Down, in.Style)
	}
}
