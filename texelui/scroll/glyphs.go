// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/glyphs.go
// Summary: Track and fractional thumb glyphs with 1/8-cell resolution.

package scroll

import "strings"

const subcell = 8

// GlyphSet holds the track glyph and the partial-block thumb glyphs.
// Lower[i] fills the bottom i+1 eighths of a cell, Upper[i] the top i+1.
type GlyphSet struct {
	Track rune
	Lower [subcell]rune
	Upper [subcell]rune
}

// EighthsGlyphSet uses legacy-computing symbols for full 1/8 fidelity.
func EighthsGlyphSet() GlyphSet {
	return GlyphSet{
		Track: '│',
		Lower: [subcell]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'},
		Upper: [subcell]rune{'▔', '🮂', '🮃', '▀', '🮄', '🮅', '🮆', '█'},
	}
}

// UnicodeGlyphSet approximates the upper partial blocks with standard unicode.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		Track: '│',
		Lower: [subcell]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'},
		Upper: [subcell]rune{'▔', '▔', '▀', '▀', '▀', '▀', '█', '█'},
	}
}

// BlockGlyphSet draws whole cells only.
func BlockGlyphSet() GlyphSet {
	g := GlyphSet{Track: '│'}
	for i := range subcell {
		g.Lower[i] = '█'
		g.Upper[i] = '█'
	}
	return g
}

// GlyphSetByName maps "eighths", "unicode" and "block" to a set.
// Unknown names fall back to eighths.
func GlyphSetByName(name string) GlyphSet {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unicode":
		return UnicodeGlyphSet()
	case "block":
		return BlockGlyphSet()
	default:
		return EighthsGlyphSet()
	}
}

// thumbSpan is the thumb in subcell units along a track of trackCells rows.
type thumbSpan struct {
	trackCells int
	start      int
	length     int
}

// spanFor converts float cell metrics to subcells. A visible thumb is kept
// at least one full cell long so it remains grabbable.
func spanFor(trackCells int, top, height float64) thumbSpan {
	trackLen := trackCells * subcell
	if trackLen <= 0 || height <= 0 {
		return thumbSpan{trackCells: trackCells}
	}
	length := min(max(int(height*subcell+0.5), subcell), trackLen)
	start := min(max(int(top*subcell+0.5), 0), trackLen-length)
	return thumbSpan{trackCells: trackCells, start: start, length: length}
}

// cellFill returns the cell-local start and length in eighths covered by the
// thumb in cell index.
func (s thumbSpan) cellFill(index int) (start, fill int) {
	if s.length == 0 {
		return 0, 0
	}
	cellStart := index * subcell
	cellEnd := cellStart + subcell
	lo := max(s.start, cellStart)
	hi := min(s.start+s.length, cellEnd)
	if hi <= lo {
		return 0, 0
	}
	return lo - cellStart, hi - lo
}

// firstCell and lastCell bound the rows the thumb touches.
func (s thumbSpan) firstCell() int { return s.start / subcell }
func (s thumbSpan) lastCell() int  { return (s.start + s.length - 1) / subcell }

// glyph picks the rune for a partially covered cell. ok is false when the
// thumb does not cover the cell.
func (g GlyphSet) glyph(start, fill int) (r rune, ok bool) {
	if fill <= 0 {
		return 0, false
	}
	if fill >= subcell {
		return g.Lower[subcell-1], true
	}
	if start == 0 {
		return g.Upper[fill-1], true
	}
	return g.Lower[fill-1], true
}
