// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/textblock.go
// Summary: TextBlock renders styled, word-wrapped text and reports its height.

package widgets

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/framegrace/texelscroll/texel/theme"
	"github.com/framegrace/texelscroll/texelui/core"
)

const tabWidth = 4

// Span is a run of text drawn with one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// glyph is one grapheme cluster laid out on a row.
type glyph struct {
	text     string
	width    int
	style    tcell.Style
	canBreak bool
}

// TextBlock shows lines of spans. With Wrap set, lines longer than the
// widget width break at line-break opportunities, or mid-word when a word
// does not fit on a row of its own. It implements core.Measurer so scroll
// containers can size it.
type TextBlock struct {
	core.BaseWidget
	Style tcell.Style
	Wrap  bool

	lines     [][]glyph
	rows      [][]glyph
	rowsWidth int
	inv       func(core.Rect)
}

// NewTextBlock creates a wrapping text block showing text.
func NewTextBlock(text string) *TextBlock {
	tm := theme.Get()
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	bg := tm.GetColor("ui", "text_bg", tcell.ColorBlack)
	t := &TextBlock{
		Style: tcell.StyleDefault.Foreground(fg).Background(bg),
		Wrap:  true,
	}
	t.SetText(text)
	return t
}

// SetText replaces the content with plain text in the block's style.
func (t *TextBlock) SetText(text string) {
	src := strings.Split(text, "\n")
	lines := make([][]Span, len(src))
	for i, l := range src {
		lines[i] = []Span{{Text: strings.TrimSuffix(l, "\r"), Style: t.Style}}
	}
	t.SetLines(lines)
}

// SetLines replaces the content with pre-styled lines.
func (t *TextBlock) SetLines(lines [][]Span) {
	t.lines = make([][]glyph, len(lines))
	for i, spans := range lines {
		t.lines[i] = segment(spans)
	}
	t.rows = nil
	t.invalidate()
}

// LineCount returns the number of source lines.
func (t *TextBlock) LineCount() int { return len(t.lines) }

// Rows returns the laid out text of each row at width.
func (t *TextBlock) Rows(width int) []string {
	rows := t.layout(width)
	out := make([]string, len(rows))
	for i, row := range rows {
		var sb strings.Builder
		for _, g := range row {
			sb.WriteString(g.text)
		}
		out[i] = strings.TrimRight(sb.String(), " ")
	}
	return out
}

// Measure implements core.Measurer.
func (t *TextBlock) Measure(width int) (int, int) {
	rows := t.layout(width)
	w := 0
	for _, row := range rows {
		w = max(w, rowWidth(row))
	}
	if t.Wrap {
		w = max(width, 0)
	}
	return w, len(rows)
}

// SetInvalidator implements core.InvalidationAware.
func (t *TextBlock) SetInvalidator(fn func(core.Rect)) { t.inv = fn }

func (t *TextBlock) invalidate() {
	if t.inv != nil {
		t.inv(t.Rect)
	}
}

func (t *TextBlock) Draw(p *core.Painter) {
	p.Fill(t.Rect, ' ', t.Style)
	clip := p.Clip()
	for i, row := range t.layout(t.Rect.W) {
		y := t.Rect.Y + i
		if y < clip.Y {
			continue
		}
		if y >= clip.Y+clip.H {
			break
		}
		x := t.Rect.X
		for _, g := range row {
			if x+g.width > t.Rect.X+t.Rect.W {
				break
			}
			x += p.DrawText(x, y, g.text, g.style)
		}
	}
}

// layout wraps the source lines for width, caching the result per width.
func (t *TextBlock) layout(width int) [][]glyph {
	if t.rows != nil && t.rowsWidth == width {
		return t.rows
	}
	var rows [][]glyph
	for _, line := range t.lines {
		if !t.Wrap || width <= 0 {
			rows = append(rows, line)
			continue
		}
		rows = append(rows, wrapGlyphs(line, width)...)
	}
	t.rows, t.rowsWidth = rows, width
	return rows
}

// segment splits spans into grapheme clusters with their line-break
// opportunities. Tabs expand to spaces.
func segment(spans []Span) []glyph {
	var out []glyph
	col := 0
	for _, sp := range spans {
		state := -1
		str := sp.Text
		for len(str) > 0 {
			cluster, rest, boundaries, next := uniseg.StepString(str, state)
			state, str = next, rest
			if cluster == "" {
				continue
			}
			canBreak := boundaries&uniseg.MaskLine == uniseg.LineCanBreak
			if rest == "" {
				// End of span, not end of line: only whitespace allows a break.
				canBreak = cluster == " "
			}
			if cluster == "\t" {
				n := tabWidth - col%tabWidth
				for i := 0; i < n; i++ {
					out = append(out, glyph{text: " ", width: 1, style: sp.Style, canBreak: i == n-1})
				}
				col += n
				continue
			}
			w := runewidth.StringWidth(cluster)
			out = append(out, glyph{text: cluster, width: w, style: sp.Style, canBreak: canBreak})
			col += w
		}
	}
	return out
}

// wrapGlyphs breaks one source line into rows no wider than width.
// Trailing spaces may hang past the edge; they are never drawn.
func wrapGlyphs(line []glyph, width int) [][]glyph {
	if len(line) == 0 {
		return [][]glyph{nil}
	}
	var rows [][]glyph
	start := 0
	for start < len(line) {
		w, end, lastBreak := 0, start, -1
		for end < len(line) {
			g := line[end]
			if w+g.width > width && g.text != " " {
				break
			}
			w += g.width
			if g.canBreak {
				lastBreak = end
			}
			end++
		}
		if end < len(line) && lastBreak >= start {
			end = lastBreak + 1
		}
		if end == start {
			end = start + 1
		}
		rows = append(rows, line[start:end])
		start = end
	}
	return rows
}

func rowWidth(row []glyph) int {
	w := 0
	for _, g := range row {
		w += g.width
	}
	return w
}
