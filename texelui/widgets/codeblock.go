// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/codeblock.go
// Summary: CodeBlock is a TextBlock showing syntax highlighted source.

package widgets

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"
)

const defaultStyleName = "catppuccin-mocha"

// CodeBlock highlights source text. The language is detected from the file
// name and content; unknown or binary input is shown as plain text.
type CodeBlock struct {
	*TextBlock
	Language string
}

// NewCodeBlock highlights source using the named chroma style.
func NewCodeBlock(filename string, source []byte, styleName string) *CodeBlock {
	cb := &CodeBlock{TextBlock: NewTextBlock("")}
	if enry.IsBinary(source) {
		cb.Language = "binary"
		cb.SetText("(binary content not shown)")
		return cb
	}
	cb.Language = DetectLanguage(filename, source)
	cb.SetLines(highlight(string(source), cb.Language, chromaStyle(styleName), cb.Style))
	return cb
}

// DetectLanguage names the language of a file, or "" when unknown.
func DetectLanguage(filename string, source []byte) string {
	return enry.GetLanguage(filepath.Base(filename), source)
}

func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

func lexerFor(language, text string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// highlight tokenises text and splits the tokens into per-line spans.
// Tokens in the style's base text colour keep the block's own foreground.
func highlight(text, language string, style *chroma.Style, base tcell.Style) [][]Span {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	lexer := chroma.Coalesce(lexerFor(language, text))
	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return plainLines(text, base)
	}

	bg := style.Get(chroma.Background)
	if bg.Background.IsSet() {
		base = base.Background(chromaColor(bg.Background))
	}
	baseColour := style.Get(chroma.Text).Colour

	lines := [][]Span{nil}
	for tok := it(); tok != chroma.EOF; tok = it() {
		st := tokenStyle(style.Get(tok.Type), baseColour, base)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], Span{Text: part, Style: st})
			}
		}
	}
	// Lexers may append a newline to the input; keep the source line count.
	if n := strings.Count(text, "\n") + 1; len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

func tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour, base tcell.Style) tcell.Style {
	st := base
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		st = st.Foreground(chromaColor(entry.Colour))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

func chromaColor(c chroma.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

func plainLines(text string, style tcell.Style) [][]Span {
	src := strings.Split(text, "\n")
	out := make([][]Span, len(src))
	for i, l := range src {
		out[i] = []Span{{Text: l, Style: style}}
	}
	return out
}
