// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/ptysource/clean.go
// Summary: Reduces raw terminal output to printable text lines.

package ptysource

import (
	"strings"
	"unicode/utf8"
)

const esc = 0x1b

// Clean strips escape sequences and control bytes from raw terminal output.
// CRLF becomes LF; a lone CR rewinds to the start of the current line so
// progress-bar style rewrites keep only their last state. Tabs survive.
func Clean(raw []byte) string {
	var lines []string
	var line []rune
	col := 0

	put := func(r rune) {
		if col < len(line) {
			line[col] = r
		} else {
			line = append(line, r)
		}
		col++
	}

	for i := 0; i < len(raw); {
		b := raw[i]
		switch {
		case b == esc:
			i = skipEscape(raw, i)
			continue
		case b == '\n':
			lines = append(lines, string(line))
			line, col = line[:0:0], 0
		case b == '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
				lines = append(lines, string(line))
				line, col = line[:0:0], 0
			} else {
				col = 0
			}
		case b == '\b':
			if col > 0 {
				col--
			}
		case b == '\t':
			put('\t')
		case b < 0x20 || b == 0x7f:
		default:
			r, size := utf8.DecodeRune(raw[i:])
			if r == utf8.RuneError && size <= 1 {
				i++
				continue
			}
			put(r)
			i += size
			continue
		}
		i++
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// skipEscape returns the index just past the escape sequence starting at i.
func skipEscape(raw []byte, i int) int {
	i++
	if i >= len(raw) {
		return i
	}
	switch raw[i] {
	case '[':
		// CSI: parameters and intermediates, then one final byte 0x40-0x7e.
		for i++; i < len(raw); i++ {
			if raw[i] >= 0x40 && raw[i] <= 0x7e {
				return i + 1
			}
		}
		return i
	case ']', 'P', '_', '^', 'X':
		// OSC and string controls end at BEL or ST.
		for i++; i < len(raw); i++ {
			if raw[i] == 0x07 {
				return i + 1
			}
			if raw[i] == esc && i+1 < len(raw) && raw[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	case '(', ')', '*', '+', '#', '%':
		// Charset designation takes one more byte.
		return min(i+2, len(raw))
	default:
		return i + 1
	}
}
