// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/ptysource/clean_test.go
// Summary: Tests for terminal output cleaning.

package ptysource

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello\nworld\n", "hello\nworld"},
		{"crlf", "a\r\nb\r\n", "a\nb"},
		{"sgr", "\x1b[1;31mred\x1b[0m text", "red text"},
		{"osc title bel", "\x1b]0;title\x07body", "body"},
		{"osc title st", "\x1b]2;t\x1b\\body", "body"},
		{"charset", "\x1b(Bascii", "ascii"},
		{"carriage return rewrites", "50%\r100%\n", "100%"},
		{"partial rewrite", "abcdef\rXY\n", "XYcdef"},
		{"backspace", "ab\bc", "ac"},
		{"controls dropped", "a\x00\x07b", "ab"},
		{"tabs kept", "a\tb", "a\tb"},
		{"utf8", "héllo ✓", "héllo ✓"},
		{"trailing blank lines", "x\n\n  \n", "x"},
		{"truncated csi", "x\x1b[12", "x"},
		{"invalid utf8 skipped", "a\xffb", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean([]byte(tt.in)); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
