// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelscroll/content.go
// Summary: Builds the viewport content from a file, a command or sample text.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/internal/devshell"
	"github.com/framegrace/texelscroll/internal/ptysource"
	"github.com/framegrace/texelscroll/texelui/core"
	"github.com/framegrace/texelscroll/texelui/widgets"
)

// loadContent picks the content widget and a title for it.
func loadContent(f flags, cfg config.Config, tty *os.File) (core.Widget, string, error) {
	switch {
	case f.file != "":
		return fileContent(f.file, cfg.GetString("demo", "chroma_style", ""))
	case f.exec != "":
		opts := ptysource.OptionsFromConfig(cfg)
		opts.Cols, opts.Rows = ptysource.TerminalSize(tty)
		return execContent(context.Background(), f.exec, opts)
	default:
		n := cfg.GetInt("demo", "sample_lines", 400)
		return widgets.NewTextBlock(devshell.SampleText(n)), fmt.Sprintf("sample (%d lines)", n), nil
	}
}

func fileContent(path, style string) (core.Widget, string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	cb := widgets.NewCodeBlock(path, src, style)
	title := filepath.Base(path)
	if cb.Language != "" {
		title += " [" + cb.Language + "]"
	}
	log.Printf("file %s: %d bytes, language %q", path, len(src), cb.Language)
	return cb, title, nil
}

func execContent(ctx context.Context, command string, opts ptysource.Options) (core.Widget, string, error) {
	res, err := ptysource.Capture(ctx, "/bin/sh", []string{"-c", command}, opts)
	if err != nil {
		return nil, "", fmt.Errorf("exec %q: %w", command, err)
	}
	text := res.Text
	switch {
	case res.TimedOut:
		text += fmt.Sprintf("\n[stopped after %v]", opts.Timeout)
	case res.Truncated:
		text += fmt.Sprintf("\n[output truncated at %d bytes]", opts.MaxBytes)
	}
	title := "$ " + command
	if res.ExitErr != nil {
		title += " (" + res.ExitErr.Error() + ")"
	}
	return widgets.NewTextBlock(text), title, nil
}
