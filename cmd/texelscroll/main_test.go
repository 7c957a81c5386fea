// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelscroll/main_test.go
// Summary: Tests for flag parsing and config resolution.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/internal/ptysource"
	"github.com/framegrace/texelscroll/texelui/widgets"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "texelscroll-cmd-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CONFIG_HOME", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"-file", "x.go", "-height", "12", "-no-track", "-class", "dim", "-state-key", "k"})
	if err != nil {
		t.Fatal(err)
	}
	if f.file != "x.go" || f.height != 12 || !f.noTrack || f.class != "dim" || f.stateKey != "k" {
		t.Errorf("flags = %+v", f)
	}
	if _, err := parseFlags([]string{"-file", "a", "-exec", "ls"}); err == nil {
		t.Error("-file with -exec should fail")
	}
	if _, err := parseFlags([]string{"-height", "-2"}); err == nil {
		t.Error("negative height should fail")
	}
}

func TestRunRefusesNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := run(nil, f); err == nil || !strings.Contains(err.Error(), "not a terminal") {
		t.Fatalf("run on a plain file = %v", err)
	}
}

func TestPrintConfig(t *testing.T) {
	var sb strings.Builder
	if err := printConfig(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{"[viewport]", "hide_delay_ms = 2500", "[exec]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestFileContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.go")
	os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0644)
	w, title, err := fileContent(path, "")
	if err != nil {
		t.Fatal(err)
	}
	cb, ok := w.(*widgets.CodeBlock)
	if !ok {
		t.Fatalf("content is %T", w)
	}
	if cb.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3", cb.LineCount())
	}
	if title != "hello.go [Go]" {
		t.Errorf("title = %q", title)
	}
	if _, _, err := fileContent(filepath.Join(t.TempDir(), "missing"), ""); err == nil {
		t.Error("missing file should fail")
	}
}

func TestSampleContent(t *testing.T) {
	cfg := make(config.Config)
	cfg.RegisterDefaults("demo", config.Section{"sample_lines": 25})
	w, title, err := loadContent(flags{}, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if tb := w.(*widgets.TextBlock); tb.LineCount() != 25 {
		t.Errorf("LineCount = %d", tb.LineCount())
	}
	if title != "sample (25 lines)" {
		t.Errorf("title = %q", title)
	}
}

func TestExecContent(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
	opts := ptysource.Options{Cols: 80, Rows: 24, Timeout: 5 * time.Second}
	w, title, err := execContent(context.Background(), "echo a; echo b; exit 2", opts)
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	tb := w.(*widgets.TextBlock)
	if got := strings.Join(tb.Rows(80), "|"); got != "a|b" {
		t.Errorf("rows = %q", got)
	}
	if !strings.HasPrefix(title, "$ echo a; echo b; exit 2 (") {
		t.Errorf("title = %q", title)
	}
}
