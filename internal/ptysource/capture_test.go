// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/ptysource/capture_test.go
// Summary: Tests for pty command capture.

package ptysource

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/framegrace/texelscroll/config"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCaptureOutput(t *testing.T) {
	requireShell(t)
	res, err := Capture(context.Background(), "sh", []string{"-c", "printf 'one\\ntwo\\n'; echo $COLUMNS"}, Options{Cols: 33, Rows: 5, Timeout: 5 * time.Second})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if res.ExitErr != nil || res.TimedOut {
		t.Fatalf("unexpected failure: %+v", res)
	}
	if res.Text != "one\ntwo\n33" {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestCaptureTimeout(t *testing.T) {
	requireShell(t)
	start := time.Now()
	res, err := Capture(context.Background(), "sh", []string{"-c", "echo started; sleep 10"}, Options{Timeout: 200 * time.Millisecond})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if !res.TimedOut {
		t.Errorf("TimedOut = false, result %+v", res)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("deadline not enforced, took %v", time.Since(start))
	}
}

func TestCaptureExitStatus(t *testing.T) {
	requireShell(t)
	res, err := Capture(context.Background(), "sh", []string{"-c", "echo oops; exit 3"}, Options{Timeout: 5 * time.Second})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if res.ExitErr == nil {
		t.Error("expected exit error")
	}
	if !strings.Contains(res.Text, "oops") {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestCaptureStartFailure(t *testing.T) {
	if _, err := Capture(context.Background(), "/nonexistent/texelscroll-cmd", nil, Options{}); err == nil {
		t.Fatal("expected start error")
	}
}

func TestReadCapped(t *testing.T) {
	out, truncated := readCapped(bytes.NewReader(bytes.Repeat([]byte("x"), 10000)), 4100)
	if len(out) != 4100 || !truncated {
		t.Errorf("len = %d truncated = %v", len(out), truncated)
	}
	out, truncated = readCapped(strings.NewReader("short"), 0)
	if string(out) != "short" || truncated {
		t.Errorf("unlimited read = %q %v", out, truncated)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := make(config.Config)
	cfg.RegisterDefaults("exec", config.Section{"timeout_ms": 1500, "max_bytes": 1024})
	o := OptionsFromConfig(cfg)
	if o.Timeout != 1500*time.Millisecond || o.MaxBytes != 1024 {
		t.Errorf("options = %+v", o)
	}
	d, want := OptionsFromConfig(make(config.Config)), DefaultOptions()
	if d.Timeout != want.Timeout || d.MaxBytes != want.MaxBytes {
		t.Errorf("empty config = %+v", d)
	}
}

func TestTerminalSizeFallback(t *testing.T) {
	if c, r := TerminalSize(nil); c != 80 || r != 24 {
		t.Errorf("TerminalSize(nil) = %d, %d", c, r)
	}
}
