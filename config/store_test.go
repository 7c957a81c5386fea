// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store_test.go
// Summary: Tests for config loading, defaults and overrides.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	apps = nil
	loadErr = nil
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if got := cfg.GetInt("viewport", "hide_delay_ms", 0); got != 2500 {
		t.Fatalf("hide_delay_ms = %d, want 2500", got)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if disk.Section("theme.scroll") == nil {
		t.Fatalf("expected theme.scroll section to be present")
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	SetSystem(Config{
		"viewport": Section{"hide_delay_ms": 900},
	})
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if got := disk.GetInt("viewport", "hide_delay_ms", 0); got != 900 {
		t.Fatalf("expected hide_delay_ms 900 on disk, got %d", got)
	}
}

func TestAppDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := App("texelscroll")
	if got := cfg.GetInt("demo", "sample_lines", 0); got != 400 {
		t.Fatalf("sample_lines = %d, want 400", got)
	}

	path, err := appConfigPath("texelscroll")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected app config at %s: %v", path, err)
	}
}

func TestTOMLFilePreferredOverJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	resetStore()

	root := filepath.Join(dir, "texelscroll")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}
	toml := "[viewport]\nhide_delay_ms = 1000\n\n[theme.scroll]\nthumb_active = \"#ff0000\"\n"
	if err := os.WriteFile(filepath.Join(root, "texelscroll.toml"), []byte(toml), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "texelscroll.json"), []byte(`{"viewport":{"hide_delay_ms":7}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := System()
	if err := Err(); err != nil {
		t.Fatalf("load error: %v", err)
	}
	if got := cfg.GetInt("viewport", "hide_delay_ms", 0); got != 1000 {
		t.Fatalf("hide_delay_ms = %d, want 1000 from TOML", got)
	}
	if got := cfg.GetString("theme.scroll", "thumb_active", ""); got != "#ff0000" {
		t.Fatalf("thumb_active = %q, want #ff0000", got)
	}
	// Defaults still fill keys the file leaves out.
	if got := cfg.GetInt("viewport", "style_delay_ms", 0); got != 200 {
		t.Fatalf("style_delay_ms = %d, want default 200", got)
	}
}

func TestTypedGetters(t *testing.T) {
	cfg := Config{
		"s": Section{
			"ms":     int64(250),
			"flag":   "true",
			"ratio":  json.Number("0.5"),
			"text":   "hello",
			"broken": "nope",
		},
	}
	if got := cfg.GetDuration("s", "ms", 0); got != 250*time.Millisecond {
		t.Errorf("GetDuration = %v, want 250ms", got)
	}
	if got := cfg.GetDuration("s", "missing", time.Second); got != time.Second {
		t.Errorf("GetDuration default = %v, want 1s", got)
	}
	if !cfg.GetBool("s", "flag", false) {
		t.Errorf("GetBool(flag) = false, want true")
	}
	if got := cfg.GetFloat("s", "ratio", 0); got != 0.5 {
		t.Errorf("GetFloat = %v, want 0.5", got)
	}
	if got := cfg.GetInt("s", "broken", 3); got != 3 {
		t.Errorf("GetInt(broken) = %d, want default 3", got)
	}
	if got := cfg.GetString("s", "text", ""); got != "hello" {
		t.Errorf("GetString = %q, want hello", got)
	}
}

func TestCloneCopiesSections(t *testing.T) {
	orig := Config{"a": Section{"k": 1}, "top": "v"}
	clone := Clone(orig)
	clone.Section("a")["k"] = 2
	if orig.GetInt("a", "k", 0) != 1 {
		t.Fatalf("Clone shares section maps with the original")
	}
	if clone["top"] != "v" {
		t.Fatalf("Clone dropped top-level scalar")
	}
}
