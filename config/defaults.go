// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("viewport", Section{
		"hide_delay_ms":     2500,
		"style_delay_ms":    200,
		"frame_interval_ms": 16,
		"wheel_step":        3,
		"glyphs":            "eighths",
	})
	cfg.RegisterDefaults("theme.ui", Section{
		"surface_bg": "#1e1e2e",
		"surface_fg": "#cdd6f4",
		"text_fg":    "#cdd6f4",
		"text_bg":    "#1e1e2e",
		"border_fg":  "#585b70",
	})
	cfg.RegisterDefaults("theme.scroll", Section{
		"track_fg":        "#313244",
		"thumb_resting":   "#6c7086",
		"thumb_active":    "#bac2de",
		"indicator_fg":    "#7f849c",
		"content_surface": "#1e1e2e",
	})
	cfg.RegisterDefaults("theme.semantic", Section{
		"text.primary": "#cdd6f4",
		"text.muted":   "#7f849c",
		"bg.surface":   "#1e1e2e",
	})
	cfg.RegisterDefaults("statestore", Section{
		"enabled": true,
		"path":    "",
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "texelscroll":
		cfg.RegisterDefaults("demo", Section{
			"height":       0,
			"sample_lines": 400,
			"chroma_style": "catppuccin-mocha",
		})
		cfg.RegisterDefaults("exec", Section{
			"timeout_ms": 10000,
			"max_bytes":  4 << 20,
		})
	}
}
