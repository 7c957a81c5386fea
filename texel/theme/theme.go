// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/theme/theme.go
// Summary: Colour lookups for widgets, backed by the theme sections of the system config.

package theme

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/config"
)

const sectionPrefix = "theme."

// Theme resolves named colours. Sections are stored in the system config as
// "theme.<section>", e.g. "theme.ui" or "theme.scroll".
type Theme struct {
	cfg config.Config
}

var (
	mu      sync.RWMutex
	current *Theme
)

// Get returns the active theme, loading it from the system config on first use.
func Get() *Theme {
	mu.RLock()
	t := current
	mu.RUnlock()
	if t != nil {
		return t
	}

	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = &Theme{cfg: config.Clone(config.System())}
	}
	return current
}

// Reload rebuilds the active theme from the current system config.
func Reload() {
	mu.Lock()
	defer mu.Unlock()
	current = &Theme{cfg: config.Clone(config.System())}
}

// New builds a theme over an explicit config. Used by tests and embedders.
func New(cfg config.Config) *Theme {
	return &Theme{cfg: cfg}
}

// GetColor returns the colour stored under section/key or defaultColor when
// missing or unparsable. Values are "#rrggbb" or tcell colour names.
func (t *Theme) GetColor(section, key string, defaultColor tcell.Color) tcell.Color {
	if t == nil {
		return defaultColor
	}
	raw := t.cfg.GetString(sectionPrefix+section, key, "")
	if raw == "" {
		return defaultColor
	}
	c := parseColor(raw)
	if c == tcell.ColorDefault {
		return defaultColor
	}
	return c
}

// GetSemanticColor resolves dotted semantic names such as "text.primary".
// Unknown names resolve to tcell.ColorDefault so callers can fall back.
func (t *Theme) GetSemanticColor(name string) tcell.Color {
	return t.GetColor("semantic", name, tcell.ColorDefault)
}

// GetClassColor looks the key up in each class override section
// ("theme.<section>.<class>") from last to first, then in the base section.
func (t *Theme) GetClassColor(section string, classes []string, key string, defaultColor tcell.Color) tcell.Color {
	for i := len(classes) - 1; i >= 0; i-- {
		class := strings.TrimSpace(classes[i])
		if class == "" {
			continue
		}
		if c := t.GetColor(section+"."+class, key, tcell.ColorDefault); c != tcell.ColorDefault {
			return c
		}
	}
	return t.GetColor(section, key, defaultColor)
}

func parseColor(raw string) tcell.Color {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(strings.ToLower(raw))
}
