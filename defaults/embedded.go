// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded, commented example configuration files.

package defaults

import (
	"embed"
	"fmt"
)

//go:embed texelscroll.toml apps/*/config.toml
var fs embed.FS

// SystemConfig returns the example system config TOML.
func SystemConfig() ([]byte, error) {
	return fs.ReadFile("texelscroll.toml")
}

// AppConfig returns the example config TOML for the named app.
func AppConfig(app string) ([]byte, error) {
	if app == "" {
		return nil, fmt.Errorf("app name is required")
	}
	return fs.ReadFile(fmt.Sprintf("apps/%s/config.toml", app))
}
