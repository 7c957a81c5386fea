// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/main_test.go
// Summary: Test setup for the scroll package.

package scroll

import (
	"os"
	"testing"
)

// TestMain points the config store at a scratch directory so theme lookups
// never touch the user's real config.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "texelscroll-scroll-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CONFIG_HOME", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
