// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Clone helpers for config maps.

package config

// Clone returns a copy of the config with every section copied one level deep.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, raw := range cfg {
		var src map[string]interface{}
		switch v := raw.(type) {
		case Section:
			src = v
		case map[string]interface{}:
			src = v
		default:
			clone[name] = v
			continue
		}
		out := make(Section, len(src))
		for key, value := range src {
			out[key] = value
		}
		clone[name] = out
	}
	return clone
}
