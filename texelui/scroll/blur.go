// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/blur.go
// Summary: Detects scrolling that happens outside the viewport's own region.

package scroll

import "github.com/framegrace/texelscroll/texelui/core"

// blurDetector sees every scroll event before its target does and reports
// those whose target is any widget other than the own region.
type blurDetector struct {
	vp *Viewport
}

func (b *blurDetector) onGlobalScroll(ev *core.ScrollEvent) {
	if ev == nil || ev.Target == core.Widget(b.vp.region) {
		return
	}
	if b.vp.opts.OnBlur != nil {
		b.vp.opts.OnBlur()
	}
}
