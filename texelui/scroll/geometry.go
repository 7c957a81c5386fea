// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/geometry.go
// Summary: Content measurement that only reports actual changes.

package scroll

// geometryTracker stores the content box and reports when it changes.
// Measuring an unchanged box is a no-op, which keeps the
// measure -> render -> measure cycle from looping.
type geometryTracker struct {
	geom    Geometry
	measure func() (w, h int)
}

func (g *geometryTracker) Geometry() Geometry { return g.geom }

// update re-measures and reports whether the stored geometry was replaced.
func (g *geometryTracker) update() bool {
	if g.measure == nil {
		return false
	}
	w, h := g.measure()
	if g.geom.Measured && g.geom.Width == w && g.geom.Height == h {
		return false
	}
	g.geom = Geometry{Width: w, Height: h, Measured: true}
	return true
}

// thumbMetrics returns the thumb height and top in fractional rows.
// Before the first measurement the thumb has no height. Content that fits
// the viewport yields a full-height thumb.
func thumbMetrics(g Geometry, viewportHeight, scrollTop int) (top, height float64) {
	if !g.Measured || viewportHeight <= 0 {
		return 0, 0
	}
	vh := float64(viewportHeight)
	ratio := 1.0
	if g.Height > viewportHeight {
		ratio = vh / float64(g.Height)
	}
	height = ratio * vh
	if g.Height <= 0 {
		return 0, height
	}
	top = float64(scrollTop) / float64(g.Height) * vh
	top = min(max(top, 0), vh-height)
	return top, height
}
