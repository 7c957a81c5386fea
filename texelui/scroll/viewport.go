// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/viewport.go
// Summary: Viewport, a fixed-height scroll region with a synthetic auto-hiding thumb.

package scroll

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/texel/theme"
	"github.com/framegrace/texelscroll/texelui/core"
)

// Viewport wraps a Region and draws a proportional thumb over a track at its
// right edge. The thumb appears on scroll or when the pointer reaches the
// track, hides after a quiet period, widens while interacted with and can be
// dragged. The scroll offset always lives in the Region.
//
// A Viewport must be mounted (added to a UIManager) before timers, global
// listeners or style changes take effect.
type Viewport struct {
	core.BaseWidget
	opts   Options
	timing Timing

	region *Region
	track  *Track
	thumb  *Thumb

	geom   geometryTracker
	thumbs thumbController
	drag   dragController
	blur   blurDetector

	host     core.Host
	mounted  bool
	releases []core.Release
	inv      func(core.Rect)

	store    OffsetStore
	restored bool

	trackStyle   tcell.Style
	restingStyle tcell.Style
	activeStyle  tcell.Style
	indicators   Indicators
}

// NewViewport creates a viewport w columns wide and opts.Height rows tall.
func NewViewport(x, y, w int, opts Options) *Viewport {
	v := &Viewport{opts: opts, timing: DefaultTiming()}
	v.region = NewRegion(x, y, w, max(opts.Height, 0), tcell.StyleDefault)
	v.track = &Track{vp: v}
	v.thumb = &Thumb{vp: v}
	v.thumbs.vp = v
	v.drag.vp = v
	v.blur.vp = v
	v.geom.measure = v.region.contentSize
	v.region.SetOnScroll(v.onRegionScroll)
	v.applyTheme()
	v.SetPosition(x, y)
	v.Resize(w, opts.Height)
	return v
}

func (v *Viewport) applyTheme() {
	tm := theme.Get()
	classes := v.Classes()
	_, bg, _ := v.region.Style.Decompose()
	if c := tm.GetClassColor("scroll", classes, "content_surface", tcell.ColorDefault); c != tcell.ColorDefault {
		bg = c
		v.region.Style = v.region.Style.Background(bg)
	}
	track := tm.GetClassColor("scroll", classes, "track_fg", tcell.ColorGray)
	resting := tm.GetClassColor("scroll", classes, "thumb_resting", tcell.ColorSilver)
	active := tm.GetClassColor("scroll", classes, "thumb_active", tcell.ColorWhite)
	indicator := tm.GetClassColor("scroll", classes, "indicator_fg", resting)
	v.trackStyle = tcell.StyleDefault.Foreground(track).Background(bg)
	v.restingStyle = tcell.StyleDefault.Foreground(resting).Background(bg)
	v.activeStyle = tcell.StyleDefault.Foreground(active).Background(bg)
	v.indicators = DefaultIndicators(tcell.StyleDefault.Foreground(indicator).Background(bg))
}

// SetTiming replaces delays and glyphs. It takes effect on the next Mount.
func (v *Viewport) SetTiming(t Timing) {
	v.timing = t
	v.region.WheelStep = t.WheelStep
}

// SetIndicators replaces the overflow markers used when the track is off.
func (v *Viewport) SetIndicators(in Indicators) {
	v.indicators = in
	v.invalidate()
}

// SetOffsetStore enables offset persistence for viewports with a StateKey.
func (v *Viewport) SetOffsetStore(s OffsetStore) { v.store = s }

// SetContent sets the scrolled widget.
func (v *Viewport) SetContent(w core.Widget) {
	v.region.SetChild(w)
	if v.mounted {
		v.measure()
	}
}

// Region returns the content container that owns the scroll offset.
func (v *Viewport) Region() *Region { return v.region }

// Track returns the track part.
func (v *Viewport) Track() *Track { return v.track }

// Thumb returns the thumb part.
func (v *Viewport) Thumb() *Thumb { return v.thumb }

// Classes returns the wrapper class list.
func (v *Viewport) Classes() []string { return v.opts.Classes() }

// Geometry returns the last measured content box.
func (v *Viewport) Geometry() Geometry { return v.geom.Geometry() }

// ThumbState returns the visibility state of the thumb.
func (v *Viewport) ThumbState() ThumbState { return v.thumbs.state() }

// HoverState returns the current interaction record.
func (v *Viewport) HoverState() HoverState { return v.thumbs.hover }

// Style returns the applied thumb style.
func (v *Viewport) Style() StyleVariant { return v.thumbs.style }

// Dragging reports whether a drag session is open.
func (v *Viewport) Dragging() bool { return v.drag.session != nil }

// ThumbMetrics returns the thumb top and height in fractional rows
// relative to the top of the viewport.
func (v *Viewport) ThumbMetrics() (top, height float64) {
	return thumbMetrics(v.geom.Geometry(), v.viewportHeight(), v.region.ScrollTop())
}

func (v *Viewport) thumbSpan() thumbSpan {
	top, height := v.ThumbMetrics()
	return spanFor(v.track.Rect.H, top, height)
}

func (v *Viewport) thumbStyle() tcell.Style {
	if v.thumbs.style == StyleExpanded {
		return v.activeStyle
	}
	return v.restingStyle
}

func (v *Viewport) viewportHeight() int { return v.region.Rect.H }

func (v *Viewport) trackEnabled() bool { return v.opts.trackVertical() }

// SetPosition moves the viewport and its parts.
func (v *Viewport) SetPosition(x, y int) {
	v.BaseWidget.SetPosition(x, y)
	v.layout()
}

// Resize sets the width and the viewport height.
func (v *Viewport) Resize(w, h int) {
	v.BaseWidget.Resize(w, h)
	v.opts.Height = v.Rect.H
	v.layout()
}

func (v *Viewport) layout() {
	r := v.Rect
	gutter := 0
	if v.trackEnabled() && r.W > 1 {
		gutter = 1
	}
	v.region.SetPosition(r.X, r.Y)
	v.region.Resize(r.W-gutter, r.H)
	if gutter > 0 {
		v.track.SetPosition(r.X+r.W-1, r.Y)
		v.track.Resize(1, r.H)
	} else {
		v.track.Resize(0, 0)
	}
	v.invalidate()
}

// Mount implements core.Mountable.
func (v *Viewport) Mount(host core.Host) {
	if v.mounted || host == nil {
		return
	}
	v.host = host
	v.mounted = true
	sched := host.Scheduler()
	v.thumbs.start(sched, v.timing.HideDelay, v.timing.StyleDelay)
	v.drag.start(sched)
	v.releases = append(v.releases,
		host.OnGlobalScroll(v.blur.onGlobalScroll),
		host.OnPointerMove(v.drag.onPointerMove),
		host.OnPointerUp(v.drag.onPointerUp),
	)
	v.measure()
}

// Updated implements core.Mountable.
func (v *Viewport) Updated() {
	if !v.mounted {
		return
	}
	v.measure()
}

// Unmount implements core.Mountable. It releases exactly what Mount acquired.
func (v *Viewport) Unmount() {
	if !v.mounted {
		return
	}
	v.saveOffset()
	for i := len(v.releases) - 1; i >= 0; i-- {
		v.releases[i]()
	}
	v.releases = nil
	v.thumbs.stop()
	v.drag.stop()
	v.mounted = false
	v.host = nil
}

func (v *Viewport) measure() {
	if v.geom.update() {
		v.invalidate()
	}
	if !v.restored && v.geom.Geometry().Measured && !v.region.Rect.Empty() {
		v.restored = true
		v.restoreOffset()
	}
}

func (v *Viewport) restoreOffset() {
	if v.store == nil || v.opts.StateKey == "" {
		return
	}
	off, ok, err := v.store.LoadOffset(v.opts.StateKey)
	if err != nil {
		log.Printf("Viewport: load offset %q: %v", v.opts.StateKey, err)
		return
	}
	if ok {
		v.region.restoreScrollTop(off)
	}
}

func (v *Viewport) saveOffset() {
	if v.store == nil || v.opts.StateKey == "" {
		return
	}
	if err := v.store.SaveOffset(v.opts.StateKey, v.region.ScrollTop()); err != nil {
		log.Printf("Viewport: save offset %q: %v", v.opts.StateKey, err)
	}
}

func (v *Viewport) onRegionScroll(ev *core.ScrollEvent) {
	v.thumbs.onScroll()
	if v.opts.OnScroll != nil {
		v.opts.OnScroll(ev)
	}
}

// SetInvalidator implements core.InvalidationAware.
func (v *Viewport) SetInvalidator(fn func(core.Rect)) {
	v.inv = fn
	v.region.SetInvalidator(fn)
}

func (v *Viewport) invalidate() {
	if v.inv != nil {
		v.inv(v.Rect)
	}
}

func (v *Viewport) Draw(p *core.Painter) {
	v.region.Draw(p)
	if !v.trackEnabled() {
		v.indicators.draw(p, v.region)
		return
	}
	v.track.Draw(p)
	v.thumb.Draw(p)
}

// HandleKey forwards to the region.
func (v *Viewport) HandleKey(ev *tcell.EventKey) bool {
	return v.region.HandleKey(ev)
}

// VisitChildren implements core.ChildContainer.
func (v *Viewport) VisitChildren(f func(core.Widget)) {
	f(v.region)
	if v.trackEnabled() {
		f(v.track)
		f(v.thumb)
	}
}

// WidgetAt implements core.HitTester. The thumb sits above the track, which
// sits above the region.
func (v *Viewport) WidgetAt(x, y int) core.Widget {
	if !v.HitTest(x, y) {
		return nil
	}
	if v.trackEnabled() {
		if v.thumb.HitTest(x, y) {
			return v.thumb
		}
		if v.track.HitTest(x, y) {
			return v.track
		}
	}
	return v.region.WidgetAt(x, y)
}
