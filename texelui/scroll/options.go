// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/options.go
// Summary: Viewport options, timing knobs and their config-backed constructors.

package scroll

import (
	"strings"
	"time"

	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/texelui/core"
)

// Default timing values.
const (
	DefaultHideDelay  = 2500 * time.Millisecond
	DefaultStyleDelay = 200 * time.Millisecond
	DefaultWheelStep  = 3
)

// Options configures a Viewport.
type Options struct {
	// Height is the viewport height in rows. It is the scale base for thumb
	// and drag math.
	Height int

	// TrackVertical renders the track and thumb. Nil means true.
	TrackVertical *bool

	// OnScroll runs after the viewport has updated its thumb for a scroll of
	// its own region.
	OnScroll func(ev *core.ScrollEvent)

	// OnBlur runs once for every scroll event whose target is not this
	// viewport's region.
	OnBlur func()

	// ClassName is appended to the class list; each class selects a
	// "theme.scroll.<class>" colour override section.
	ClassName string

	// StateKey restores the offset from the OffsetStore after the first
	// measurement and saves it on unmount. Empty disables persistence.
	StateKey string
}

// Bool returns a pointer to b, for Options.TrackVertical.
func Bool(b bool) *bool { return &b }

func (o Options) trackVertical() bool {
	return o.TrackVertical == nil || *o.TrackVertical
}

// Classes returns the wrapper class list: the base class followed by the
// space separated entries of ClassName.
func (o Options) Classes() []string {
	classes := []string{"scroll-viewport"}
	return append(classes, strings.Fields(o.ClassName)...)
}

// Timing holds the delays the thumb controller uses.
type Timing struct {
	HideDelay  time.Duration
	StyleDelay time.Duration
	WheelStep  int
	Glyphs     GlyphSet
}

// DefaultTiming returns the built-in timing.
func DefaultTiming() Timing {
	return Timing{
		HideDelay:  DefaultHideDelay,
		StyleDelay: DefaultStyleDelay,
		WheelStep:  DefaultWheelStep,
		Glyphs:     EighthsGlyphSet(),
	}
}

// TimingFromConfig reads the "viewport" section of cfg.
func TimingFromConfig(cfg config.Config) Timing {
	t := DefaultTiming()
	t.HideDelay = cfg.GetDuration("viewport", "hide_delay_ms", t.HideDelay)
	t.StyleDelay = cfg.GetDuration("viewport", "style_delay_ms", t.StyleDelay)
	if step := cfg.GetInt("viewport", "wheel_step", t.WheelStep); step > 0 {
		t.WheelStep = step
	}
	t.Glyphs = GlyphSetByName(cfg.GetString("viewport", "glyphs", "eighths"))
	return t
}

// FrameIntervalFromConfig reads the UI frame interval from cfg.
func FrameIntervalFromConfig(cfg config.Config) time.Duration {
	return cfg.GetDuration("viewport", "frame_interval_ms", core.DefaultFrameInterval)
}

// OptionsFromConfig fills Options from the "demo" section of an app config,
// keeping fields of base that the config leaves unset.
func OptionsFromConfig(cfg config.Config, base Options) Options {
	if h := cfg.GetInt("demo", "height", 0); h > 0 {
		base.Height = h
	}
	if s := cfg.Section("demo"); s != nil {
		if _, ok := s["track_vertical"]; ok {
			base.TrackVertical = Bool(cfg.GetBool("demo", "track_vertical", true))
		}
	}
	if c := cfg.GetString("demo", "class_name", ""); c != "" && base.ClassName == "" {
		base.ClassName = c
	}
	return base
}
