// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/types.go
// Summary: Value types shared by the viewport controllers.

package scroll

// Geometry is the last measured box of the content.
type Geometry struct {
	Width    int
	Height   int
	Measured bool
}

// DragSession exists only while the thumb is held.
type DragSession struct {
	StartPointerY  int
	StartScrollTop int
}

// HoverState records pointer interaction with the track and thumb.
type HoverState struct {
	OverThumb    bool
	OverTrack    bool
	ThumbPressed bool
}

// Active reports whether any interaction is in progress.
func (h HoverState) Active() bool {
	return h.OverThumb || h.OverTrack || h.ThumbPressed
}

// StyleVariant selects the thumb presentation.
type StyleVariant int

const (
	// StyleResting is the thin thumb in the resting colour.
	StyleResting StyleVariant = iota
	// StyleExpanded is the wide thumb in the active colour; content stops
	// receiving pointer events while it is applied.
	StyleExpanded
)

func (s StyleVariant) String() string {
	if s == StyleExpanded {
		return "expanded"
	}
	return "resting"
}

// ThumbState is the visibility state of the thumb.
type ThumbState int

const (
	ThumbHidden ThumbState = iota
	ThumbVisibleIdle
	ThumbVisibleActive
)

func (s ThumbState) String() string {
	switch s {
	case ThumbVisibleIdle:
		return "visible-idle"
	case ThumbVisibleActive:
		return "visible-active"
	default:
		return "hidden"
	}
}

// OffsetStore persists scroll offsets by key.
type OffsetStore interface {
	LoadOffset(key string) (offset int, ok bool, err error)
	SaveOffset(key string, offset int) error
}
