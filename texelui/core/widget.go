// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/widget.go
// Summary: Widget contract, BaseWidget and the optional capability interfaces.

package core

import "github.com/gdamore/tcell/v2"

// Widget is the minimal contract for drawable UI elements.
type Widget interface {
	SetPosition(x, y int)
	Position() (int, int)
	Resize(w, h int)
	Size() (int, int)
	Draw(p *Painter)
	Focusable() bool
	Focus()
	Blur()
	HandleKey(ev *tcell.EventKey) bool
	HitTest(x, y int) bool
}

// BaseWidget provides common fields/behaviour for widgets.
type BaseWidget struct {
	Rect         Rect
	focused      bool
	focusable    bool
	focusedStyle tcell.Style
	hasFocusSty  bool
}

func (b *BaseWidget) SetPosition(x, y int) { b.Rect.X, b.Rect.Y = x, y }
func (b *BaseWidget) Position() (int, int) { return b.Rect.X, b.Rect.Y }
func (b *BaseWidget) Resize(w, h int) {
	b.Rect.W, b.Rect.H = max(w, 0), max(h, 0)
}
func (b *BaseWidget) Size() (int, int)    { return b.Rect.W, b.Rect.H }
func (b *BaseWidget) Focusable() bool     { return b.focusable }
func (b *BaseWidget) SetFocusable(f bool) { b.focusable = f }
func (b *BaseWidget) Focus() {
	if b.focusable {
		b.focused = true
	}
}
func (b *BaseWidget) Blur()                             { b.focused = false }
func (b *BaseWidget) IsFocused() bool                   { return b.focused }
func (b *BaseWidget) HitTest(x, y int) bool             { return b.Rect.Contains(x, y) }
func (b *BaseWidget) HandleKey(ev *tcell.EventKey) bool { return false }

// SetFocusedStyle sets the style EffectiveStyle returns while focused.
func (b *BaseWidget) SetFocusedStyle(style tcell.Style, enabled bool) {
	b.focusedStyle = style
	b.hasFocusSty = enabled
}

// EffectiveStyle returns the focused style when focused and configured, base otherwise.
func (b *BaseWidget) EffectiveStyle(base tcell.Style) tcell.Style {
	if b.focused && b.hasFocusSty {
		return b.focusedStyle
	}
	return base
}

// MouseAware widgets can consume mouse events directly.
type MouseAware interface {
	HandleMouse(ev *tcell.EventMouse) bool
}

// HoverAware widgets are told when the pointer enters or leaves them.
// Only the topmost widget under the pointer is considered hovered.
type HoverAware interface {
	MouseEnter()
	MouseLeave()
}

// InvalidationAware widgets accept an invalidation callback to mark dirty regions.
type InvalidationAware interface {
	SetInvalidator(func(Rect))
}

// ChildContainer allows recursive operations over widget trees without
// depending on concrete widget packages.
type ChildContainer interface {
	VisitChildren(func(Widget))
}

// HitTester allows a container to return the deepest widget under a point.
type HitTester interface {
	WidgetAt(x, y int) Widget
}

// Measurer reports the size a widget wants when laid out at the given width.
// Scroll containers use it to size content taller than their viewport.
type Measurer interface {
	Measure(width int) (w, h int)
}

// Mountable widgets get lifecycle hooks from the UIManager: Mount when they
// join a managed tree, Updated after every render pass, Unmount when they
// leave. Global listeners acquired in Mount must be released in Unmount.
type Mountable interface {
	Mount(host Host)
	Updated()
	Unmount()
}

// MountTree mounts w and every descendant, parents first.
func MountTree(w Widget, host Host) {
	walkTree(w, func(n Widget) {
		if m, ok := n.(Mountable); ok {
			m.Mount(host)
		}
	})
}

// UnmountTree unmounts w and every descendant, parents first.
func UnmountTree(w Widget) {
	walkTree(w, func(n Widget) {
		if m, ok := n.(Mountable); ok {
			m.Unmount()
		}
	})
}

// UpdateTree delivers the post-render Updated hook to w and its descendants.
func UpdateTree(w Widget) {
	walkTree(w, func(n Widget) {
		if m, ok := n.(Mountable); ok {
			m.Updated()
		}
	})
}

func walkTree(w Widget, fn func(Widget)) {
	if w == nil {
		return
	}
	fn(w)
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) { walkTree(child, fn) })
	}
}

// Contains reports whether target is root or one of its descendants.
func Contains(root, target Widget) bool {
	if root == nil || target == nil {
		return false
	}
	found := false
	walkTree(root, func(n Widget) {
		if n == target {
			found = true
		}
	})
	return found
}
