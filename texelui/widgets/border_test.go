// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/border_test.go
// Summary: Tests for the border widget.

package widgets

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/texelui/core"
)

func TestBorderLaysOutChild(t *testing.T) {
	b := NewBorder(2, 1, 10, 6, tcell.StyleDefault)
	child := NewPane(0, 0, 1, 1, tcell.StyleDefault)
	b.SetChild(child)

	if x, y := child.Position(); x != 3 || y != 2 {
		t.Errorf("child position = (%d, %d), want (3, 2)", x, y)
	}
	if w, h := child.Size(); w != 8 || h != 4 {
		t.Errorf("child size = (%d, %d), want (8, 4)", w, h)
	}

	b.SetPosition(0, 0)
	if x, y := child.Position(); x != 1 || y != 1 {
		t.Errorf("child position after move = (%d, %d), want (1, 1)", x, y)
	}
}

func TestBorderDrawsTitle(t *testing.T) {
	buf := newBuffer(12, 3)
	b := NewBorder(0, 0, 12, 3, tcell.StyleDefault)
	b.Title = "log"
	b.Draw(core.NewPainter(buf, core.Rect{W: 12, H: 3}))

	if got := rowText(buf, 0); got != "┌─ log ────┐" {
		t.Errorf("top edge = %q", got)
	}
}

func TestBorderWidgetAt(t *testing.T) {
	b := NewBorder(0, 0, 10, 5, tcell.StyleDefault)
	child := NewPane(0, 0, 1, 1, tcell.StyleDefault)
	b.SetChild(child)

	if w := b.WidgetAt(3, 2); w != core.Widget(child) {
		t.Errorf("WidgetAt inside = %v, want child", w)
	}
	if w := b.WidgetAt(0, 0); w != core.Widget(b) {
		t.Errorf("WidgetAt on frame = %v, want border", w)
	}
	if w := b.WidgetAt(20, 20); w != nil {
		t.Errorf("WidgetAt outside = %v, want nil", w)
	}
}

func TestPaneText(t *testing.T) {
	buf := newBuffer(8, 1)
	p := NewPane(0, 0, 8, 1, tcell.StyleDefault)
	p.SetText("status line")
	p.Draw(core.NewPainter(buf, core.Rect{W: 8, H: 1}))
	if got := rowText(buf, 0); got != "status …" {
		t.Errorf("pane row = %q", got)
	}
}
