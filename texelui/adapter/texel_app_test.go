// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/adapter/texel_app_test.go
// Summary: Tests for the viewport app adapter.

package adapter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/texel"
	"github.com/framegrace/texelscroll/texelui/core"
	"github.com/framegrace/texelscroll/texelui/scroll"
	"github.com/framegrace/texelscroll/texelui/widgets"
)

func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(lines, "\n")
}

func rowText(buf [][]texel.Cell, y int) string {
	var sb strings.Builder
	for _, c := range buf[y] {
		if c.Ch == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Ch)
	}
	return sb.String()
}

func newViewer(t *testing.T, help string) *ViewportApp {
	t.Helper()
	app := NewViewportApp(ViewportAppConfig{
		Title:   "viewer",
		Content: widgets.NewTextBlock(numbered(100)),
		Help:    help,
	})
	app.Resize(80, 24)
	app.Render()
	return app
}

func TestUIAppStopIsIdempotent(t *testing.T) {
	app := NewUIApp("", nil)
	if app.GetTitle() != "TexelUI" {
		t.Errorf("default title = %q", app.GetTitle())
	}
	done := make(chan error, 1)
	go func() { done <- app.Run() }()
	app.Stop()
	app.Stop()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
}

func TestViewportAppLayout(t *testing.T) {
	app := newViewer(t, "")
	buf := app.Render()
	if len(buf) != 24 || len(buf[0]) != 80 {
		t.Fatalf("buffer is %dx%d", len(buf[0]), len(buf))
	}
	if !strings.Contains(rowText(buf, 0), "viewer") {
		t.Errorf("title missing from top row %q", rowText(buf, 0))
	}
	if got := rowText(buf, 1); !strings.Contains(got, "line 0") {
		t.Errorf("first content row = %q", got)
	}
	r := app.Viewport.Region().Rect
	if r.H != 21 {
		t.Errorf("viewport height = %d, want 21", r.H)
	}
	if got := app.Status(); got != " 0/79  rows 1-21 of 100" {
		t.Errorf("status = %q", got)
	}
}

func TestViewportAppRequestedHeight(t *testing.T) {
	app := NewViewportApp(ViewportAppConfig{
		Content: widgets.NewTextBlock(numbered(50)),
		Options: scroll.Options{Height: 5},
	})
	app.Resize(40, 20)
	app.Render()
	if h := app.Viewport.Region().Rect.H; h != 5 {
		t.Errorf("viewport height = %d, want 5", h)
	}
}

func TestViewportAppStatusFollowsScroll(t *testing.T) {
	var seen int
	app := NewViewportApp(ViewportAppConfig{
		Content: widgets.NewTextBlock(numbered(100)),
		Options: scroll.Options{OnScroll: func(*core.ScrollEvent) { seen++ }},
	})
	app.Resize(80, 24)
	app.Render()

	app.HandleKey(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	if top := app.Viewport.Region().ScrollTop(); top != 21 {
		t.Fatalf("ScrollTop = %d, want 21", top)
	}
	if !strings.HasPrefix(app.Status(), " 21/79") {
		t.Errorf("status = %q", app.Status())
	}
	if seen != 1 {
		t.Errorf("user OnScroll ran %d times, want 1", seen)
	}
}

func TestViewportAppSidePanelBlursMain(t *testing.T) {
	app := newViewer(t, numbered(60))
	if app.Side == nil {
		t.Fatal("help panel missing")
	}
	if w := app.Viewport.Rect.W; w != 52 {
		t.Errorf("main viewport width = %d, want 52", w)
	}
	app.Side.Region().SetScrollTop(3)
	if !strings.Contains(app.Status(), "scrolled elsewhere") {
		t.Errorf("status after side scroll = %q", app.Status())
	}
	app.Viewport.Region().ScrollBy(1)
	if strings.Contains(app.Status(), "scrolled elsewhere") {
		t.Errorf("own scroll should clear the blur notice: %q", app.Status())
	}
}

func TestViewportAppNarrowHidesSidePanel(t *testing.T) {
	app := newViewer(t, numbered(10))
	app.Resize(50, 24)
	app.Render()
	if w := app.Viewport.Rect.W; w != 48 {
		t.Errorf("main viewport width = %d, want 48", w)
	}
}

type memStore map[string]int

func (m memStore) LoadOffset(key string) (int, bool, error) {
	off, ok := m[key]
	return off, ok, nil
}

func (m memStore) SaveOffset(key string, off int) error {
	m[key] = off
	return nil
}

func TestViewportAppCloseSavesAndReleases(t *testing.T) {
	store := memStore{"doc": 30}
	app := NewViewportApp(ViewportAppConfig{
		Content: widgets.NewTextBlock(numbered(100)),
		Options: scroll.Options{StateKey: "doc"},
		Store:   store,
		Help:    numbered(5),
	})
	app.Resize(80, 24)
	app.Render()
	if top := app.Viewport.Region().ScrollTop(); top != 30 {
		t.Fatalf("restored ScrollTop = %d, want 30", top)
	}
	if n := app.UI().ListenerCount(); n != 6 {
		t.Errorf("listeners while mounted = %d, want 6", n)
	}
	app.Viewport.Region().ScrollBy(5)
	app.Close()
	if store["doc"] != 35 {
		t.Errorf("saved offset = %d, want 35", store["doc"])
	}
	if n := app.UI().ListenerCount(); n != 0 {
		t.Errorf("listeners after Close = %d, want 0", n)
	}
}
