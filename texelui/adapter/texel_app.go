// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/adapter/texel_app.go
// Summary: UIApp adapts a UIManager to texel.App; NewViewportApp builds the viewer scene.

package adapter

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/texel"
	"github.com/framegrace/texelscroll/texel/theme"
	"github.com/framegrace/texelscroll/texelui/core"
	"github.com/framegrace/texelscroll/texelui/scroll"
	"github.com/framegrace/texelscroll/texelui/widgets"
)

// UIApp adapts a TexelUI UIManager to the texel.App interface.
type UIApp struct {
	title    string
	ui       *core.UIManager
	stopCh   chan struct{}
	refresh  chan<- bool
	onResize func(w, h int)
}

var (
	_ texel.App          = (*UIApp)(nil)
	_ texel.MouseHandler = (*UIApp)(nil)
	_ texel.Flusher      = (*UIApp)(nil)
)

func NewUIApp(title string, ui *core.UIManager) *UIApp {
	if ui == nil {
		ui = core.NewUIManager()
	}
	return &UIApp{title: title, ui: ui, stopCh: make(chan struct{})}
}

func (a *UIApp) Run() error { <-a.stopCh; return nil }

func (a *UIApp) Stop() {
	select {
	case <-a.stopCh:
	default:
		close(a.stopCh)
	}
}

func (a *UIApp) Resize(cols, rows int) {
	a.ui.Resize(cols, rows)
	if a.onResize != nil {
		a.onResize(cols, rows)
	}
}

func (a *UIApp) Render() [][]texel.Cell { return a.ui.Render() }

func (a *UIApp) GetTitle() string {
	if a.title == "" {
		return "TexelUI"
	}
	return a.title
}

func (a *UIApp) HandleKey(ev *tcell.EventKey) { a.ui.HandleKey(ev) }

func (a *UIApp) HandleMouse(ev *tcell.EventMouse) { a.ui.HandleMouse(ev) }

// Flush runs timer callbacks and frames queued on the UI.
func (a *UIApp) Flush() bool { return a.ui.Flush() }

func (a *UIApp) SetRefreshNotifier(ch chan<- bool) { a.refresh = ch; a.ui.SetRefreshNotifier(ch) }

// UI exposes the manager for composition.
func (a *UIApp) UI() *core.UIManager { return a.ui }

// ViewportAppConfig describes the viewer scene.
type ViewportAppConfig struct {
	Title   string
	Content core.Widget
	Options scroll.Options
	Timing  scroll.Timing
	// FrameInterval bounds drag updates; zero keeps the UIManager default.
	FrameInterval time.Duration
	Store         scroll.OffsetStore
	// Help fills a side panel in its own viewport when the terminal is wide
	// enough. Scrolling it blurs the main viewport.
	Help string
}

// ViewportApp is the viewer: a framed viewport, an optional help panel and
// a status line that follows scroll and blur notifications.
type ViewportApp struct {
	*UIApp
	Viewport *scroll.Viewport
	Side     *scroll.Viewport
	status   *widgets.Pane
	blurred  bool
	roots    []core.Widget
}

// sidePanelMinWidth is the terminal width from which the help panel shows.
const sidePanelMinWidth = 60

// NewViewportApp builds the viewer scene around cfg.Content.
func NewViewportApp(cfg ViewportAppConfig) *ViewportApp {
	ui := core.NewUIManager()
	if cfg.FrameInterval > 0 {
		ui.SetFrameInterval(cfg.FrameInterval)
	}
	tm := theme.Get()
	surface := tcell.StyleDefault.
		Background(tm.GetColor("ui", "surface_bg", tcell.ColorBlack)).
		Foreground(tm.GetColor("ui", "surface_fg", tcell.ColorWhite))
	frame := surface.Foreground(tm.GetColor("ui", "border_fg", tcell.ColorGray))

	app := &ViewportApp{UIApp: NewUIApp(cfg.Title, ui)}
	requested := cfg.Options.Height

	opts := cfg.Options
	userScroll, userBlur := opts.OnScroll, opts.OnBlur
	opts.OnScroll = func(ev *core.ScrollEvent) {
		app.blurred = false
		app.updateStatus()
		if userScroll != nil {
			userScroll(ev)
		}
	}
	opts.OnBlur = func() {
		app.blurred = true
		app.updateStatus()
		if userBlur != nil {
			userBlur()
		}
	}
	if opts.Height <= 0 {
		opts.Height = 1
	}

	timing := cfg.Timing
	if timing.HideDelay == 0 && timing.StyleDelay == 0 {
		timing = scroll.DefaultTiming()
	}

	pane := widgets.NewPane(0, 0, 0, 0, surface)
	ui.AddWidget(pane)
	app.roots = append(app.roots, pane)

	vp := scroll.NewViewport(0, 0, 0, opts)
	vp.SetTiming(timing)
	vp.SetOffsetStore(cfg.Store)
	vp.SetContent(cfg.Content)
	border := widgets.NewBorder(0, 0, 0, 0, frame)
	border.Title = cfg.Title
	border.SetChild(vp)
	ui.AddWidget(border)
	app.roots = append(app.roots, border)
	app.Viewport = vp

	var sideBorder *widgets.Border
	if cfg.Help != "" {
		side := scroll.NewViewport(0, 0, 0, scroll.Options{Height: 1, ClassName: "help"})
		side.SetTiming(timing)
		side.SetContent(widgets.NewTextBlock(cfg.Help))
		sideBorder = widgets.NewBorder(0, 0, 0, 0, frame)
		sideBorder.Title = "keys"
		sideBorder.SetChild(side)
		ui.AddWidget(sideBorder)
		app.roots = append(app.roots, sideBorder)
		app.Side = side
	}

	app.status = widgets.NewPane(0, 0, 0, 0, surface.Reverse(true))
	ui.AddWidget(app.status)
	app.roots = append(app.roots, app.status)
	ui.Focus(vp.Region())

	app.onResize = func(w, h int) {
		pane.SetPosition(0, 0)
		pane.Resize(w, h)

		avail := max(h-1, 0)
		sideW := 0
		if sideBorder != nil && w >= sidePanelMinWidth {
			sideW = w / 3
		}
		mainW := w - sideW

		vh := max(avail-2, 0)
		if requested > 0 && requested < vh {
			vh = requested
		}
		border.SetPosition(0, 0)
		border.Resize(mainW, vh+2)

		if sideBorder != nil {
			sideBorder.SetPosition(mainW, 0)
			sideBorder.Resize(sideW, avail)
		}

		app.status.SetPosition(0, avail)
		app.status.Resize(w, min(h, 1))
		app.updateStatus()
	}
	return app
}

// Close unmounts the scene, which saves persisted offsets and releases
// every listener the viewports registered.
func (a *ViewportApp) Close() {
	for i := len(a.roots) - 1; i >= 0; i-- {
		a.ui.RemoveWidget(a.roots[i])
	}
	a.roots = nil
}

func (a *ViewportApp) updateStatus() {
	if a.status == nil || a.Viewport == nil {
		return
	}
	r := a.Viewport.Region()
	text := fmt.Sprintf(" %d/%d", r.ScrollTop(), r.MaxScroll())
	if ch := r.ContentHeight(); ch > 0 {
		last := min(r.ScrollTop()+r.Rect.H, ch)
		text += fmt.Sprintf("  rows %d-%d of %d", r.ScrollTop()+1, last, ch)
	}
	if a.blurred {
		text += "  (scrolled elsewhere)"
	}
	a.status.SetText(text)
}

// Status returns the status line text.
func (a *ViewportApp) Status() string { return a.status.Text() }
