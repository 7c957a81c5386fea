// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Runs a texel.App directly on a local tcell screen.

package devshell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/texel"
	"github.com/framegrace/texelscroll/texelui/adapter"
	"github.com/framegrace/texelscroll/texelui/widgets"
)

// Builder constructs a texel.App, optionally using CLI args.
type Builder func(args []string) (texel.App, error)

var registry = map[string]Builder{
	"viewport-demo": func(args []string) (texel.App, error) {
		n := 200
		if len(args) > 0 {
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 0 {
				return nil, fmt.Errorf("line count %q: want a non-negative integer", args[0])
			}
		}
		return adapter.NewViewportApp(adapter.ViewportAppConfig{
			Title:   "viewport demo",
			Content: widgets.NewTextBlock(SampleText(n)),
		}), nil
	},
}

// Register adds or replaces a named builder.
func Register(name string, b Builder) { registry[name] = b }

// Names lists the registered builders.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SampleText produces n numbered lines of varying length for demos.
func SampleText(n int) string {
	words := []string{"scroll", "viewport", "thumb", "track", "offset", "frame", "wheel", "drag"}
	var sb strings.Builder
	for i := range n {
		fmt.Fprintf(&sb, "%4d ", i+1)
		for j := range i%7 + 1 {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(words[(i+j)%len(words)])
		}
		if i < n-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run executes the provided builder inside a local tcell screen.
func Run(builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}
	return RunApp(app)
}

// RunApp drives app on a fresh screen until Ctrl-C or until app.Run returns.
func RunApp(app texel.App) error {
	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()

	width, height := screen.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	flusher, _ := app.(texel.Flusher)
	draw := func() {
		if flusher != nil {
			flusher.Flush()
		}
		buffer := app.Render()
		for y, row := range buffer {
			for x, cell := range row {
				screen.SetContent(x, y, cell.Ch, nil, cell.Style)
			}
		}
		screen.Show()
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- app.Run()
	}()
	defer app.Stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-refreshCh:
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	draw()

	for {
		select {
		case err := <-runErr:
			return err
		default:
		}

		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			app.HandleKey(tev)
			draw()
		case *tcell.EventMouse:
			if mh, ok := app.(texel.MouseHandler); ok {
				mh.HandleMouse(tev)
				draw()
			}
		}
	}
}

// RunNamed finds a registered builder by name and runs it.
func RunNamed(name string, args []string) error {
	buildApp, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown app %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return Run(buildApp, args)
}
