// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/app.go
// Summary: Core app contract and framebuffer cell shared by the runner and TexelUI.

package texel

import "github.com/gdamore/tcell/v2"

// Cell is one framebuffer position produced by Render.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// App is a self-contained program the runner can host inside a terminal.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	GetTitle() string
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(refreshChan chan<- bool)
}

// MouseHandler is implemented by apps that consume mouse input.
type MouseHandler interface {
	HandleMouse(ev *tcell.EventMouse)
}

// Flusher is implemented by apps that queue deferred work (timers, frames)
// which must run on the runner's goroutine before the next draw.
type Flusher interface {
	Flush() bool
}
