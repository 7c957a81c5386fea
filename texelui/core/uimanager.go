// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/uimanager.go
// Summary: UIManager owns the widget tree, routes input and composes dirty regions.

package core

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/texel"
	"github.com/framegrace/texelscroll/texel/theme"
)

// DefaultFrameInterval bounds how often frame callbacks run.
const DefaultFrameInterval = 16 * time.Millisecond

// UIManager owns a small widget tree and composes it to a buffer.
// It is the Host for every mounted widget.
type UIManager struct {
	mu       sync.Mutex // protects widgets, focus, capture, hover, buffer
	dirtyMu  sync.Mutex // protects dirty list, notifier, update and frame queues
	W, H     int
	widgets  []Widget // later entries draw on top
	bgStyle  tcell.Style
	notifier chan<- bool
	focused  Widget
	capture  Widget
	hovered  Widget
	buf      [][]texel.Cell
	dirty    []Rect

	updates         []func()
	frames          []func()
	frameInterval   time.Duration
	lastFrame       time.Time
	frameTimerArmed bool
	sched           Scheduler

	scrollListeners listenerSet[*ScrollEvent]
	moveListeners   listenerSet[PointerEvent]
	upListeners     listenerSet[PointerEvent]

	lastX, lastY int
	lastButtons  tcell.ButtonMask
	havePointer  bool
}

func NewUIManager() *UIManager {
	tm := theme.Get()
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	fg := tm.GetColor("ui", "surface_fg", tcell.ColorWhite)
	return &UIManager{
		bgStyle:       tcell.StyleDefault.Background(bg).Foreground(fg),
		frameInterval: DefaultFrameInterval,
	}
}

// SetScheduler replaces the loop scheduler handed to mounted widgets.
// Must be called before widgets are added.
func (u *UIManager) SetScheduler(s Scheduler) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.sched = s
}

// SetFrameInterval sets the minimum spacing between frame flushes.
func (u *UIManager) SetFrameInterval(d time.Duration) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	if d < 0 {
		d = 0
	}
	u.frameInterval = d
}

// Scheduler implements Host.
func (u *UIManager) Scheduler() Scheduler {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	if u.sched != nil {
		return u.sched
	}
	return u
}

// OnGlobalScroll implements Host.
func (u *UIManager) OnGlobalScroll(fn func(*ScrollEvent)) Release {
	return u.scrollListeners.add(fn)
}

// OnPointerMove implements Host.
func (u *UIManager) OnPointerMove(fn func(PointerEvent)) Release {
	return u.moveListeners.add(fn)
}

// OnPointerUp implements Host.
func (u *UIManager) OnPointerUp(fn func(PointerEvent)) Release {
	return u.upListeners.add(fn)
}

// EmitScroll delivers ev to every global scroll listener.
func (u *UIManager) EmitScroll(ev *ScrollEvent) {
	if ev == nil {
		return
	}
	u.scrollListeners.fire(ev)
}

// ListenerCount reports the number of live global listeners.
func (u *UIManager) ListenerCount() int {
	return u.scrollListeners.len() + u.moveListeners.len() + u.upListeners.len()
}

func (u *UIManager) SetRefreshNotifier(ch chan<- bool) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.notifier = ch
}

func (u *UIManager) RequestRefresh() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.requestRefreshLocked()
}

func (u *UIManager) Resize(w, h int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	u.W, u.H = max(w, 0), max(h, 0)
	u.buf = nil
	u.invalidateAllLocked()
}

// AddWidget adds w on top of the existing widgets and mounts its tree.
func (u *UIManager) AddWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.widgets = append(u.widgets, w)
	u.propagateInvalidator(w)
	MountTree(w, u)
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

// RemoveWidget unmounts w and drops it from the tree.
func (u *UIManager) RemoveWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := -1
	for i, cur := range u.widgets {
		if cur == w {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	u.widgets = append(u.widgets[:idx:idx], u.widgets[idx+1:]...)
	if Contains(w, u.focused) {
		u.focused = nil
	}
	if Contains(w, u.capture) {
		u.capture = nil
	}
	if Contains(w, u.hovered) {
		u.hovered = nil
	}
	UnmountTree(w)
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

func (u *UIManager) propagateInvalidator(w Widget) {
	walkTree(w, func(n Widget) {
		if ia, ok := n.(InvalidationAware); ok {
			ia.SetInvalidator(u.Invalidate)
		}
	})
}

func (u *UIManager) Focus(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.focusLocked(w)
}

// Focused returns the widget holding keyboard focus.
func (u *UIManager) Focused() Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.focused
}

func (u *UIManager) focusLocked(w Widget) {
	if w == nil || !w.Focusable() || u.focused == w {
		return
	}
	if u.focused != nil {
		u.focused.Blur()
	}
	u.focused = w
	u.focused.Focus()
}

func (u *UIManager) HandleKey(ev *tcell.EventKey) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.focused != nil && u.focused.HandleKey(ev) {
		u.dirtyMu.Lock()
		if len(u.dirty) == 0 {
			u.invalidateAllLocked()
		} else {
			u.requestRefreshLocked()
		}
		u.dirtyMu.Unlock()
		return true
	}

	if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyBacktab {
		forward := ev.Key() == tcell.KeyTab && ev.Modifiers()&tcell.ModShift == 0
		if u.cycleFocusLocked(forward) {
			u.dirtyMu.Lock()
			u.invalidateAllLocked()
			u.dirtyMu.Unlock()
			return true
		}
	}
	return false
}

// cycleFocusLocked moves focus to the next focusable widget in tree order.
func (u *UIManager) cycleFocusLocked(forward bool) bool {
	var order []Widget
	for _, root := range u.widgets {
		walkTree(root, func(n Widget) {
			if n.Focusable() {
				order = append(order, n)
			}
		})
	}
	if len(order) == 0 {
		return false
	}
	cur := -1
	for i, w := range order {
		if w == u.focused {
			cur = i
			break
		}
	}
	n := len(order)
	var next int
	switch {
	case cur < 0 && forward:
		next = 0
	case cur < 0:
		next = n - 1
	case forward:
		next = (cur + 1) % n
	default:
		next = (cur - 1 + n) % n
	}
	if order[next] == u.focused {
		return false
	}
	u.focusLocked(order[next])
	return true
}

// HandleMouse notifies global pointer listeners, tracks hover, then routes
// the event: presses start a capture, wheel events bubble from the deepest
// widget under the pointer towards the root.
func (u *UIManager) HandleMouse(ev *tcell.EventMouse) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	x, y := ev.Position()
	buttons := ev.Buttons()
	moved := !u.havePointer || x != u.lastX || y != u.lastY
	wasDown := u.lastButtons&tcell.Button1 != 0
	u.lastX, u.lastY, u.lastButtons, u.havePointer = x, y, buttons, true

	pe := PointerEvent{X: x, Y: y, Buttons: buttons}
	if moved {
		u.moveListeners.fire(pe)
	}
	nowDown := buttons&tcell.Button1 != 0
	if wasDown && !nowDown {
		u.upListeners.fire(pe)
	}

	u.updateHoverLocked(u.topmostAtLocked(x, y))

	prevIsDown := u.capture != nil

	// Start capture on press over a widget
	if !prevIsDown && nowDown && !wasDown {
		path := u.pathAtLocked(x, y)
		if len(path) == 0 {
			return false
		}
		for i := len(path) - 1; i >= 0; i-- {
			if path[i].Focusable() {
				u.focusLocked(path[i])
				break
			}
		}
		u.capture = path[len(path)-1]
		for i := len(path) - 1; i >= 0; i-- {
			if mw, ok := path[i].(MouseAware); ok && mw.HandleMouse(ev) {
				u.capture = path[i]
				break
			}
		}
		u.dirtyMu.Lock()
		u.invalidateAllLocked()
		u.dirtyMu.Unlock()
		return true
	}

	// While captured, forward all mouse events
	if u.capture != nil {
		if mw, ok := u.capture.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		if !nowDown {
			u.capture = nil
		}
		u.dirtyMu.Lock()
		u.invalidateAllLocked()
		u.dirtyMu.Unlock()
		return true
	}

	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		path := u.pathAtLocked(x, y)
		for i := len(path) - 1; i >= 0; i-- {
			if mw, ok := path[i].(MouseAware); ok && mw.HandleMouse(ev) {
				u.dirtyMu.Lock()
				u.invalidateAllLocked()
				u.dirtyMu.Unlock()
				return true
			}
		}
		return false
	}

	// Plain moves go to the widget under the cursor
	if buttons == tcell.ButtonNone {
		if w := u.topmostAtLocked(x, y); w != nil {
			if mw, ok := w.(MouseAware); ok && mw.HandleMouse(ev) {
				u.dirtyMu.Lock()
				u.requestRefreshLocked()
				u.dirtyMu.Unlock()
				return true
			}
		}
	}
	return false
}

// Hovered returns the widget currently under the pointer.
func (u *UIManager) Hovered() Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hovered
}

func (u *UIManager) updateHoverLocked(w Widget) {
	if w == u.hovered {
		return
	}
	prev := u.hovered
	u.hovered = w
	if ha, ok := prev.(HoverAware); ok {
		ha.MouseLeave()
	}
	if ha, ok := w.(HoverAware); ok {
		ha.MouseEnter()
	}
}

func (u *UIManager) topmostAtLocked(x, y int) Widget {
	for i := len(u.widgets) - 1; i >= 0; i-- {
		if w := deepHit(u.widgets[i], x, y); w != nil {
			return w
		}
	}
	return nil
}

// pathAtLocked returns the chain from a root widget down to the deepest
// widget under (x, y).
func (u *UIManager) pathAtLocked(x, y int) []Widget {
	for i := len(u.widgets) - 1; i >= 0; i-- {
		root := u.widgets[i]
		if w := deepHit(root, x, y); w != nil {
			if p := pathTo(root, w); p != nil {
				return p
			}
			return []Widget{w}
		}
	}
	return nil
}

func pathTo(root, target Widget) []Widget {
	if root == target {
		return []Widget{root}
	}
	cc, ok := root.(ChildContainer)
	if !ok {
		return nil
	}
	var res []Widget
	cc.VisitChildren(func(child Widget) {
		if res != nil {
			return
		}
		if p := pathTo(child, target); p != nil {
			res = append([]Widget{root}, p...)
		}
	})
	return res
}

func deepHit(w Widget, x, y int) Widget {
	if ht, ok := w.(HitTester); ok {
		if dw := ht.WidgetAt(x, y); dw != nil {
			return dw
		}
	}
	if w.HitTest(x, y) {
		return w
	}
	if cc, ok := w.(ChildContainer); ok {
		var res Widget
		cc.VisitChildren(func(child Widget) {
			if res != nil {
				return
			}
			res = deepHit(child, x, y)
		})
		return res
	}
	return nil
}

// Invalidate marks a region for redraw. Thread-safe.
func (u *UIManager) Invalidate(r Rect) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	if r.W <= 0 || r.H <= 0 {
		return
	}
	u.dirty = append(u.dirty, r)
	u.requestRefreshLocked()
}

// InvalidateAll marks the whole surface for redraw.
func (u *UIManager) InvalidateAll() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.invalidateAllLocked()
}

// assumes dirtyMu is held
func (u *UIManager) invalidateAllLocked() {
	u.dirty = append(u.dirty, Rect{X: 0, Y: 0, W: u.W, H: u.H})
	u.requestRefreshLocked()
}

// assumes dirtyMu is held
func (u *UIManager) requestRefreshLocked() {
	if u.notifier == nil {
		return
	}
	select {
	case u.notifier <- true:
	default:
	}
}

func (u *UIManager) ensureBufferLocked() {
	h, w := u.H, u.W
	if u.buf != nil && len(u.buf) == h && (h == 0 || len(u.buf[0]) == w) {
		return
	}
	u.buf = make([][]texel.Cell, h)
	for y := 0; y < h; y++ {
		row := make([]texel.Cell, w)
		for x := range row {
			row[x] = texel.Cell{Ch: ' ', Style: u.bgStyle}
		}
		u.buf[y] = row
	}
}

// Render redraws dirty regions, returns the framebuffer and then delivers
// the Updated hook to every mounted widget.
func (u *UIManager) Render() [][]texel.Cell {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.ensureBufferLocked()

	u.dirtyMu.Lock()
	dirty := u.dirty
	u.dirty = nil
	u.dirtyMu.Unlock()

	full := Rect{X: 0, Y: 0, W: u.W, H: u.H}
	clips := mergeRects(dirty)
	if len(dirty) == 0 {
		clips = []Rect{full}
	}
	for _, clip := range clips {
		clip = clip.Intersect(full)
		if clip.Empty() {
			continue
		}
		p := NewPainter(u.buf, clip)
		p.Fill(clip, ' ', u.bgStyle)
		for _, w := range u.widgets {
			wx, wy := w.Position()
			ww, wh := w.Size()
			if rectsOverlap(Rect{X: wx, Y: wy, W: ww, H: wh}, clip) {
				w.Draw(p)
			}
		}
	}

	for _, w := range u.widgets {
		UpdateTree(w)
	}
	return u.buf
}
