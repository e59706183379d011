// Package pan implements the pan engine that drives a sidenav.Container's
// main panel: it claims horizontal drags, tracks the panel's translation and
// snaps it open or closed when the drag ends.
package pan

import (
	"sidenav/log"
	"sidenav/ui/sidenav"
)

var _ sidenav.PanEngine = (*Engine)(nil)

// Engine is a pan engine with immediate snapping. It has no animation: a
// release or an Open/Close call moves the panel straight to its rest state.
type Engine struct {
	measurer sidenav.Measurer
	listener sidenav.PanListener

	open    bool
	focused bool

	// dragging state
	startTranslation int
	translation      int
}

// NewEngine creates a closed engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Attach stores the bound queries.
func (e *Engine) Attach(m sidenav.Measurer) {
	e.measurer = m
	log.LayoutTrace("pan engine attached: left=%d right=%d", m.MaxLeftPan(), m.MaxRightPan())
}

// SetPanListener registers the start/end notifications.
func (e *Engine) SetPanListener(l sidenav.PanListener) {
	e.listener = l
}

// travel is the distance between the closed and open positions, read from
// the live bounds.
func (e *Engine) travel() int {
	if e.measurer == nil {
		return 0
	}
	t := e.measurer.MaxRightPan() - e.measurer.MaxLeftPan()
	if t < 0 {
		return 0
	}
	return t
}

// OnDown remembers where a possible drag starts. Presses are never claimed.
func (e *Engine) OnDown(ev sidenav.PointerEvent) bool {
	e.startTranslation = e.Translation()
	return false
}

// OnScroll claims mostly-horizontal drags and follows the pointer.
func (e *Engine) OnScroll(down, ev sidenav.PointerEvent, dx, dy int) bool {
	if !e.focused {
		if abs(ev.X-down.X) < abs(ev.Y-down.Y) {
			return false
		}
		e.focused = true
		e.translation = e.startTranslation
		log.InputTrace("pan start at translation %d", e.translation)
		log.Profiler().PanStarted()
		e.started()
	}
	e.translation = clamp(e.startTranslation+ev.X-down.X, 0, e.travel())
	return true
}

// OnSingleTapUp never claims taps.
func (e *Engine) OnSingleTapUp(ev sidenav.PointerEvent) bool {
	return false
}

// Focused reports whether a drag is in progress.
func (e *Engine) Focused() bool {
	return e.focused
}

// OnUp ends the drag, snapping to whichever rest state is nearer.
func (e *Engine) OnUp(ev sidenav.PointerEvent) {
	if !e.focused {
		return
	}
	e.focused = false

	travel := e.travel()
	t := clamp(e.translation, 0, travel)
	e.open = travel > 0 && t*2 >= travel
	log.InputTrace("pan end on %s at translation %d/%d: open=%v", ev.Action, t, travel, e.open)
	log.Profiler().PanEnded(e.open)
	e.ended()
}

// IsOpen reports whether the navigation panel is revealed.
func (e *Engine) IsOpen() bool {
	return e.open
}

// Translation returns how far right of rest the main panel is drawn. At rest
// it follows the live bounds, so a resize keeps an open panel fully open.
func (e *Engine) Translation() int {
	if e.focused {
		return clamp(e.translation, 0, e.travel())
	}
	if e.open {
		return e.travel()
	}
	return 0
}

// Open snaps the panel open. It is a no-op when already open.
func (e *Engine) Open() {
	e.snap(true)
}

// Close snaps the panel closed. It is a no-op when already closed.
func (e *Engine) Close() {
	e.snap(false)
}

func (e *Engine) snap(open bool) {
	if e.open == open && !e.focused {
		return
	}
	wasFocused := e.focused
	e.focused = false
	if !wasFocused {
		e.started()
	}
	e.open = open
	if wasFocused {
		log.Profiler().PanEnded(open)
	}
	e.ended()
}

func (e *Engine) started() {
	if e.listener.OnPanStart != nil {
		e.listener.OnPanStart()
	}
}

func (e *Engine) ended() {
	if e.listener.OnPanEnd != nil {
		e.listener.OnPanEnd()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
