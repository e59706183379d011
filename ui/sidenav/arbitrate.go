package sidenav

import (
	"github.com/google/uuid"

	"sidenav/log"
)

// PointerAction is the phase of a pointer event.
type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerMove
	PointerRelease
	PointerCancel
)

func (a PointerAction) String() string {
	switch a {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ends reports whether the action closes a session.
func (a PointerAction) ends() bool {
	return a == PointerRelease || a == PointerCancel
}

// PointerEvent is a single-pointer event in container coordinates.
type PointerEvent struct {
	Action PointerAction
	X, Y   int
}

// Dispatch says who received a pointer event.
type Dispatch int

const (
	// DispatchNone means nobody took the event.
	DispatchNone Dispatch = iota
	// DispatchEngine means a release or cancel went straight to the focused engine.
	DispatchEngine
	// DispatchIntercepted means the gesture detector or engine claimed the event.
	DispatchIntercepted
	// DispatchDescendant means the event went to a control inside a panel.
	DispatchDescendant
)

func (d Dispatch) String() string {
	switch d {
	case DispatchNone:
		return "none"
	case DispatchEngine:
		return "engine"
	case DispatchIntercepted:
		return "intercepted"
	case DispatchDescendant:
		return "descendant"
	default:
		return "unknown"
	}
}

// PointerSession tracks one press-to-release sequence.
type PointerSession struct {
	ID uuid.UUID
	// EngineFocused is set once the pan engine owns the session.
	EngineFocused bool
	// PressedAsserted is set once a control was drawn as pressed.
	PressedAsserted bool
	// Dragged is set once the pointer passed the drag threshold. A dragged
	// session never taps, even when no one claimed the drag.
	Dragged bool
	// Down is the press that opened the session.
	Down PointerEvent

	target      *Node
	targetPanel *Panel
}

// Target returns the control pressed in this session, or nil.
func (s *PointerSession) Target() *Node {
	return s.target
}

// DispatchPointer routes one pointer event. In priority order:
//
//  1. a release or cancel while the engine is focused goes to the engine's
//     OnUp and nowhere else, so drags always end cleanly;
//  2. otherwise the gesture detector sees the event, and if it or the engine
//     claims it, any pressed control is un-pressed and dispatch stops;
//  3. otherwise the controls under the pointer get normal press/tap handling.
func (c *Container) DispatchPointer(ev PointerEvent) Dispatch {
	if ev.Action == PointerPress {
		c.beginSession(ev)
	}

	if c.engine.Focused() && ev.Action.ends() {
		c.engine.OnUp(ev)
		c.detector.reset()
		c.endSession(ev, DispatchEngine)
		return DispatchEngine
	}

	if c.detector.OnPointerEvent(ev) || c.engine.Focused() {
		if c.session != nil {
			c.session.EngineFocused = c.engine.Focused()
		}
		if clearPressedState(c.roots()...) {
			log.InputTrace("pressed state cleared by %s at %d,%d", ev.Action, ev.X, ev.Y)
		}
		if ev.Action.ends() {
			c.endSession(ev, DispatchIntercepted)
		}
		return DispatchIntercepted
	}

	return c.dispatchToDescendants(ev)
}

func (c *Container) beginSession(ev PointerEvent) {
	if c.session != nil {
		// The previous session never saw its release.
		c.abandonTarget()
		log.InputTrace("session %s abandoned", c.session.ID)
	}
	c.session = &PointerSession{ID: uuid.New(), Down: ev}
	log.InputTrace("session %s begins at %d,%d", c.session.ID, ev.X, ev.Y)
}

func (c *Container) endSession(ev PointerEvent, d Dispatch) {
	if c.session == nil {
		return
	}
	log.InputTrace("session %s ends with %s at %d,%d (%s)", c.session.ID, ev.Action, ev.X, ev.Y, d)
	c.session = nil
}

func (c *Container) abandonTarget() {
	if c.session != nil && c.session.target != nil {
		c.session.target.SetPressed(false)
		c.session.target = nil
		c.session.targetPanel = nil
	}
}

func (c *Container) dispatchToDescendants(ev PointerEvent) Dispatch {
	s := c.session
	if s == nil {
		return DispatchNone
	}

	switch ev.Action {
	case PointerPress:
		panel, target := c.hitTest(ev.X, ev.Y)
		if target == nil {
			return DispatchNone
		}
		target.SetPressed(true)
		s.target = target
		s.targetPanel = panel
		s.PressedAsserted = true
		return DispatchDescendant

	case PointerMove:
		if s.target == nil {
			return DispatchNone
		}
		if c.detector.Dragging() {
			s.Dragged = true
		}
		if s.target.Pressed() && (s.Dragged || !c.targetContains(s, ev.X, ev.Y)) {
			s.target.SetPressed(false)
		}
		return DispatchDescendant

	case PointerRelease:
		defer c.endSession(ev, DispatchDescendant)
		target := s.target
		if target == nil {
			return DispatchNone
		}
		fire := !s.Dragged && target.Pressed() && c.targetContains(s, ev.X, ev.Y)
		target.SetPressed(false)
		if fire {
			log.InputTrace("tap %q", target.ID)
			target.tap()
		}
		return DispatchDescendant

	case PointerCancel:
		c.abandonTarget()
		c.endSession(ev, DispatchNone)
	}
	return DispatchNone
}

// hitTest finds the tappable node under a container point. Other panels are
// checked last-added first, then main at its visual position, then
// navigation. A point inside the main panel that hits no control is absorbed
// by it and never reaches the navigation panel.
func (c *Container) hitTest(x, y int) (*Panel, *Node) {
	for i := len(c.slots) - 1; i >= 0; i-- {
		p := c.slots[i].panel
		frame := c.VisualFrame(p)
		if !frame.Contains(x, y) {
			continue
		}
		if p.content != nil {
			if hit := p.content.hitTest(x-frame.X, y-frame.Y); hit != nil {
				return p, hit
			}
		}
		if p.role == RoleMain {
			return p, nil
		}
	}
	return nil, nil
}

func (c *Container) targetContains(s *PointerSession, x, y int) bool {
	frame := c.VisualFrame(s.targetPanel)
	return s.target.rect.Offset(frame.X, frame.Y).Contains(x, y)
}
