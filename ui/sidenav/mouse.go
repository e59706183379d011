package sidenav

import (
	tea "github.com/charmbracelet/bubbletea"
)

// PointerEventFromMouse converts a bubbletea mouse message into a pointer
// event. Only the left button drives the pointer; wheel, other buttons and
// button-less motion are reported as not convertible.
func PointerEventFromMouse(msg tea.MouseMsg) (PointerEvent, bool) {
	ev := PointerEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Action = PointerPress
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Action = PointerMove
	case tea.MouseActionRelease:
		// Terminals usually report which button was released as "none".
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return ev, false
		}
		ev.Action = PointerRelease
	default:
		return ev, false
	}
	return ev, true
}

// HandleMouse dispatches a mouse message. The container treats every mouse
// message as its own: hosts should not route it anywhere else, whatever the
// returned Dispatch says.
func (c *Container) HandleMouse(msg tea.MouseMsg) Dispatch {
	ev, ok := PointerEventFromMouse(msg)
	if !ok {
		return DispatchNone
	}
	return c.DispatchPointer(ev)
}

// CancelPointer cancels the active session, if any, at its press position.
// Hosts call it when the terminal loses focus mid-gesture.
func (c *Container) CancelPointer() Dispatch {
	if c.session == nil && !c.engine.Focused() {
		return DispatchNone
	}
	ev := PointerEvent{Action: PointerCancel}
	if c.session != nil {
		ev.X, ev.Y = c.session.Down.X, c.session.Down.Y
	}
	return c.DispatchPointer(ev)
}

// Update handles the bubbletea messages the container cares about: mouse
// input and focus loss. It reports whether msg was one of them.
func (c *Container) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		c.HandleMouse(msg)
		return true
	case tea.BlurMsg:
		c.CancelPointer()
		return true
	}
	return false
}
