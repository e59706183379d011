package harness

import tea "github.com/charmbracelet/bubbletea"

// Press sends a left button press at (x, y).
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.SendMsg(mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
}

// Move sends left button motion to (x, y).
func (h *Harness) Move(x, y int) tea.Cmd {
	return h.SendMsg(mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft))
}

// Release sends a release at (x, y). Terminals report no button on release.
func (h *Harness) Release(x, y int) tea.Cmd {
	return h.SendMsg(mouse(x, y, tea.MouseActionRelease, tea.MouseButtonNone))
}

// Click presses and releases in place.
func (h *Harness) Click(x, y int) {
	h.Press(x, y)
	h.Release(x, y)
}

// Hold presses at (fromX, y) and moves one cell at a time to toX, leaving
// the button down.
func (h *Harness) Hold(fromX, toX, y int) {
	h.Press(fromX, y)
	step := 1
	if toX < fromX {
		step = -1
	}
	for x := fromX; x != toX; {
		x += step
		h.Move(x, y)
	}
}

// Drag is Hold followed by a release at (toX, y).
func (h *Harness) Drag(fromX, toX, y int) {
	h.Hold(fromX, toX, y)
	h.Release(toX, y)
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}
