// Package harness drives a tea.Model from tests without a terminal: sizes,
// keys, focus changes and the left-button mouse stream that pans the
// sidenav container.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sidenav/testing/snapshot"
)

// Harness feeds messages to a model and collects the commands it returns.
type Harness struct {
	model tea.Model
	size  Size
	cmds  []tea.Cmd
}

// New wraps model and sends it an initial window size.
func New(t testing.TB, model tea.Model, width, height int) *Harness {
	t.Helper()
	h := &Harness{model: model}
	h.Resize(width, height)
	return h
}

// SendMsg updates the model with msg and keeps any returned command for
// RunCmds.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey types runes.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a non-rune key such as tea.KeyTab.
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Blur reports that the terminal lost focus.
func (h *Harness) Blur() tea.Cmd {
	return h.SendMsg(tea.BlurMsg{})
}

// Resize sends a window size.
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.size = Size{Name: "current", Width: width, Height: height}
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// Size is the last size sent.
func (h *Harness) Size() Size {
	return h.size
}

// RunCmds runs every pending command and feeds the resulting messages back,
// including messages produced by those follow-ups. Batches are flattened;
// nil and tea.QuitMsg results are dropped.
func (h *Harness) RunCmds() {
	queue := h.cmds
	h.cmds = nil
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		switch msg := cmd().(type) {
		case nil, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			h.SendMsg(msg)
			queue = append(queue, h.cmds...)
			h.cmds = nil
		}
	}
}

// View renders the model.
func (h *Harness) View() string {
	return h.model.View()
}

// Frame renders the model and parses it into cells.
func (h *Harness) Frame() snapshot.Frame {
	return snapshot.Parse(h.model.View())
}
