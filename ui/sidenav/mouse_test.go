package sidenav

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestPointerEventFromMouse(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   PointerAction
		wantOK bool
	}{
		{
			name:   "left press",
			msg:    tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want:   PointerPress,
			wantOK: true,
		},
		{
			name:   "left drag",
			msg:    tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			want:   PointerMove,
			wantOK: true,
		},
		{
			name:   "release without button",
			msg:    tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			want:   PointerRelease,
			wantOK: true,
		},
		{
			name:   "left release",
			msg:    tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
			want:   PointerRelease,
			wantOK: true,
		},
		{
			name: "right press",
			msg:  tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		},
		{
			name: "wheel",
			msg:  tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
		},
		{
			name: "hover",
			msg:  tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
		},
		{
			name: "right release",
			msg:  tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonRight},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := PointerEventFromMouse(tt.msg)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, PointerEvent{Action: tt.want, X: 3, Y: 4}, ev)
			}
		})
	}
}

func TestHandleMouseTap(t *testing.T) {
	f := newArbitrationFixture(t)

	d := f.c.HandleMouse(tea.MouseMsg{X: 10, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, DispatchDescendant, d)
	f.c.HandleMouse(tea.MouseMsg{X: 10, Y: 1, Action: tea.MouseActionRelease})
	assert.Equal(t, 1, *f.buttonTaps)

	d = f.c.HandleMouse(tea.MouseMsg{X: 10, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, DispatchNone, d)
	assert.Nil(t, f.c.Session())
}

func TestUpdate(t *testing.T) {
	f := newArbitrationFixture(t)

	assert.True(t, f.c.Update(tea.MouseMsg{X: 10, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	assert.True(t, f.button.Pressed())

	assert.True(t, f.c.Update(tea.BlurMsg{}))
	assert.False(t, f.button.Pressed())
	assert.Nil(t, f.c.Session())
	assert.Equal(t, 0, *f.buttonTaps)

	assert.False(t, f.c.Update(tea.KeyMsg{Type: tea.KeyTab}))
	assert.False(t, f.c.Update(tea.FocusMsg{}))
}
