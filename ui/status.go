package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sidenav/keys"
)

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

// StatusState is which panel the status bar describes.
type StatusState int

const (
	StatusMain StatusState = iota
	StatusNavigation
	StatusPanning
)

func (s StatusState) String() string {
	switch s {
	case StatusMain:
		return "main"
	case StatusNavigation:
		return "sites"
	case StatusPanning:
		return "panning"
	default:
		return "unknown"
	}
}

var mainStatusOptions = []keys.KeyName{keys.KeyToggle, keys.KeyOpen, keys.KeyCopy, keys.KeyReload, keys.KeyQuit}
var navigationStatusOptions = []keys.KeyName{keys.KeyToggle, keys.KeyClose, keys.KeyReload, keys.KeyQuit}

// actionCount is how many leading options form the highlighted pan group.
const actionCount = 2

// StatusBar is the one-line key hint bar under the container.
type StatusBar struct {
	options []keys.KeyName
	width   int
	state   StatusState
	site    string
	warning string

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

func NewStatusBar() *StatusBar {
	return &StatusBar{
		options: mainStatusOptions,
		state:   StatusMain,
		keyDown: -1,
	}
}

func (s *StatusBar) Keydown(name keys.KeyName) {
	s.keyDown = name
}

func (s *StatusBar) ClearKeydown() {
	s.keyDown = -1
}

// SetState updates the state and the options shown for it.
func (s *StatusBar) SetState(state StatusState) {
	s.state = state
	if state == StatusNavigation {
		s.options = navigationStatusOptions
	} else {
		s.options = mainStatusOptions
	}
}

func (s *StatusBar) State() StatusState {
	return s.state
}

// SetSite sets the URL shown on the right of the bar.
func (s *StatusBar) SetSite(site string) {
	s.site = site
}

// SetWarning replaces the key hints with a warning. Empty clears it.
func (s *StatusBar) SetWarning(warning string) {
	s.warning = warning
}

func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) String() string {
	if s.warning != "" {
		return lipgloss.PlaceHorizontal(s.width, lipgloss.Left, warningStyle.Render(s.warning))
	}

	var b strings.Builder
	b.WriteString(stateStyle.Render(s.state.String()))
	b.WriteString(sepStyle.Render(verticalSeparator))

	for i, k := range s.options {
		binding := keys.GlobalkeyBindings[k]

		var (
			localKeyStyle  = keyStyle
			localDescStyle = descStyle
		)
		if i < actionCount {
			localKeyStyle = actionGroupStyle
			localDescStyle = actionGroupStyle
		}
		if s.keyDown == k {
			localKeyStyle = localKeyStyle.Underline(true)
			localDescStyle = localDescStyle.Underline(true)
		}

		b.WriteString(localKeyStyle.Render(binding.Help().Key))
		b.WriteString(" ")
		b.WriteString(localDescStyle.Render(binding.Help().Desc))

		if i == len(s.options)-1 {
			continue
		}
		if i == actionCount-1 {
			b.WriteString(sepStyle.Render(verticalSeparator))
		} else {
			b.WriteString(sepStyle.Render(separator))
		}
	}

	hints := b.String()
	if s.site == "" {
		return lipgloss.PlaceHorizontal(s.width, lipgloss.Left, hints)
	}

	site := descStyle.Render(s.site)
	gap := s.width - lipgloss.Width(hints) - lipgloss.Width(site)
	if gap < 1 {
		return lipgloss.PlaceHorizontal(s.width, lipgloss.Left, hints)
	}
	return hints + strings.Repeat(" ", gap) + site
}
