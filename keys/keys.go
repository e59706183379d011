package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyToggle KeyName = iota
	KeyOpen
	KeyClose
	KeyCopy
	KeyReload
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"tab":    KeyToggle,
	"right":  KeyOpen,
	"l":      KeyOpen,
	"left":   KeyClose,
	"h":      KeyClose,
	"esc":    KeyClose,
	"y":      KeyCopy,
	"r":      KeyReload,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "pan"),
	),
	KeyOpen: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "sites"),
	),
	KeyClose: key.NewBinding(
		key.WithKeys("left", "h", "esc"),
		key.WithHelp("←/h", "back"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	KeyReload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
