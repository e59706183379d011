package ui

import "github.com/charmbracelet/lipgloss"

// Panel colors
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// NavigationBackground sits under the main panel and is revealed by panning.
	NavigationBackground = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#22222A"}

	// MainBackground is the main panel color.
	MainBackground = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1a1a1a"}

	// Pressed highlights a control while the pointer is held on it.
	Pressed = lipgloss.AdaptiveColor{Light: "#dde4f0", Dark: "#3C3C4C"}
)

// NodeStyles contains pre-built styles for content nodes.
var NodeStyles = struct {
	Text    lipgloss.Style
	Title   lipgloss.Style
	Button  lipgloss.Style
	Item    lipgloss.Style
	Pressed lipgloss.Style
}{
	Text:   lipgloss.NewStyle().Foreground(TextPrimary),
	Title:  lipgloss.NewStyle().Foreground(Primary).Bold(true),
	Button: lipgloss.NewStyle().Foreground(Primary).Bold(true),
	Item:   lipgloss.NewStyle().Foreground(TextSecondary),
	Pressed: lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Pressed),
}

// PanelStyles contains the backgrounds of the two panels.
var PanelStyles = struct {
	Navigation lipgloss.Style
	Main       lipgloss.Style
}{
	Navigation: lipgloss.NewStyle().Background(NavigationBackground),
	Main:       lipgloss.NewStyle().Background(MainBackground),
}

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(Border)

var stateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

var warningStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}).
	Bold(true)
