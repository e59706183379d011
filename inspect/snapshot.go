package inspect

import (
	"fmt"
	"strings"
	"time"

	"sidenav/ui/layout"
)

// FormatVersion is bumped when the JSON shape changes.
const FormatVersion = "2"

// Snapshot is the state of one rendered frame.
type Snapshot struct {
	Taken   time.Time `json:"taken"`
	Version string    `json:"version"`

	Terminal Size       `json:"terminal"`
	Layout   LayoutInfo `json:"layout"`
	Pan      PanInfo    `json:"pan"`
	Tree     *Node      `json:"tree,omitempty"`
}

// Size is a width and height in cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LayoutInfo is what the terminal size resolved to.
type LayoutInfo struct {
	Mode            string `json:"mode"`
	Container       Size   `json:"container"`
	NavigationWidth int    `json:"navigation_width"`
	TooSmall        bool   `json:"too_small"`
	// Fits lists, per mode, whether the terminal meets its minimum size.
	Fits map[string]bool `json:"fits"`
}

// PanInfo is the bound policy and pan engine state.
type PanInfo struct {
	LeftPanBound  int  `json:"left_pan_bound"`
	RightPanBound int  `json:"right_pan_bound"`
	MaxLeftPan    int  `json:"max_left_pan"`
	MaxRightPan   int  `json:"max_right_pan"`
	Translation   int  `json:"translation"`
	Open          bool `json:"open"`
	Focused       bool `json:"focused"`
	SessionActive bool `json:"session_active"`
}

// NewSnapshot starts a snapshot stamped now.
func NewSnapshot() *Snapshot {
	return &Snapshot{Taken: time.Now(), Version: FormatVersion}
}

// WithLayout records the terminal size and its resolved constraints.
func (s *Snapshot) WithLayout(c layout.Constraints) *Snapshot {
	s.Terminal = Size{Width: c.TerminalWidth, Height: c.TerminalHeight}
	s.Layout = LayoutInfo{
		Mode:            c.Mode.String(),
		Container:       Size{Width: c.ContainerWidth, Height: c.ContainerHeight},
		NavigationWidth: c.NavigationWidth,
		TooSmall:        c.ShowMinWarning,
		Fits:            make(map[string]bool),
	}
	for _, mode := range []layout.LayoutMode{layout.LayoutFull, layout.LayoutStandard, layout.LayoutCompact} {
		s.Layout.Fits[mode.String()] = layout.DetermineMode(c.TerminalWidth, c.TerminalHeight) <= mode
	}
	return s
}

// WithPan records pan state.
func (s *Snapshot) WithPan(p PanInfo) *Snapshot {
	s.Pan = p
	return s
}

// WithTree records the component tree.
func (s *Snapshot) WithTree(root *Node) *Snapshot {
	s.Tree = root
	return s
}

func (s *Snapshot) withoutTimestamp() Snapshot {
	c := *s
	c.Taken = time.Time{}
	return c
}

// ToText renders the snapshot for humans.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "snapshot %s at %s\n", s.Version, s.Taken.Format(time.RFC3339))
	fmt.Fprintf(&b, "terminal %dx%d, mode %s", s.Terminal.Width, s.Terminal.Height, s.Layout.Mode)
	if s.Layout.TooSmall {
		b.WriteString(" (too small)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "container %dx%d, navigation %d\n",
		s.Layout.Container.Width, s.Layout.Container.Height, s.Layout.NavigationWidth)

	p := s.Pan
	fmt.Fprintf(&b, "bounds left=%d right=%d, pan %d..%d, translation %d\n",
		p.LeftPanBound, p.RightPanBound, p.MaxLeftPan, p.MaxRightPan, p.Translation)
	fmt.Fprintf(&b, "open=%v focused=%v session=%v\n", p.Open, p.Focused, p.SessionActive)

	if s.Tree != nil {
		b.WriteString("\n")
		writeTree(&b, s.Tree, 0)
	}
	return b.String()
}

func writeTree(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Kind)
	if n.ID != "" {
		fmt.Fprintf(b, " %q", n.ID)
	}
	r := n.Rest
	fmt.Fprintf(b, " %d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
	if n.Drawn != nil {
		fmt.Fprintf(b, " -> %d,%d", n.Drawn.X, n.Drawn.Y)
	}
	if pressed, _ := n.State["pressed"].(bool); pressed {
		b.WriteString(" *pressed*")
	}
	b.WriteString("\n")

	for _, c := range n.Children {
		writeTree(b, c, depth+1)
	}
}
