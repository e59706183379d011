package layout

// Constraints is the resolved geometry for one terminal size.
type Constraints struct {
	TerminalWidth  int
	TerminalHeight int

	Mode LayoutMode

	// ContainerWidth and ContainerHeight are the sliding area above the
	// status bar.
	ContainerWidth  int
	ContainerHeight int

	StatusWidth  int
	StatusHeight int

	// NavigationWidth is how much of the navigation panel shows when open.
	NavigationWidth int

	// LeftPanBound and RightPanBound reproduce the mode's strip and
	// NavigationWidth when handed to a sidenav.Container.
	LeftPanBound  int
	RightPanBound int

	ShowMinWarning bool
}

// ComputeConstraints resolves the geometry for a terminal size.
func ComputeConstraints(width, height int) Constraints {
	p := ProfileFor(width, height)

	statusHeight := min(StatusBarHeight, max(height, 0))
	nav := p.navigationWidth(width)

	return Constraints{
		TerminalWidth:   width,
		TerminalHeight:  height,
		Mode:            p.Mode,
		ContainerWidth:  width,
		ContainerHeight: height - statusHeight,
		StatusWidth:     width,
		StatusHeight:    statusHeight,
		NavigationWidth: nav,
		LeftPanBound:    p.Strip,
		RightPanBound:   width - nav,
		ShowMinWarning:  width < MinWidth || height < MinHeight,
	}
}

// navigationWidth never covers the main strip of a terminal width wide.
func (p Profile) navigationWidth(width int) int {
	room := clamp(width-p.Strip, 0, width)
	if p.NavigationShare == 0 {
		return room
	}
	want := clamp(int(float32(width)*p.NavigationShare), NavigationMinWidth, p.NavigationCap)
	return min(want, room)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
