package sidenav

import "sidenav/log"

// Measure sizes every panel for a container of the given size. The
// navigation panel is as wide as the container minus the right bound, the
// main panel as wide as the container minus the left bound, and any other
// panel gets the whole box. Nothing is cached between passes.
func (c *Container) Measure(width, height int) {
	c.width = width
	c.height = height

	for _, s := range c.slots {
		switch s.role {
		case RoleNavigation:
			s.panel.measure(width-c.bounds.Right(), height)
		case RoleMain:
			s.panel.measure(width-c.bounds.Left(), height)
		default:
			s.panel.measure(width, height)
		}
	}

	log.LayoutTrace("measure %dx%d left=%d right=%d nav=%d main=%d",
		width, height, c.bounds.Left(), c.bounds.Right(),
		c.navigation.measuredWidth, c.main.measuredWidth)
}

// Layout positions the measured panels. The main panel rests at the left
// bound; everything else sits at the origin. Drag translation is applied by
// the pan engine on top of this and never seen here.
func (c *Container) Layout() {
	for _, s := range c.slots {
		if s.role == RoleMain {
			s.panel.layout(c.bounds.Left(), 0)
			continue
		}
		s.panel.layout(0, 0)
	}

	log.LayoutTrace("layout main@%d", c.main.frame.X)
}

// Resize runs a measure and a layout pass.
func (c *Container) Resize(width, height int) {
	c.Measure(width, height)
	c.Layout()
}

// VisualFrame returns where p is currently drawn, including the pan
// engine's live translation for the main panel.
func (c *Container) VisualFrame(p *Panel) Rect {
	if p.role == RoleMain {
		return p.frame.Offset(c.engine.Translation(), 0)
	}
	return p.frame
}
