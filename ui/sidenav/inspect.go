package sidenav

import "sidenav/inspect"

var _ inspect.Introspectable = (*Container)(nil)

// InspectNode reports the container's panels and their content.
func (c *Container) InspectNode() *inspect.Node {
	root := inspect.NewNode("Container").
		At(0, 0, c.width, c.height).
		Set("open", c.engine.IsOpen()).
		Set("translation", c.engine.Translation())

	for _, s := range c.slots {
		p := s.panel
		visual := c.VisualFrame(p)
		pn := inspect.NewNode("Panel").
			Named(s.role.String()).
			At(p.frame.X, p.frame.Y, p.frame.Width, p.frame.Height).
			DrawnAt(visual.X, visual.Y, visual.Width, visual.Height)
		if p.content != nil {
			pn.Add(inspectContent(p.content))
		}
		root.Add(pn)
	}
	return root
}

// PanInfo reports bounds and pan engine state.
func (c *Container) PanInfo() inspect.PanInfo {
	return inspect.PanInfo{
		LeftPanBound:  c.bounds.Left(),
		RightPanBound: c.bounds.Right(),
		MaxLeftPan:    c.MaxLeftPan(),
		MaxRightPan:   c.MaxRightPan(),
		Translation:   c.engine.Translation(),
		Open:          c.engine.IsOpen(),
		Focused:       c.engine.Focused(),
		SessionActive: c.session != nil,
	}
}

func inspectContent(n *Node) *inspect.Node {
	in := inspect.NewNode(n.Kind.String()).
		Named(n.ID).
		Labelled(n.Text).
		At(n.rect.X, n.rect.Y, n.rect.Width, n.rect.Height)
	if n.Tappable() {
		in.Set("tappable", true).Set("pressed", n.pressed)
	}
	if n.Value != "" {
		in.Set("value", n.Value)
	}
	for _, child := range n.Children {
		in.Add(inspectContent(child))
	}
	return in
}
