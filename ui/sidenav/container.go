// Package sidenav provides a two-panel container for terminal UIs: a
// navigation panel underneath and a main panel that the user drags
// horizontally with the mouse to reveal or hide it.
//
// The Container measures and lays out both panels, arbitrates the pointer
// stream between the pan engine and the controls inside the panels, and
// renders the result. The drag state machine itself lives behind PanEngine.
package sidenav

import "fmt"

// ResourceNone is the layout identifier that leaves a panel empty.
const ResourceNone = ""

// Inflater builds panel content from a layout identifier. Inflating
// ResourceNone returns a nil node and no error.
type Inflater interface {
	Inflate(id string) (*Node, error)
}

// Options configure a Container.
type Options struct {
	// LeftPanBound is the navigation strip visible while the main panel rests.
	// Negative bounds are replaced with DefaultPanBound.
	LeftPanBound int
	// RightPanBound is the main strip visible while the navigation panel is open.
	RightPanBound int
	// NavigationLayout and MainLayout are inflated into the two panels.
	NavigationLayout string
	MainLayout       string
	// Inflater is required when either layout is not ResourceNone.
	Inflater Inflater
	// DragThreshold is the slop, in cells, before a press becomes a drag.
	DragThreshold int
}

// DefaultOptions returns options with default bounds and empty panels.
func DefaultOptions() Options {
	return Options{
		LeftPanBound:     DefaultPanBound,
		RightPanBound:    DefaultPanBound,
		NavigationLayout: ResourceNone,
		MainLayout:       ResourceNone,
		DragThreshold:    DefaultDragThreshold,
	}
}

type slot struct {
	role  Role
	panel *Panel
}

// Container is the two-panel sliding layout. It is not safe for concurrent
// use; drive it from a single event loop.
type Container struct {
	bounds *Bounds
	slots  []slot

	navigation *Panel
	main       *Panel

	engine   PanEngine
	detector *GestureDetector
	listener PanListener
	session  *PointerSession

	width  int
	height int
}

// New creates a container driven by engine, inflating the configured layouts
// into the navigation and main panels.
func New(engine PanEngine, opts Options) (*Container, error) {
	navContent, err := inflate(opts.Inflater, opts.NavigationLayout)
	if err != nil {
		return nil, fmt.Errorf("failed to inflate navigation layout: %w", err)
	}
	mainContent, err := inflate(opts.Inflater, opts.MainLayout)
	if err != nil {
		return nil, fmt.Errorf("failed to inflate main layout: %w", err)
	}

	c := &Container{
		bounds:     NewBounds(boundOrDefault(opts.LeftPanBound), boundOrDefault(opts.RightPanBound)),
		navigation: newPanel(RoleNavigation, navContent),
		main:       newPanel(RoleMain, mainContent),
		engine:     engine,
	}
	// Main is added last so it draws over and is hit-tested before navigation.
	c.slots = []slot{
		{role: RoleNavigation, panel: c.navigation},
		{role: RoleMain, panel: c.main},
	}
	c.detector = NewGestureDetector(engine, opts.DragThreshold)

	engine.SetPanListener(PanListener{
		OnPanStart: c.panStarted,
		OnPanEnd:   c.panEnded,
	})
	engine.Attach(c)

	return c, nil
}

// boundOrDefault treats a negative option as unset.
func boundOrDefault(bound int) int {
	if bound < 0 {
		return DefaultPanBound
	}
	return bound
}

func inflate(inflater Inflater, id string) (*Node, error) {
	if id == ResourceNone {
		return nil, nil
	}
	if inflater == nil {
		return nil, fmt.Errorf("no inflater for layout %q", id)
	}
	return inflater.Inflate(id)
}

// NavigationContainer returns the navigation panel.
func (c *Container) NavigationContainer() *Panel {
	return c.navigation
}

// MainContainer returns the main panel.
func (c *Container) MainContainer() *Panel {
	return c.main
}

// AddPanel adds a panel that covers the whole container, drawn and
// hit-tested above the two built-in panels.
func (c *Container) AddPanel(content *Node) *Panel {
	p := newPanel(RoleOther, content)
	c.slots = append(c.slots, slot{role: RoleOther, panel: p})
	if c.width > 0 || c.height > 0 {
		p.measure(c.width, c.height)
		p.layout(0, 0)
	}
	return p
}

// SetRightPanBound sets the right pan bound. Layout picks it up on the next
// pass; MaxRightPan picks it up immediately.
func (c *Container) SetRightPanBound(bound int) {
	c.bounds.SetRight(bound)
}

// SetLeftPanBound sets the left pan bound.
func (c *Container) SetLeftPanBound(bound int) {
	c.bounds.SetLeft(bound)
}

// Bounds returns the container's pan bounds.
func (c *Container) Bounds() *Bounds {
	return c.bounds
}

// Width returns the width from the last measure pass.
func (c *Container) Width() int {
	return c.width
}

// Height returns the height from the last measure pass.
func (c *Container) Height() int {
	return c.height
}

// Engine returns the pan engine driving the container.
func (c *Container) Engine() PanEngine {
	return c.engine
}

// Session returns the active pointer session, or nil.
func (c *Container) Session() *PointerSession {
	return c.session
}

func (c *Container) roots() []*Node {
	roots := make([]*Node, 0, len(c.slots))
	for _, s := range c.slots {
		roots = append(roots, s.panel.content)
	}
	return roots
}
