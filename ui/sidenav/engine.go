package sidenav

// Measurer answers the pan engine's bound queries. Answers are computed from
// live container state on every call.
type Measurer interface {
	// MaxRightPan is the furthest x the main panel may reach.
	MaxRightPan() int
	// MaxLeftPan is the resting x of the main panel.
	MaxLeftPan() int
}

// PanListener is notified at pan gesture and snap boundaries. Either func may
// be nil.
type PanListener struct {
	OnPanStart func()
	OnPanEnd   func()
}

// PanEngine owns the drag state machine of the main panel. The Container
// feeds it gestures and raw releases and reads its state; it never changes
// the pan state itself.
//
// Focus contract: the engine is Focused from the moment it claims a drag
// until it handles the release in OnUp. While focused, every release or
// cancel goes straight to OnUp, bypassing gesture detection.
type PanEngine interface {
	GestureListener

	// Focused reports whether the engine owns the current pointer session.
	Focused() bool
	// OnUp ends a focused drag. It receives both releases and cancels.
	OnUp(ev PointerEvent)

	// IsOpen reports whether the navigation panel is revealed.
	IsOpen() bool
	// Translation is the main panel's current shift right of its resting
	// position, in [0, MaxRightPan()-MaxLeftPan()].
	Translation() int
	// Open moves the main panel to reveal the navigation panel fully.
	Open()
	// Close moves the main panel back to rest.
	Close()

	// SetPanListener registers the start/end notifications.
	SetPanListener(l PanListener)
	// Attach gives the engine its bound queries. It is called once when the
	// engine is handed to a Container.
	Attach(m Measurer)
}

// MaxRightPan returns the container's measured width minus the right bound.
func (c *Container) MaxRightPan() int {
	return c.bounds.MaxRightPan(c.width)
}

// MaxLeftPan returns the left bound.
func (c *Container) MaxLeftPan() int {
	return c.bounds.MaxLeftPan()
}

// SetOnPanListener registers the host's pan notifications. Engine
// notifications are forwarded unchanged.
func (c *Container) SetOnPanListener(l PanListener) {
	c.listener = l
}

func (c *Container) panStarted() {
	if c.listener.OnPanStart != nil {
		c.listener.OnPanStart()
	}
}

func (c *Container) panEnded() {
	if c.listener.OnPanEnd != nil {
		c.listener.OnPanEnd()
	}
}

// IsNavigationViewVisible reports whether the navigation panel is revealed.
func (c *Container) IsNavigationViewVisible() bool {
	return c.engine.IsOpen()
}

// IsMainViewVisible reports whether the main panel covers the navigation panel.
func (c *Container) IsMainViewVisible() bool {
	return !c.engine.IsOpen()
}

// ShowNavigationView pans the main panel fully to its right bound.
func (c *Container) ShowNavigationView() {
	c.engine.Open()
}

// ShowMainView pans the main panel back to rest.
func (c *Container) ShowMainView() {
	c.engine.Close()
}
