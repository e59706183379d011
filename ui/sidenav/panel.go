package sidenav

// Role tags each panel slot of a Container.
type Role int

const (
	// RoleNavigation is the panel revealed by panning.
	RoleNavigation Role = iota
	// RoleMain is the panel that pans.
	RoleMain
	// RoleOther is any further panel; it gets the full container box.
	RoleOther
)

func (r Role) String() string {
	switch r {
	case RoleNavigation:
		return "navigation"
	case RoleMain:
		return "main"
	case RoleOther:
		return "other"
	default:
		return "unknown"
	}
}

// Panel is a content slot. It owns its content tree; its position is decided
// by the Container.
type Panel struct {
	role    Role
	content *Node

	measuredWidth  int
	measuredHeight int
	frame          Rect
}

func newPanel(role Role, content *Node) *Panel {
	return &Panel{role: role, content: content}
}

// Role returns the panel's role. It never changes.
func (p *Panel) Role() Role {
	return p.role
}

// Content returns the content root, or nil for an empty slot.
func (p *Panel) Content() *Node {
	return p.content
}

// SetContent replaces the content tree and lays it out in the current frame.
func (p *Panel) SetContent(content *Node) {
	p.content = content
	p.layoutContent()
}

// MeasuredWidth returns the width from the last measure pass.
func (p *Panel) MeasuredWidth() int {
	return p.measuredWidth
}

// MeasuredHeight returns the height from the last measure pass.
func (p *Panel) MeasuredHeight() int {
	return p.measuredHeight
}

// Frame returns the resting rectangle from the last layout pass.
func (p *Panel) Frame() Rect {
	return p.frame
}

func (p *Panel) measure(width, height int) {
	p.measuredWidth = width
	p.measuredHeight = height
}

func (p *Panel) layout(x, y int) {
	p.frame = Rect{X: x, Y: y, Width: p.measuredWidth, Height: p.measuredHeight}
	p.layoutContent()
}

func (p *Panel) layoutContent() {
	if p.content == nil {
		return
	}
	width := p.frame.Width
	if width < 0 {
		width = 0
	}
	p.content.layout(0, 0, width)
}
