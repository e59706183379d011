package sidenav

// DefaultPanBound is the bound used for both edges when none is configured.
const DefaultPanBound = 4

// Bounds holds the pan extents of the main panel, in cells.
//
// The left bound is the strip of the navigation panel left visible when the
// main panel is at rest; the right bound is the strip of the main panel left
// visible when the navigation panel is fully revealed. Values are not
// validated: negative or oversized bounds give an odd layout, not an error.
type Bounds struct {
	left  int
	right int
}

// NewBounds returns bounds with the given left and right extents.
func NewBounds(left, right int) *Bounds {
	return &Bounds{left: left, right: right}
}

// Left returns the left pan bound.
func (b *Bounds) Left() int {
	return b.left
}

// Right returns the right pan bound.
func (b *Bounds) Right() int {
	return b.right
}

// SetLeft sets the left pan bound.
func (b *Bounds) SetLeft(n int) {
	b.left = n
}

// SetRight sets the right pan bound.
func (b *Bounds) SetRight(n int) {
	b.right = n
}

// MaxRightPan returns the furthest x the main panel may travel to in a
// container of the given width. Callers pass the live width on every call.
func (b *Bounds) MaxRightPan(width int) int {
	return width - b.right
}

// MaxLeftPan returns the resting x of the main panel.
func (b *Bounds) MaxLeftPan() int {
	return b.left
}
