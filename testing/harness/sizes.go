package harness

import "testing"

// Size is a named terminal size.
type Size struct {
	Name   string
	Width  int
	Height int
}

// LayoutSizes covers every layout mode and the lopsided cases where width
// and height fall in different modes.
var LayoutSizes = []Size{
	{Name: "too-small", Width: 30, Height: 8},
	{Name: "classic", Width: 80, Height: 24},
	{Name: "standard", Width: 120, Height: 30},
	{Name: "full", Width: 160, Height: 45},
	{Name: "wide-short", Width: 200, Height: 12},
	{Name: "narrow-tall", Width: 60, Height: 60},
}

// ForEachSize runs fn as a subtest per size.
func ForEachSize(t *testing.T, sizes []Size, fn func(t *testing.T, size Size)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}
