package sidenav

import "fmt"

// Rect is a cell rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Kind is the kind of a content node.
type Kind int

const (
	// KindGroup stacks its children vertically and draws nothing itself.
	KindGroup Kind = iota
	// KindText is a plain line of text.
	KindText
	// KindTitle is an emphasized line of text.
	KindTitle
	// KindButton is a control drawn in brackets.
	KindButton
	// KindItem is a list entry carrying a value.
	KindItem
)

var kindNames = map[Kind]string{
	KindGroup:  "group",
	KindText:   "text",
	KindTitle:  "title",
	KindButton: "button",
	KindItem:   "item",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind returns the kind named s. The empty string is a group.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindGroup, nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindGroup, fmt.Errorf("unknown node type %q", s)
}

// Node is an element of panel content. Panels own their nodes; nodes never
// know where their panel sits on screen.
type Node struct {
	ID       string
	Kind     Kind
	Text     string
	Value    string
	Height   int
	Children []*Node

	onTap   func(*Node)
	pressed bool
	// rect is relative to the owning panel.
	rect Rect
}

// NewNode creates a node.
func NewNode(id string, kind Kind, text string) *Node {
	return &Node{ID: id, Kind: kind, Text: text}
}

// Add appends children and returns n for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// SetOnTap sets the handler run when the node is tapped. Only nodes with a
// handler take part in press highlighting and tap dispatch.
func (n *Node) SetOnTap(fn func(*Node)) {
	n.onTap = fn
}

// Tappable reports whether the node has a tap handler.
func (n *Node) Tappable() bool {
	return n.onTap != nil
}

// Pressed reports whether the node is drawn as pressed.
func (n *Node) Pressed() bool {
	return n.pressed
}

// SetPressed sets the pressed state.
func (n *Node) SetPressed(pressed bool) {
	n.pressed = pressed
}

// Rect returns the node's rectangle relative to its panel, as of the last
// layout pass.
func (n *Node) Rect() Rect {
	return n.rect
}

// Find returns the first node with the given id in depth-first order.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// Walk visits n and its descendants depth-first until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		if !fn(node) {
			return
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
}

func (n *Node) tap() {
	if n.onTap != nil {
		n.onTap(n)
	}
}

// layout stacks n and its children from row y in a column of the given width
// and returns the number of rows used.
func (n *Node) layout(x, y, width int) int {
	if n.Kind != KindGroup {
		h := n.Height
		if h <= 0 {
			h = 1
		}
		n.rect = Rect{X: x, Y: y, Width: width, Height: h}
		return h
	}

	used := 0
	for _, child := range n.Children {
		used += child.layout(x, y+used, width)
	}
	if n.Height > used {
		used = n.Height
	}
	n.rect = Rect{X: x, Y: y, Width: width, Height: used}
	return used
}

// hitTest returns the deepest tappable node containing the panel-relative
// point. Later children are checked first.
func (n *Node) hitTest(x, y int) *Node {
	if !n.rect.Contains(x, y) {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := n.Children[i].hitTest(x, y); hit != nil {
			return hit
		}
	}
	if n.Tappable() {
		return n
	}
	return nil
}

// clearPressedState clears the first pressed node found depth-first across
// roots and reports whether one was found.
func clearPressedState(roots ...*Node) bool {
	cleared := false
	for _, root := range roots {
		if root == nil {
			continue
		}
		root.Walk(func(node *Node) bool {
			if node.pressed {
				node.pressed = false
				cleared = true
				return false
			}
			return true
		})
		if cleared {
			return true
		}
	}
	return false
}
