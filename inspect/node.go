package inspect

// Rect is a rectangle in terminal cells.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Node is one element of the inspected tree: the container, a panel, or a
// content node inside a panel.
type Node struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
	Text string `json:"text,omitempty"`

	// Rest is where layout placed the element.
	Rest Rect `json:"rest"`
	// Drawn is set only when the element is drawn somewhere other than
	// Rest, which happens to the main panel while it is panned.
	Drawn *Rect `json:"drawn,omitempty"`

	State    map[string]any `json:"state,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// NewNode creates a node of the given kind.
func NewNode(kind string) *Node {
	return &Node{Kind: kind}
}

// Named sets the ID.
func (n *Node) Named(id string) *Node {
	n.ID = id
	return n
}

// Labelled sets the text.
func (n *Node) Labelled(text string) *Node {
	n.Text = text
	return n
}

// At sets the resting rectangle.
func (n *Node) At(x, y, width, height int) *Node {
	n.Rest = Rect{X: x, Y: y, Width: width, Height: height}
	return n
}

// DrawnAt records the drawn rectangle unless it equals Rest. Call it after At.
func (n *Node) DrawnAt(x, y, width, height int) *Node {
	r := Rect{X: x, Y: y, Width: width, Height: height}
	if r == n.Rest {
		n.Drawn = nil
		return n
	}
	n.Drawn = &r
	return n
}

// Set records a state value.
func (n *Node) Set(key string, value any) *Node {
	if n.State == nil {
		n.State = make(map[string]any)
	}
	n.State[key] = value
	return n
}

// Add appends children.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first node depth-first with the given ID, or nil.
func (n *Node) Find(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}
