// Package scene is a minimal retained-mode node tree: containers group,
// sprites draw as sized points, rects draw as filled quads. Children
// inherit their parent's position offset and alpha. The renderer walks the
// tree each frame; nothing here touches the GPU.
package scene

// Color is an 8-bit per channel node tint.
type Color struct {
	R, G, B uint8
}

type Kind uint8

const (
	KindContainer Kind = iota
	KindSprite
	KindRect
)

// Node is one element of the scene tree. A zero Tex means the node renders
// as a flat colored shape; a non-zero Tex is an opaque renderer texture
// handle.
type Node struct {
	Name string
	Kind Kind

	X, Y     float64 // position relative to parent
	W, H     float64 // rect extent
	Size     float64 // sprite point size
	Rotation float64
	Alpha    float64
	Visible  bool
	Color    Color
	Tex      uint32

	parent   *Node
	children []*Node
}

func NewContainer(name string) *Node {
	return &Node{Name: name, Kind: KindContainer, Alpha: 1, Visible: true}
}

func NewSprite(name string, size float64, col Color) *Node {
	return &Node{Name: name, Kind: KindSprite, Size: size, Color: col, Alpha: 1, Visible: true}
}

func NewRect(name string, w, h float64, col Color) *Node {
	return &Node{Name: name, Kind: KindRect, W: w, H: h, Color: col, Alpha: 1, Visible: true}
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the live child slice in draw order. Callers must not
// mutate it.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild appends c as the last (topmost) child, detaching it from any
// previous parent first.
func (n *Node) AddChild(c *Node) {
	if c == nil || c == n {
		return
	}
	if c.parent != nil {
		c.Remove()
	}
	c.parent = n
	n.children = append(n.children, c)
}

// Remove detaches the node from its parent, preserving sibling draw order.
// Safe to call on an already-detached node.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// RemoveChildren detaches every child.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = n.children[:0]
}

// Walk visits n and its descendants in draw order, passing each node its
// world position and effective alpha. Invisible subtrees are skipped.
func (n *Node) Walk(fn func(n *Node, wx, wy, alpha float64)) {
	n.walk(0, 0, 1, fn)
}

func (n *Node) walk(ox, oy, a float64, fn func(*Node, float64, float64, float64)) {
	if !n.Visible {
		return
	}
	wx := ox + n.X
	wy := oy + n.Y
	wa := a * n.Alpha
	fn(n, wx, wy, wa)
	for _, c := range n.children {
		c.walk(wx, wy, wa, fn)
	}
}
