package tree

// Node is a single labeled node in an ordered tree. The zero value is a
// root with an empty label and no children, ready for use.
type Node struct {
	// Label is an opaque string payload. It may be empty.
	Label string

	// Collapsed marks this node as opaque to layout: it is treated as
	// a leaf while its children remain in the structural tree. It is
	// set by the rendering side and never changed by this package.
	Collapsed bool

	children []*Node
	parent   *Node
}

// New returns a fresh root node with the given label.
func New(label string) *Node {
	return &Node{Label: label}
}

// Parent returns the containing node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in left-to-right order. The
// returned slice is the node's own; callers must not modify it and
// should use the mutation methods instead.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i'th child.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Append detaches child from its current parent, if any, and adds it
// as this node's last child.
func (n *Node) Append(child *Node) {
	child.Detach()
	n.children = append(n.children, child)
	child.parent = n
}

// Prepend detaches child from its current parent, if any, and adds it
// as this node's first child.
func (n *Node) Prepend(child *Node) {
	n.Insert(child, 0)
}

// Insert detaches child from its current parent, if any, and splices
// it into this node's children at the given position. Positions out of
// range are clamped. When child is already one of this node's children
// at an index strictly below pos, pos is first decremented by one,
// since detaching shifts every later index down; callers doing
// index-based reordering rely on this correction.
func (n *Node) Insert(child *Node, pos int) {
	if child.parent == n {
		if cur := child.Position(); cur < pos {
			pos--
		}
	}
	child.Detach()
	if pos < 0 {
		pos = 0
	} else if pos > len(n.children) {
		pos = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = child
	child.parent = n
}

// RemoveChild removes child from this node's children, comparing by
// identity. It is a no-op when child is not present. The child's
// parent pointer is left untouched; use Detach on the child to clear
// both sides.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Detach removes this node (and thereby its whole subtree) from its
// parent. The subtree stays intact and reachable through this node.
// Detaching a root is a no-op.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
		n.parent = nil
	}
}

// Position returns this node's index within its parent's children, or
// -1 for a root.
func (n *Node) Position() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Depth returns the number of parent links between this node and the
// root. A root has depth 0.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Root follows parent links until a node with no parent is found.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}
