package layout

import (
	"math"

	"github.com/TheWizz/svgtree/tree"
)

// Result holds the leaf-axis positions computed by a layout pass.
type Result struct {
	pos map[*tree.Node]float64
}

// Position returns n's leaf-axis coordinate. ok is false for nodes
// hidden behind a collapsed ancestor, which are not laid out.
func (r *Result) Position(n *tree.Node) (pos float64, ok bool) {
	pos, ok = r.pos[n]
	return pos, ok
}

// Compute lays out the tree rooted at root and returns the positions
// of all visible nodes. The tree and its Collapsed flags are read but
// never written; running Compute again on an unchanged tree yields the
// same result.
func Compute(root *tree.Node) *Result {
	e := &engine{
		pos:     make(map[*tree.Node]float64),
		margins: make(map[*tree.Node]*margins),
	}
	e.assign(root, 0)
	e.realign(root)
	// The margin profiles are scratch for the realignment pass only;
	// they are dropped here and never escape.
	return &Result{pos: e.pos}
}

// margins is the extent profile of a settled subtree: left[d] and
// right[d] are the extreme positions reached by its visible nodes d
// levels below the subtree root. Leaves and collapsed nodes have the
// single-point profile {pos}, {pos}.
type margins struct {
	left  []float64
	right []float64
}

type engine struct {
	pos     map[*tree.Node]float64
	margins map[*tree.Node]*margins
}

// opaque reports whether n is treated as a leaf by the layout pass.
func opaque(n *tree.Node) bool {
	return n.Collapsed || n.IsLeaf()
}

// pivot returns the index of the median child among k children. For an
// even count the lower of the two central children anchors the
// realignment order.
func pivot(k int) int {
	return (k - 1) / 2
}

// assign numbers leaves (and collapsed nodes) with consecutive
// integers starting at next, threading the counter left to right, and
// centers every internal node over its median child: the median
// child's own position for an odd count, the mean of the two central
// children for an even one. It returns the counter after the subtree.
func (e *engine) assign(n *tree.Node, next int) int {
	if opaque(n) {
		e.pos[n] = float64(next)
		return next + 1
	}
	for _, child := range n.Children() {
		next = e.assign(child, next)
	}
	e.pos[n] = e.center(n)
	return next
}

// center recomputes an internal node's position from its children's
// current positions using the median rule.
func (e *engine) center(n *tree.Node) float64 {
	k := n.NumChildren()
	if k%2 == 1 {
		return e.pos[n.Child(k/2)]
	}
	return (e.pos[n.Child(k/2-1)] + e.pos[n.Child(k/2)]) / 2
}

// realign settles the subtree rooted at n: children are realigned
// pivot-first and then outward on both sides, so every subtree is
// settled before its parent re-centers against it, after which n's own
// margin profile is computed from theirs.
func (e *engine) realign(n *tree.Node) {
	if !opaque(n) {
		k := n.NumChildren()
		p := pivot(k)
		e.realignChild(n, p)
		for off := 1; p-off >= 0 || p+off < k; off++ {
			if p-off >= 0 {
				e.realignChild(n, p-off)
			}
			if p+off < k {
				e.realignChild(n, p+off)
			}
		}
		e.pos[n] = e.center(n)
	}
	e.margins[n] = e.profile(n)
}

func (e *engine) realignChild(n *tree.Node, i int) {
	e.realign(n.Child(i))
	e.shift(n, i)
}

// shift moves child i of n toward the pivot as far as the margin
// profiles permit: over every already-settled sibling and every
// relative depth shared between the facing margin arrays, the gap
// after the shift must be at least one unit, and the binding
// constraint lands at exactly one. The shift applies to the child's
// position, its margin arrays, and its whole visible subtree. A
// negative allowance (a settled deep sibling that slid underneath
// shallow ones) pushes the child away instead, so profiles never
// cross. The pivot child itself never shifts.
func (e *engine) shift(n *tree.Node, i int) {
	k := n.NumChildren()
	p := pivot(k)
	if i == p {
		return
	}
	child := n.Child(i)
	m := e.margins[child]

	delta := math.Inf(1)
	for j := 0; j < k; j++ {
		if j == i {
			continue
		}
		sib := e.margins[n.Child(j)]
		if sib == nil {
			// Settles later, constrained against this child then.
			continue
		}
		if i < p {
			// The child moves right; every settled sibling lies to
			// its right.
			for d := 0; d < len(m.right) && d < len(sib.left); d++ {
				if s := sib.left[d] - m.right[d] - 1; s < delta {
					delta = s
				}
			}
		} else {
			for d := 0; d < len(m.left) && d < len(sib.right); d++ {
				if s := m.left[d] - sib.right[d] - 1; s < delta {
					delta = s
				}
			}
		}
	}
	if math.IsInf(delta, 1) || delta == 0 {
		return
	}
	if i > p {
		delta = -delta
	}
	e.offset(child, delta)
}

// offset shifts a settled subtree's positions and margin arrays by
// delta, stopping at collapsed nodes: their hidden descendants carry
// no layout state.
func (e *engine) offset(n *tree.Node, delta float64) {
	e.pos[n] += delta
	if m := e.margins[n]; m != nil {
		for d := range m.left {
			m.left[d] += delta
			m.right[d] += delta
		}
	}
	if n.Collapsed {
		return
	}
	for _, child := range n.Children() {
		e.offset(child, delta)
	}
}

// profile builds n's margin profile from its settled children's
// profiles, elementwise min/max offset down one depth level.
func (e *engine) profile(n *tree.Node) *margins {
	m := &margins{
		left:  []float64{e.pos[n]},
		right: []float64{e.pos[n]},
	}
	if opaque(n) {
		return m
	}
	for _, child := range n.Children() {
		cm := e.margins[child]
		for d := range cm.left {
			if d+1 >= len(m.left) {
				m.left = append(m.left, cm.left[d])
				m.right = append(m.right, cm.right[d])
				continue
			}
			m.left[d+1] = math.Min(m.left[d+1], cm.left[d])
			m.right[d+1] = math.Max(m.right[d+1], cm.right[d])
		}
	}
	return m
}
