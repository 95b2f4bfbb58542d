package layout

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"

	"github.com/TheWizz/svgtree/newick"
	"github.com/TheWizz/svgtree/tree"
)

func parseTree(t *testing.T, text string) *tree.Node {
	t.Helper()
	root := tree.New("")
	require.NoError(t, newick.ParseInto(text, root, newick.NodeFactoryFunc(tree.New)))
	return root
}

func position(t *testing.T, res *Result, n *tree.Node) float64 {
	t.Helper()
	pos, ok := res.Position(n)
	require.True(t, ok)
	return pos
}

// Leaves and collapsed nodes are numbered with strictly consecutive
// integers, left to right, from the supplied start value.
func TestAssignLeafNumbering(t *testing.T) {
	root := parseTree(t, "(A,B,(C,D)E)F;")
	e := &engine{
		pos:     make(map[*tree.Node]float64),
		margins: make(map[*tree.Node]*margins),
	}
	next := e.assign(root, 5)
	require.Equal(t, 9, next)

	want := []float64{5, 6, 7, 8}
	for i, label := range []string{"A", "B", "C", "D"} {
		require.Equal(t, want[i], e.pos[root.Find(label)], label)
	}
	// Internal nodes center over the median of their children.
	require.Equal(t, 7.5, e.pos[root.Find("E")])
	require.Equal(t, 6.0, e.pos[root])
}

func TestComputeExample(t *testing.T) {
	root := parseTree(t, "(A,B,(C,D)E)F;")
	res := Compute(root)

	want := map[string]float64{
		"A": 0, "B": 1, "C": 1.5, "D": 2.5, "E": 2,
	}
	for label, pos := range want {
		require.Equal(t, pos, position(t, res, root.Find(label)), label)
	}
	require.Equal(t, 1.0, position(t, res, root))
}

// Realignment pulls outer subtrees toward the pivot until their margin
// profiles sit exactly one unit apart.
func TestComputeCompaction(t *testing.T) {
	root := parseTree(t, "((a,b,c)X,d)r;")
	res := Compute(root)

	require.Equal(t, 1.0, position(t, res, root.Find("X")))
	// d starts at 3 in pass 1 and is pulled to one unit right of X.
	require.Equal(t, 2.0, position(t, res, root.Find("d")))
	require.Equal(t, 1.5, position(t, res, root))
	// Leaves under X are untouched.
	require.Equal(t, 0.0, position(t, res, root.Find("a")))
	require.Equal(t, 2.0, position(t, res, root.Find("c")))
}

func TestComputeCollapsed(t *testing.T) {
	root := parseTree(t, "(A,B,(C,D)E)F;")
	root.Find("E").Collapsed = true
	res := Compute(root)

	require.Equal(t, 0.0, position(t, res, root.Find("A")))
	require.Equal(t, 1.0, position(t, res, root.Find("B")))
	// E takes a single leaf slot.
	require.Equal(t, 2.0, position(t, res, root.Find("E")))
	require.Equal(t, 1.0, position(t, res, root))

	// Hidden descendants receive no position at all.
	_, ok := res.Position(root.Find("C"))
	require.False(t, ok)
	_, ok = res.Position(root.Find("D"))
	require.False(t, ok)
}

func TestComputeSingleNode(t *testing.T) {
	root := tree.New("alone")
	res := Compute(root)
	require.Equal(t, 0.0, position(t, res, root))
}

func TestComputeChain(t *testing.T) {
	root := parseTree(t, "(((a)b)c)d;")
	res := Compute(root)
	for _, label := range []string{"a", "b", "c"} {
		require.Equal(t, 0.0, position(t, res, root.Find(label)), label)
	}
	require.Equal(t, 0.0, position(t, res, root))
}

// Layout is a pure function of the tree shape and the Collapsed flags.
func TestComputeIdempotent(t *testing.T) {
	root := parseTree(t, "(a,(b,c)x,((d,e)f,g)y,h)r;")
	first := Compute(root)
	second := Compute(root)

	var check func(n *tree.Node)
	check = func(n *tree.Node) {
		p1, ok1 := first.Position(n)
		p2, ok2 := second.Position(n)
		require.Equal(t, ok1, ok2)
		require.Equal(t, p1, p2)
		for _, child := range n.Children() {
			check(child)
		}
	}
	check(root)
}

// extents recomputes a subtree's per-depth min/max positions from a
// finished layout, mirroring the margin profiles the engine discards.
func extents(res *Result, n *tree.Node) (left, right []float64) {
	pos, ok := res.Position(n)
	if !ok {
		return nil, nil
	}
	left, right = []float64{pos}, []float64{pos}
	if n.Collapsed {
		return left, right
	}
	for _, child := range n.Children() {
		cl, cr := extents(res, child)
		for d := range cl {
			if d+1 >= len(left) {
				left = append(left, cl[d])
				right = append(right, cr[d])
				continue
			}
			left[d+1] = math.Min(left[d+1], cl[d])
			right[d+1] = math.Max(right[d+1], cr[d])
		}
	}
	return left, right
}

// After realignment, any two sibling subtrees keep a gap of at least
// one unit at every relative depth both of them reach.
func TestNoOverlap(t *testing.T) {
	for _, text := range []string{
		"(A,B,(C,D)E)F;",
		"((a,b,c)X,d)r;",
		"(a,(b,c)x,(d,e)y,f)r;",
		"(((a,b)m)q,z)r;",
		"((a,(b,(c,d)e)f)g,(h,i)j,k,((l)m,n,o)p)r;",
		"(,,(,));",
	} {
		root := parseTree(t, text)
		res := Compute(root)

		var check func(n *tree.Node)
		check = func(n *tree.Node) {
			if n.Collapsed {
				return
			}
			kids := n.Children()
			for i := 0; i < len(kids); i++ {
				_, ri := extents(res, kids[i])
				for j := i + 1; j < len(kids); j++ {
					lj, _ := extents(res, kids[j])
					for d := 0; d < len(ri) && d < len(lj); d++ {
						require.LessOrEqualf(t, ri[d]+1, lj[d],
							"%s: children %d,%d of %q at depth %d", text, i, j, n.Label, d)
					}
				}
			}
			for _, child := range kids {
				check(child)
			}
		}
		check(root)
	}
}

func TestLayoutDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/layout",
		func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "layout":
				root := tree.New("")
				in := strings.TrimSuffix(d.Input, "\n")
				err := newick.ParseInto(in, root, newick.NodeFactoryFunc(tree.New))
				if err != nil {
					d.Fatalf(t, "parse: %v", err)
				}
				for _, arg := range d.CmdArgs {
					if arg.Key == "collapse" {
						for _, label := range arg.Vals {
							if n := root.Find(label); n != nil {
								n.Collapsed = true
							}
						}
					}
				}
				res := Compute(root)

				buf := new(strings.Builder)
				var walk func(n *tree.Node)
				walk = func(n *tree.Node) {
					pos, ok := res.Position(n)
					if !ok {
						return
					}
					fmt.Fprintf(buf, "%s%q depth=%d x=%g\n",
						strings.Repeat("  ", n.Depth()), n.Label, n.Depth(), pos)
					for _, child := range n.Children() {
						walk(child)
					}
				}
				walk(root)
				return buf.String()
			default:
				d.Fatalf(t, "unknown command %q", d.Cmd)
				return ""
			}
		})
}
