package newick

import (
	"bytes"

	"github.com/TheWizz/svgtree/tree"
)

// Marshal serializes the tree rooted at n to Newick text, the exact
// inverse of ParseInto: children in parentheses, comma-separated, in
// order, followed by the escaped label, with a terminal semicolon.
func Marshal(n *tree.Node) string {
	buf := new(bytes.Buffer)
	marshalNode(buf, n)
	buf.WriteByte(terminal)
	return buf.String()
}

func marshalNode(buf *bytes.Buffer, n *tree.Node) {
	if !n.IsLeaf() {
		buf.WriteByte(childrenStart)
		for i, child := range n.Children() {
			if i > 0 {
				buf.WriteByte(delimiter)
			}
			marshalNode(buf, child)
		}
		buf.WriteByte(childrenEnd)
	}
	buf.WriteString(Escape(n.Label))
}
