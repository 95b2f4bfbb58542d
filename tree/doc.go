/*
Package tree provides a generic ordered n-ary tree of labeled nodes.

Child order is semantically meaningful (it is the left-to-right visual
order of a rendered tree) and is preserved by every structural
operation. Each node carries a non-owning pointer to its parent; a node
is either a root or appears exactly once in its parent's child list,
and the mutation methods maintain that invariant.

Nodes also carry a Collapsed annotation. It has no structural meaning
here; the layout package treats a collapsed node as an opaque leaf
while its children remain present in the tree.
*/
package tree
