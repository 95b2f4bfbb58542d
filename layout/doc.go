/*
Package layout assigns every visible node of a tree a position along
the leaf axis, the one-dimensional coordinate orthogonal to depth along
which sibling subtrees sit side by side. The rendering side combines
each node's position with its depth to obtain screen coordinates.

A pass runs in two phases. The first numbers the leaves with
consecutive integers left to right and centers every internal node over
its median child. The second settles each subtree bottom-up: children
are realigned pivot-first and outward, each node is re-centered over
its settled pivot child, and every non-pivot subtree is then shifted
toward the pivot as far as its margin profile allows while keeping a
minimum one-unit gap to every settled sibling profile at every shared
relative depth. Margin profiles bound the per-depth extent of a
subtree, so overlap resolution never needs pairwise node comparison.

Nodes whose Collapsed flag is set are treated as opaque leaves: they
take a single slot and their descendants receive no position. Results
live in a side table keyed by node identity; the tree itself is never
written to, and a pass is idempotent for an unchanged tree and flags.
*/
package layout
