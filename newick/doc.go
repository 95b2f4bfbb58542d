/*
Package newick reads and writes trees in a Newick-like text format:

	tree      := subtree ';'
	subtree   := (childlist)? label
	childlist := '(' subtree (',' subtree)* ')'

Labels are arbitrary strings. The structural characters '(', ')', ',',
';' and the backslash are reserved and must be backslash-escaped inside
labels; Escape and Unescape implement those rules, and Marshal and
ParseInto are exact inverses of one another through them.

Parsing populates a caller-supplied tree.Node receiver, constructing
descendant nodes through a NodeFactory so callers can hook their own
bookkeeping into node creation.
*/
package newick
