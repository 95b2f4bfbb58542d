package tree

// A Pattern matches labels. *regexp.Regexp satisfies it.
type Pattern interface {
	MatchString(s string) bool
}

// Find searches this node's descendants, excluding the node itself,
// breadth-first and left-to-right within each level, and returns the
// first node whose label matches, or nil if none does.
//
// The matcher may be a plain string (exact comparison), a
// func(string) bool predicate, or a Pattern such as *regexp.Regexp.
// Any other value is compared against labels by strict equality.
func (n *Node) Find(matcher any) *Node {
	pred := matchPredicate(matcher)
	queue := []*Node{n}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, child := range next.children {
			if pred(child.Label) {
				return child
			}
			queue = append(queue, child)
		}
	}
	return nil
}

// matchPredicate normalizes the polymorphic matcher once, before the
// scan begins.
func matchPredicate(matcher any) func(string) bool {
	switch m := matcher.(type) {
	case string:
		return func(label string) bool { return label == m }
	case func(string) bool:
		return m
	case Pattern:
		return m.MatchString
	default:
		return func(label string) bool { return any(label) == matcher }
	}
}
