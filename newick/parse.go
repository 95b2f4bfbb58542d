package newick

import (
	"github.com/cockroachdb/errors"

	"github.com/TheWizz/svgtree/tree"
)

// ErrMalformed is returned for structurally invalid input: unbalanced
// parentheses, a comma outside any childlist, or text after the
// terminal semicolon.
var ErrMalformed = errors.New("newick: malformed input")

// A NodeFactory constructs the descendant nodes allocated during
// parsing, letting callers attach their own bookkeeping to creation.
type NodeFactory interface {
	NewNode(label string) *tree.Node
}

// NodeFactoryFunc adapts a plain function to the NodeFactory
// interface. tree.New is a ready-made fit.
type NodeFactoryFunc func(label string) *tree.Node

// NewNode calls f.
func (f NodeFactoryFunc) NewNode(label string) *tree.Node { return f(label) }

// ParseInto parses Newick text into root, which should be a fresh node:
// the outermost label is assigned to root itself while all descendants
// are allocated through factory. A missing terminal semicolon is
// tolerated.
//
// On failure root may hold a partial result; callers that need the
// keep-the-text recovery behavior should use ParseIntoLenient.
func ParseInto(text string, root *tree.Node, factory NodeFactory) error {
	toks, err := Tokenize(text)
	if err != nil {
		return err
	}
	if err := validate(toks); err != nil {
		return err
	}

	// The token sequence is scanned from its last element to its
	// first. A closing parenthesis is met before its opening one, so
	// the partially built tree itself acts as the parsing stack:
	// RParen descends into the node just made, LParen ascends back
	// out, and prepending children yields the original left-to-right
	// order.
	var parent, node *tree.Node
	for i := len(toks) - 1; i >= 0; i-- {
		if i+1 < len(toks) && toks[i+1].Type == TokenLParen {
			// The previous step consumed a '(' to the right of this
			// position, so this is the boundary of an already-built
			// childlist, not a node of its own.
		} else {
			label := ""
			if toks[i].Type == TokenLabel {
				label = toks[i].Label
				i--
			}
			if parent == nil {
				// The outermost trailing label belongs to the
				// receiver itself.
				node = root
				node.Label = label
			} else {
				node = factory.NewNode(label)
				parent.Prepend(node)
			}
		}
		if i < 0 {
			break
		}
		switch toks[i].Type {
		case TokenLParen:
			if i > 0 {
				if parent == nil {
					return errors.Wrap(ErrMalformed, "ascent past the root")
				}
				parent = parent.Parent()
			}
		case TokenRParen:
			parent = node
		}
	}
	return nil
}

// ParseIntoLenient parses like ParseInto but never fails: on any parse
// error the partial result is discarded and root becomes a single leaf
// labeled with the entire original input text, preserving user content.
func ParseIntoLenient(text string, root *tree.Node, factory NodeFactory) {
	if err := ParseInto(text, root, factory); err != nil {
		for root.NumChildren() > 0 {
			root.Child(0).Detach()
		}
		root.Label = text
	}
}

// validate runs a forward balance check over the token sequence so the
// backward scan can rely on well-nested input. The backward scan alone
// would silently mis-build trees like "(A,B;" instead of failing.
func validate(toks []Token) error {
	depth := 0
	for i, tok := range toks {
		switch tok.Type {
		case TokenLParen:
			// A childlist may open only at the start of a subtree: a
			// '(' after a label or a closed childlist would be a
			// second childlist in the same subtree.
			if i > 0 {
				if prev := toks[i-1].Type; prev == TokenLabel || prev == TokenRParen {
					return errors.Wrap(ErrMalformed, "unexpected '('")
				}
			}
			depth++
		case TokenRParen:
			depth--
			if depth < 0 {
				return errors.Wrap(ErrMalformed, "unmatched ')'")
			}
		case TokenComma:
			if depth == 0 {
				return errors.Wrap(ErrMalformed, "comma outside a childlist")
			}
		case TokenSemicolon:
			if depth != 0 {
				return errors.Wrap(ErrMalformed, "';' inside a childlist")
			}
			if i != len(toks)-1 {
				return errors.Wrap(ErrMalformed, "text after the terminal ';'")
			}
		}
	}
	if depth != 0 {
		return errors.Wrap(ErrMalformed, "unmatched '('")
	}
	return nil
}
