package newick

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// The reserved structural characters. Any of them appearing inside a
// label must be backslash-escaped.
const (
	terminal      = ';'
	delimiter     = ','
	childrenStart = '('
	childrenEnd   = ')'
	escapePrefix  = '\\'
)

const reserved = "(),;\\"

// ErrInvalidEscape is returned when a backslash is followed by a
// non-reserved character, or by nothing at all.
var ErrInvalidEscape = errors.New("newick: invalid escape")

// TokenType distinguishes the kinds of tokens produced by Tokenize.
type TokenType int

const (
	// TokenLabel is a label fragment; its unescaped text is in
	// Token.Label.
	TokenLabel TokenType = iota
	TokenLParen
	TokenRParen
	TokenComma
	TokenSemicolon
)

// A Token is either a structural marker or a label fragment.
type Token struct {
	Type  TokenType
	Label string
}

// Escape returns label with every reserved character prefixed by a
// backslash, making it safe to embed in Newick text.
func Escape(label string) string {
	var buf strings.Builder
	for _, r := range label {
		if strings.ContainsRune(reserved, r) {
			buf.WriteByte(escapePrefix)
		}
		buf.WriteRune(r)
	}
	return buf.String()
}

// Unescape validates a character found after a backslash. In strict
// mode only the reserved characters are accepted; otherwise r is
// returned unchanged.
func Unescape(r rune, strict bool) (rune, error) {
	if strict && !strings.ContainsRune(reserved, r) {
		return 0, errors.Wrapf(ErrInvalidEscape, "%q after a backslash", r)
	}
	return r, nil
}

// Tokenize scans text left to right into a sequence of structural
// markers and label fragments. A backslash consumes the following
// character as a literal, which is validated via Unescape in strict
// mode; a trailing backslash with nothing after it is an error.
// Consecutive label characters merge into a single fragment.
func Tokenize(text string) ([]Token, error) {
	var toks []Token
	fragment := func(r rune) {
		if n := len(toks); n > 0 && toks[n-1].Type == TokenLabel {
			toks[n-1].Label += string(r)
			return
		}
		toks = append(toks, Token{Type: TokenLabel, Label: string(r)})
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case childrenStart:
			toks = append(toks, Token{Type: TokenLParen})
		case childrenEnd:
			toks = append(toks, Token{Type: TokenRParen})
		case delimiter:
			toks = append(toks, Token{Type: TokenComma})
		case terminal:
			toks = append(toks, Token{Type: TokenSemicolon})
		case escapePrefix:
			if i+1 >= len(runes) {
				return nil, errors.Wrap(ErrInvalidEscape, "trailing backslash")
			}
			i++
			lit, err := Unescape(runes[i], true)
			if err != nil {
				return nil, err
			}
			fragment(lit)
		default:
			fragment(r)
		}
	}
	return toks, nil
}

func (typ TokenType) String() string {
	switch typ {
	case TokenLabel:
		return "Label"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	case TokenComma:
		return "Comma"
	case TokenSemicolon:
		return "Semicolon"
	}
	panic(fmt.Sprintf("BUG: unknown token type %d", int(typ)))
}
