package token

import (
	"cglogic/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsPunct reports whether the token is structural punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LBracket, RBracket, LParen, RParen, Colon, Pipe, Tilde, Equals:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a CL keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwAnd, KwOr, KwNot, KwIf, KwIff, KwExists, KwForall:
		return true
	default:
		return false
	}
}

// IsLabel reports whether the token is a CGIF prefixed label (*x, ?x, @every).
func (t Token) IsLabel() bool {
	switch t.Kind {
	case DefLabel, BoundLabel, Every:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Name strips the label sigil: "*x" and "?x" both yield "x".
func (t Token) Name() string {
	if (t.Kind == DefLabel || t.Kind == BoundLabel) && len(t.Text) > 1 {
		return t.Text[1:]
	}
	return t.Text
}
