package lexer

import (
	"fmt"

	"cglogic/internal/diag"
	"cglogic/internal/token"
)

var punct = map[byte]token.Kind{
	'[': token.LBracket,
	']': token.RBracket,
	'(': token.LParen,
	')': token.RParen,
	':': token.Colon,
	'|': token.Pipe,
	'~': token.Tilde,
	'=': token.Equals,
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	k := punct[lx.cursor.Bump()]
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
}

// scanInvalid съедает ровно один символ (руну) и репортит его.
func (lx *Lexer) scanInvalid() token.Token {
	start := lx.cursor.Mark()
	r, _ := lx.peekRune()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", r))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
