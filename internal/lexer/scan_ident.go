package lexer

import (
	"cglogic/internal/token"
)

// scanIdent сканирует [Ident]; в CL проверяет ключевые слова через LookupKeyword.
// Ключевое слово распознаётся только как идентификатор целиком: "android": Ident.
func (lx *Lexer) scanIdent(keywords bool) token.Token {
	start := lx.cursor.Mark()
	lx.eatIdentRunes()
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if keywords {
		if k, ok := token.LookupKeyword(text); ok {
			return token.Token{Kind: k, Span: sp, Text: text}
		}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

func (lx *Lexer) eatIdentRunes() {
	for lx.atIdentContinue() {
		lx.bumpRune()
	}
}
