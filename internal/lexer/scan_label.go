package lexer

import (
	"cglogic/internal/diag"
	"cglogic/internal/token"
)

const everyKeyword = "@every"

// scanLabel сканирует *name или ?name. Сигил без имени: один Invalid символ.
func (lx *Lexer) scanLabel() token.Token {
	start := lx.cursor.Mark()
	sigil := lx.cursor.Bump()
	if !lx.atIdentStart() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexIncompleteLabel, sp, "expected label name after '"+string(sigil)+"'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	lx.eatIdentRunes()
	sp := lx.cursor.SpanFrom(start)
	kind := token.DefLabel
	if sigil == '?' {
		kind = token.BoundLabel
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanEvery распознаёт @every целиком; "@everyone" и прочее: Invalid '@'.
func (lx *Lexer) scanEvery() token.Token {
	start := lx.cursor.Mark()
	if !lx.cursor.HasPrefix(everyKeyword) {
		return lx.scanInvalid()
	}
	lx.cursor.Skip(len(everyKeyword))
	if lx.atIdentContinue() {
		lx.cursor.Reset(start)
		return lx.scanInvalid()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Every, Span: sp, Text: lx.text(sp)}
}
