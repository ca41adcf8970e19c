package lexer

import (
	"cglogic/internal/dialect"
	"cglogic/internal/source"
	"cglogic/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	if !opts.Notation.Valid() {
		opts.Notation = dialect.CGIF
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Notation returns the notation the lexer scans.
func (lx *Lexer) Notation() dialect.Notation { return lx.opts.Notation }

// Next возвращает следующий **значимый** токен с уже собранным Leading.
// Хвостовые trivia приклеиваются к EOF, чтобы покрытие входа было полным.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	var tok token.Token
	if lx.cursor.EOF() {
		tok = token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	} else if lx.opts.Notation == dialect.CL {
		tok = lx.scanCL()
	} else {
		tok = lx.scanCGIF()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// scanCGIF: пунктуация > метки (*x ?x @every) > идентификатор > ошибка.
func (lx *Lexer) scanCGIF() token.Token {
	ch := lx.cursor.Peek()
	switch ch {
	case '[', ']', '(', ')', ':', '|', '~':
		return lx.scanPunct()
	case '*', '?':
		return lx.scanLabel()
	case '@':
		return lx.scanEvery()
	}
	if lx.atIdentStart() {
		return lx.scanIdent(false)
	}
	return lx.scanInvalid()
}

// scanCL: пунктуация > ключевые слова > идентификатор > ошибка.
func (lx *Lexer) scanCL() token.Token {
	switch lx.cursor.Peek() {
	case '(', ')', '=':
		return lx.scanPunct()
	}
	if lx.atIdentStart() {
		return lx.scanIdent(true)
	}
	return lx.scanInvalid()
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
