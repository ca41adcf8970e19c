package lexer

import (
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/source"
)

type Options struct {
	// Notation selects the lexical classes; Unknown is treated as CGIF.
	Notation dialect.Notation
	Reporter diag.Reporter // может быть nil: тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
