package lexer

import (
	"cglogic/internal/source"
	"cglogic/internal/token"
)

// Tokenize scans the whole file and returns every token including the final EOF.
// It never fails: unrecognised characters become Invalid tokens and are reported.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/3+1)
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}
