package parser_test

import (
	"testing"

	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/lexer"
	"cglogic/internal/parser"
	"cglogic/internal/source"
	"cglogic/internal/testkit"
)

func TestSpanInvariants(t *testing.T) {
	tests := []struct {
		n   dialect.Notation
		src string
	}{
		{dialect.CGIF, "[Person: *x](Loves ?x ?x)"},
		{dialect.CGIF, "  /* c */ [Number: *a] (Plus ?a 1 | *s)\n(Even ?s)  "},
		{dialect.CGIF, "~[[Cat: *c] (On ?c Mat)]"},
		{dialect.CGIF, "[Situation: [Кошка: *c] (Sits ?c)]"},
		{dialect.CGIF, ""},
		{dialect.CL, "(forall ((x Person) y) (iff (P x) (Q y)))"},
		{dialect.CL, "; header\n(P a)\n(not (= a b)) ; trailing"},
	}
	for _, tt := range tests {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("spans", []byte(tt.src)))

		toks := lexer.Tokenize(file, lexer.Options{Notation: tt.n})
		if err := testkit.CheckTokenCoverage(toks, file); err != nil {
			t.Errorf("%q: %v", tt.src, err)
		}

		bag := diag.NewBag(0)
		res := parser.Parse(file, tt.n, parser.Options{Reporter: diag.BagReporter{Bag: bag, File: file}})
		if bag.HasErrors() {
			t.Fatalf("%q: %s", tt.src, diagnosticsSummary(bag))
		}
		if err := testkit.CheckTreeSpans(res.Tree, file); err != nil {
			t.Errorf("%q: %v", tt.src, err)
		}
	}
}
