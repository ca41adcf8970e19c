package fuzztests

import (
	"context"
	"testing"
	"time"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/parser"
	"cglogic/internal/source"
	"cglogic/internal/testkit"
	"cglogic/internal/translate"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func parseBytes(n dialect.Notation, input []byte) (*source.File, parser.Result, *diag.Bag) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz", input))
	bag := diag.NewBag(128)
	res := parser.Parse(file, n, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag, File: file},
		MaxErrors: 128,
	})
	return file, res, bag
}

// FuzzParserBuildsTree: успешный разбор даёт корректные спаны и
// стабильный канонический текст.
func FuzzParserBuildsTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		for _, n := range []dialect.Notation{dialect.CGIF, dialect.CL} {
			file, res, bag := parseBytes(n, input)
			if bag.HasErrors() {
				continue
			}
			if err := testkit.CheckTreeSpans(res.Tree, file); err != nil {
				t.Fatalf("%v: %v\ninput: %q", n, err, truncateForLog(input, 200))
			}

			text := ast.FormatCGIF(res.Tree)
			if n == dialect.CL {
				text = ast.FormatCL(res.Tree)
			}
			_, again, bag2 := parseBytes(n, []byte(text))
			if bag2.HasErrors() {
				t.Fatalf("%v: canonical text %q does not reparse", n, text)
			}
			if !ast.Equal(res.Tree, again.Tree) {
				t.Fatalf("%v: round trip changed the tree for %q", n, text)
			}
		}
	})
}

// FuzzTranslateNoPanic translates every CGIF input that parses.
func FuzzTranslateNoPanic(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		_, res, bag := parseBytes(dialect.CGIF, clampInput(input))
		if bag.HasErrors() {
			return
		}
		out := translate.Translate(res.Tree)
		if out.Success && out.Text == "" && ast.Count(res.Tree) > 1 {
			t.Fatalf("successful translation of %q rendered no text", truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
// It uses a timeout to detect infinite loops in error recovery.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// восстановление после ошибок на вложенных скобках
	f.Add([]byte("[Cat: [Dog: [Mouse: (R ?x"))
	f.Add([]byte("(forall (x (exists (y (and"))
	f.Add([]byte("~~~~~~~~["))
	f.Add([]byte("(Plus ?a | | | *s)"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for _, n := range []dialect.Notation{dialect.CGIF, dialect.CL} {
				parseBytes(n, input)
			}
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
