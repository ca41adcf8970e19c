package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/parser"
	"cglogic/internal/source"
)

func parse(t *testing.T, n dialect.Notation, src string) (parser.Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte(src))
	file := fs.Get(id)
	bag := diag.NewBag(0)
	res := parser.Parse(file, n, parser.Options{Reporter: diag.BagReporter{Bag: bag, File: file}})
	return res, bag
}

func parseOK(t *testing.T, n dialect.Notation, src string) *ast.Expression {
	t.Helper()
	res, bag := parse(t, n, src)
	if bag.Len() != 0 || res.Errors != 0 {
		t.Fatalf("%q: unexpected diagnostics: %s", src, diagnosticsSummary(bag))
	}
	return res.Tree
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Pos, d.Message)
	}
	return strings.Join(lines, "; ")
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func countKind(bag *diag.Bag, k diag.Kind) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Kind() == k {
			n++
		}
	}
	return n
}
