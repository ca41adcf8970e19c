package validate_test

import (
	"testing"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/parser"
	"cglogic/internal/source"
	"cglogic/internal/validate"
)

func parseTree(t *testing.T, n dialect.Notation, src string) *ast.Expression {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("v", []byte(src)))
	bag := diag.NewBag(0)
	res := parser.Parse(file, n, parser.Options{Reporter: diag.BagReporter{Bag: bag, File: file}})
	if bag.Len() != 0 {
		t.Fatalf("%q: parse failed: %s", src, diag.FormatShort(bag.Items(), fs))
	}
	return res.Tree
}

func codes(diags []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

func TestValidateParsed(t *testing.T) {
	tests := []struct {
		name     string
		notation dialect.Notation
		src      string
		want     []diag.Code
	}{
		{"clean cgif", dialect.CGIF, "[Person: *x] (Loves ?x ?x)", nil},
		{"clean cl", dialect.CL, "(forall (x) (if (Man x) (Mortal x)))", nil},
		{"arity cgif", dialect.CGIF, "[A: *x] [B: *y] (R ?x) (R ?x ?y)", []diag.Code{diag.SemArityMismatch}},
		{"arity cl", dialect.CL, "(P a)\n(P a b)\n(P c)", []diag.Code{diag.SemArityMismatch}},
		{"duplicate quantified variable", dialect.CL, "(exists (x x) (P x))", []diag.Code{diag.SemDuplicateQuantVar}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codes(validate.Validate(parseTree(t, tt.notation, tt.src)))
			if len(got) != len(tt.want) {
				t.Fatalf("codes = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("codes[%d] = %s, want %s", i, got[i].ID(), tt.want[i].ID())
				}
			}
		})
	}
}

func TestArityMessagePointsAtFirstUse(t *testing.T) {
	diags := validate.Validate(parseTree(t, dialect.CL, "(P a)\n(P a b)"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	d := diags[0]
	if want := "'P' used with 2 arguments, first used with 1 at 1:1"; d.Message != want {
		t.Errorf("message = %q, want %q", d.Message, want)
	}
	if d.Pos.Line != 2 || d.Pos.Column != 1 {
		t.Errorf("pos = %s, want 2:1", d.Pos)
	}
	if d.Kind() != diag.KindSemantic {
		t.Errorf("kind = %s", d.Kind())
	}
}

func TestValidateHandBuilt(t *testing.T) {
	tests := []struct {
		name string
		tree ast.Node
		want diag.Code
	}{
		{"empty and", &ast.Connective{Op: ast.And}, diag.SemEmptyConnective},
		{"if with one operand", &ast.Connective{Op: ast.If, Operands: []ast.Node{&ast.Relation{Name: "P"}}}, diag.SemMissingChild},
		{"nil operand", &ast.Connective{Op: ast.Or, Operands: []ast.Node{nil}}, diag.SemMissingChild},
		{"negation without body", &ast.Negation{}, diag.SemMissingChild},
		{"quantifier without vars", &ast.Quantifier{Body: &ast.Relation{Name: "P"}}, diag.SemMissingChild},
		{"quantifier without body", &ast.Quantifier{Vars: []ast.Var{{Name: "x"}}}, diag.SemMissingChild},
		{"equation missing term", &ast.Equation{Left: &ast.Name{Text: "a"}}, diag.SemMissingChild},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := validate.Validate(tt.tree)
			if len(diags) == 0 {
				t.Fatal("expected a diagnostic")
			}
			if diags[0].Code != tt.want {
				t.Errorf("code = %s, want %s", diags[0].Code.ID(), tt.want.ID())
			}
		})
	}
}

func TestCheckReportsThroughReporter(t *testing.T) {
	bag := diag.NewBag(0)
	tree := &ast.Expression{Items: []ast.Node{&ast.Connective{Op: ast.And}}}
	res := validate.Check(tree, validate.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() != 1 || len(res.Diagnostics) != 1 {
		t.Fatalf("bag=%d result=%d", bag.Len(), len(res.Diagnostics))
	}
	if res.Visited != 2 {
		t.Errorf("visited = %d, want 2", res.Visited)
	}
}

func TestValidateNil(t *testing.T) {
	if diags := validate.Validate(nil); len(diags) != 0 {
		t.Errorf("nil tree: %v", diags)
	}
}
