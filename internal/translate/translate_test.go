package translate_test

import (
	"testing"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/parser"
	"cglogic/internal/source"
	"cglogic/internal/translate"
)

func parseCGIF(t *testing.T, src string) *ast.Expression {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.cgif", []byte(src)))
	bag := diag.NewBag(0)
	res := parser.Parse(file, dialect.CGIF, parser.Options{Reporter: diag.BagReporter{Bag: bag, File: file}})
	if bag.Len() != 0 {
		t.Fatalf("%q: parse failed: %s", src, diag.FormatShort(bag.Items(), fs))
	}
	return res.Tree
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"defining label", "[Person: *x](Loves ?x ?x)", "(exists (x1) (and (Person x1) (Loves x1 x1)))"},
		{"untyped", "[: *y]", "(exists (y1) (Thing y1))"},
		{"universal", "[Person: @every]", "(forall (x1) (Person x1))"},
		{"universal with rest", "[Person: @every *p] (Mortal ?p)", "(forall (p1) (if (Person p1) (Mortal p1)))"},
		{"generic concepts", "[Cat] [Dog]", "(exists (x1) (and (Cat x1) (exists (x2) (Dog x2))))"},
		{
			"nested binders",
			"[Cat: *x] [Mat: *y] (On ?x ?y)",
			"(exists (x1) (and (Cat x1) (exists (y1) (and (Mat y1) (On x1 y1)))))",
		},
		{"constants", "[Person: John] (Loves John Mary)", "(and (Person John) (Loves John Mary))"},
		{
			"prefix before binder",
			"(Sunny Today) [Person: *x] (Happy ?x)",
			"(and (Sunny Today) (exists (x1) (and (Person x1) (Happy x1))))",
		},
		{
			"negation bounds scope",
			"[Person: *x] ~[[Cat: *c] (Owns ?x ?c)]",
			"(exists (x1) (and (Person x1) (not (exists (c1) (and (Cat c1) (Owns x1 c1))))))",
		},
		{"bound concept", "[Person: *x] ~[[Robot: ?x]]", "(exists (x1) (and (Person x1) (not (Robot x1))))"},
		{"name collision", "[Person: *x] (x1 ?x)", "(exists (x2) (and (Person x2) (x1 x2)))"},
		{"empty", "", ""},
		{"comment only", "/* nothing */", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := translate.Translate(parseCGIF(t, tt.src))
			if !res.Success {
				t.Fatalf("translate failed: %v", res.Errors)
			}
			if res.Text != tt.want {
				t.Errorf("got  %s\nwant %s", res.Text, tt.want)
			}
			if got := ast.FormatCL(res.Tree); got != res.Text {
				t.Errorf("Text %q differs from tree rendering %q", res.Text, got)
			}
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"context", "[Situation: [Cat: *c] (Sleeps ?c)]", diag.UnsContext},
		{"function", "(Add a b | *s)", diag.UnsFunction},
		{"out of scope", "~[[Cat: *c]] (Likes ?c)", diag.RefOutOfScope},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := translate.Translate(parseCGIF(t, tt.src))
			if res.Success {
				t.Fatalf("expected failure, got %q", res.Text)
			}
			if res.Tree != nil {
				t.Errorf("tree must not be produced on failure")
			}
			if res.Errors[0].Code != tt.code {
				t.Errorf("code = %s, want %s", res.Errors[0].Code.ID(), tt.code.ID())
			}
		})
	}
}

func TestTranslateUndefinedLabel(t *testing.T) {
	// парсер такое не пропустит, поэтому дерево собрано руками
	tree := &ast.Expression{Items: []ast.Node{
		&ast.Relation{Name: "Loves", Args: []ast.Node{
			&ast.Coreference{Label: "z"},
			&ast.Coreference{Label: "z"},
		}},
	}}
	res := translate.Translate(tree)
	if res.Success || res.Tree != nil {
		t.Fatalf("expected failure without tree, got %+v", res)
	}
	if len(res.Errors) == 0 || res.Errors[0].Kind() != diag.KindReference {
		t.Fatalf("expected reference error, got %v", res.Errors)
	}
	if res.Errors[0].Code != diag.RefUndefinedLabel {
		t.Errorf("code = %s", res.Errors[0].Code.ID())
	}
}

func TestTranslateHandBuiltTrees(t *testing.T) {
	tests := []struct {
		name string
		tree *ast.Expression
		code diag.Code
	}{
		{
			"empty negation",
			&ast.Expression{Items: []ast.Node{&ast.Negation{Body: &ast.Expression{}}}},
			diag.UnsEmptyGraph,
		},
		{
			"CL quantifier",
			&ast.Expression{Items: []ast.Node{&ast.Quantifier{Vars: []ast.Var{{Name: "x"}}, Body: &ast.Relation{Name: "P"}}}},
			diag.UnsNotation,
		},
		{
			"duplicate label",
			&ast.Expression{Items: []ast.Node{
				&ast.Concept{Type: "A", Referent: ast.Referent{Kind: ast.ReferentDefining, Name: "x"}},
				&ast.Concept{Type: "B", Referent: ast.Referent{Kind: ast.ReferentDefining, Name: "x"}},
			}},
			diag.RefDuplicateLabel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := translate.Translate(tt.tree)
			if res.Success || res.Tree != nil {
				t.Fatalf("expected failure without tree")
			}
			if res.Errors[0].Code != tt.code {
				t.Errorf("code = %s, want %s", res.Errors[0].Code.ID(), tt.code.ID())
			}
		})
	}
}

func TestTranslateDeterministic(t *testing.T) {
	tree := parseCGIF(t, "[Cat: *x] [Mat] ~[[Dog: *y] (Chases ?y ?x)] (On ?x Floor)")
	before := ast.FormatCGIF(tree)

	a := translate.New(translate.Options{}).Translate(tree)
	b := translate.New(translate.Options{}).Translate(tree)
	if !a.Success || !b.Success {
		t.Fatalf("translate failed: %v %v", a.Errors, b.Errors)
	}
	if !ast.Equal(a.Tree, b.Tree) || a.Text != b.Text {
		t.Errorf("translations differ:\n%s\n%s", a.Text, b.Text)
	}
	if after := ast.FormatCGIF(tree); after != before {
		t.Errorf("input tree changed: %q -> %q", before, after)
	}
}

func TestTranslateDefaultTypeOption(t *testing.T) {
	res := translate.New(translate.Options{DefaultType: "Entity"}).Translate(parseCGIF(t, "[: *y]"))
	if want := "(exists (y1) (Entity y1))"; res.Text != want {
		t.Errorf("got %s, want %s", res.Text, want)
	}
}
