package translate_test

import (
	"strconv"
	"testing"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/parser"
	"cglogic/internal/source"
	"cglogic/internal/translate"
)

func parseCL(t *testing.T, src string) *ast.Expression {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.cl", []byte(src)))
	bag := diag.NewBag(0)
	res := parser.Parse(file, dialect.CL, parser.Options{Reporter: diag.BagReporter{Bag: bag, File: file}})
	if bag.Len() != 0 {
		t.Fatalf("%q: parse failed: %s", src, diag.FormatShort(bag.Items(), fs))
	}
	return res.Tree
}

func TestToCGIF(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"exists with type", "(exists (x) (and (Person x) (Loves x x)))", "[Person: *x] (Loves ?x ?x)"},
		{"exists without type", "(exists (x) (Loves x Mary))", "[: *x] (Loves ?x Mary)"},
		{"two variables", "(exists (x y) (and (Cat x) (Mat y) (On x y)))", "[Cat: *x] [Mat: *y] (On ?x ?y)"},
		{"forall if", "(forall (x) (if (Person x) (Mortal x)))", "[Person: @every *x] [Mortal: ?x]"},
		{"forall typed var", "(forall ((x Person)) (Mortal x))", "[Person: @every *x] [Mortal: ?x]"},
		{"forall type only", "(forall (x) (Cat x))", "[Cat: @every *x]"},
		{"forall untyped", "(forall (x) (Loves x x))", "[: @every *x] (Loves ?x ?x)"},
		{
			"forall with rest of antecedent",
			"(forall (x) (if (and (Cat x) (Hungry x)) (Meows x)))",
			"[Cat: @every *x] ~[[Hungry: ?x] ~[[Meows: ?x]]]",
		},
		{"not", "(not (exists (x) (Unicorn x)))", "~[[Unicorn: *x]]"},
		{"or", "(or (Likes a b) (Hates a b))", "~[~[(Likes a b)] ~[(Hates a b)]]"},
		{"if", "(if (Raining) (Wet Ground))", "~[(Raining) ~[[Wet: Ground]]]"},
		{
			"iff",
			"(iff (Likes a b) (Knows a b))",
			"~[(Likes a b) ~[(Knows a b)]] ~[(Knows a b) ~[(Likes a b)]]",
		},
		{
			"iff relabels each side",
			"(iff (exists (x) (Cat x)) (Happy a))",
			"~[[Cat: *x] ~[[Happy: a]]] ~[[Happy: a] ~[[Cat: *x2]]]",
		},
		{
			"universal before other items",
			"(forall (x) (if (Cat x) (Animal x)))\n(Sunny Today)",
			"~[~[[Cat: @every *x] [Animal: ?x]]] [Sunny: Today]",
		},
		{"reused variable name", "(exists (x) (P x))\n(exists (x) (Q x))", "[P: *x] [Q: *x2]"},
		{"constants", "(Loves John Mary)", "(Loves John Mary)"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := translate.ToCGIF(parseCL(t, tt.src))
			if !res.Success {
				t.Fatalf("translate failed: %v", res.Errors)
			}
			if res.Text != tt.want {
				t.Errorf("got  %s\nwant %s", res.Text, tt.want)
			}
			// результат должен снова разбираться как CGIF
			if got := ast.FormatCGIF(parseCGIF(t, res.Text)); got != res.Text {
				t.Errorf("reparsed %q as %q", res.Text, got)
			}
		})
	}
}

func TestToCGIFErrors(t *testing.T) {
	tests := []struct {
		name string
		tree ast.Node
		code diag.Code
	}{
		{"equation", parseCL(t, "(exists (x y) (= x y))"), diag.UnsEquation},
		{"CGIF concept", parseCGIF(t, "[Cat: *x]"), diag.UnsNotation},
		{
			"if with one operand",
			&ast.Expression{Items: []ast.Node{&ast.Connective{Op: ast.If, Operands: []ast.Node{&ast.Relation{Name: "P"}}}}},
			diag.SemMissingChild,
		},
		{
			"quantifier without variables",
			&ast.Expression{Items: []ast.Node{&ast.Quantifier{Body: &ast.Relation{Name: "P"}}}},
			diag.SemMissingChild,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := translate.ToCGIF(tt.tree)
			if res.Success || res.Tree != nil {
				t.Fatalf("expected failure without tree, got %q", res.Text)
			}
			if res.Errors[0].Code != tt.code {
				t.Errorf("code = %s, want %s", res.Errors[0].Code.ID(), tt.code.ID())
			}
		})
	}
}

// alphaCL renders a CL tree with variables renamed v1, v2... in binding
// order, so trees that differ only in generated names compare equal.
func alphaCL(tree ast.Node) string {
	names := make(map[string]string)
	ast.Walk(tree, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.Quantifier:
			for i, v := range x.Vars {
				if _, ok := names[v.Name]; !ok {
					names[v.Name] = "v" + strconv.Itoa(len(names)+1)
				}
				x.Vars[i].Name = names[v.Name]
			}
		case *ast.Name:
			if v, ok := names[x.Text]; ok {
				x.Text = v
			}
		}
		return true
	})
	return ast.FormatCL(tree)
}

func TestRoundTripCGIFToCLToCGIF(t *testing.T) {
	tests := []struct {
		src  string
		cgif string // CGIF после обратного перевода
	}{
		{"[Person: *x] (Loves ?x ?x)", "[Person: *x1] (Loves ?x1 ?x1)"},
		{"[Person: @every *p] (Mortal ?p)", "[Person: @every *p1] [Mortal: ?p1]"},
		{"[Cat: *x] [Mat: *y] (On ?x ?y)", "[Cat: *x1] [Mat: *y1] (On ?x1 ?y1)"},
		{"[Cat] [Dog]", "[Cat: *x1] [Dog: *x2]"},
		{"[Person: John] (Loves John Mary)", "[Person: John] (Loves John Mary)"},
		{"[Person: *x] ~[[Cat: *c] (Owns ?x ?c)]", "[Person: *x1] ~[[Cat: *c1] (Owns ?x1 ?c1)]"},
		{"~[[Cat: *c] ~[(On ?c Mat)]]", "~[[Cat: *c1] ~[(On ?c1 Mat)]]"},
		{"(Sunny Today) [Person: *x] (Happy ?x)", "[Sunny: Today] [Person: *x1] [Happy: ?x1]"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			first := translate.Translate(parseCGIF(t, tt.src))
			if !first.Success {
				t.Fatalf("CGIF -> CL: %v", first.Errors)
			}
			back := translate.ToCGIF(first.Tree)
			if !back.Success {
				t.Fatalf("CL -> CGIF: %v", back.Errors)
			}
			if back.Text != tt.cgif {
				t.Errorf("CL -> CGIF = %s, want %s", back.Text, tt.cgif)
			}
			again := translate.Translate(parseCGIF(t, back.Text))
			if !again.Success {
				t.Fatalf("second CGIF -> CL: %v", again.Errors)
			}
			if a, b := alphaCL(first.Tree), alphaCL(again.Tree); a != b {
				t.Errorf("round trip changed meaning:\n%s\n%s", a, b)
			}
		})
	}
}
