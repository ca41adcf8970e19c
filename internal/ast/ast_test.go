package ast_test

import (
	"testing"

	"cglogic/internal/ast"
	"cglogic/internal/source"
)

func loc(start, end uint32) ast.Base {
	return ast.At(source.Span{Start: start, End: end}, source.Position{Line: 1, Column: start + 1, Offset: start})
}

func lovesGraph() *ast.Expression {
	return &ast.Expression{
		Base: loc(0, 25),
		Items: []ast.Node{
			&ast.Concept{Base: loc(0, 12), Type: "Person", Referent: ast.Referent{Kind: ast.ReferentDefining, Name: "x"}},
			&ast.Relation{Base: loc(12, 25), Name: "Loves", Args: []ast.Node{
				&ast.Coreference{Base: loc(19, 21), Label: "x"},
				&ast.Coreference{Base: loc(22, 24), Label: "x"},
			}},
		},
	}
}

func TestFormatCGIF(t *testing.T) {
	tests := []struct {
		node ast.Node
		want string
	}{
		{lovesGraph(), "[Person: *x] (Loves ?x ?x)"},
		{&ast.Concept{Type: "Cat"}, "[Cat]"},
		{&ast.Concept{Referent: ast.Referent{Kind: ast.ReferentDefining, Name: "y"}}, "[: *y]"},
		{&ast.Concept{Type: "Person", Universal: true}, "[Person: @every]"},
		{&ast.Concept{Type: "Person", Universal: true, Referent: ast.Referent{Kind: ast.ReferentDefining, Name: "p"}}, "[Person: @every *p]"},
		{&ast.Concept{Type: "Person", Referent: ast.Referent{Kind: ast.ReferentConstant, Name: "John"}}, "[Person: John]"},
		{&ast.Negation{Body: &ast.Expression{Items: []ast.Node{&ast.Concept{Type: "Cat"}}}}, "~[[Cat]]"},
		{&ast.Function{Name: "Plus", Inputs: []ast.Node{&ast.Name{Text: "1"}}, Outputs: []ast.Node{&ast.Coreference{Label: "s", Defining: true}}}, "(Plus 1 | *s)"},
		{&ast.Context{Type: "Situation", Body: &ast.Expression{Items: []ast.Node{&ast.Concept{Type: "Cat"}}}}, "[Situation: [Cat]]"},
	}
	for _, tt := range tests {
		if got := ast.FormatCGIF(tt.node); got != tt.want {
			t.Errorf("FormatCGIF = %q, want %q", got, tt.want)
		}
	}
}

func TestFormatCL(t *testing.T) {
	x1 := func() ast.Node { return &ast.Name{Text: "x1"} }
	tree := &ast.Quantifier{
		Quant: ast.Exists,
		Vars:  []ast.Var{{Name: "x1"}},
		Body: &ast.Connective{Op: ast.And, Operands: []ast.Node{
			&ast.Relation{Name: "Person", Args: []ast.Node{x1()}},
			&ast.Relation{Name: "Loves", Args: []ast.Node{x1(), x1()}},
		}},
	}
	if got, want := ast.FormatCL(tree), "(exists (x1) (and (Person x1) (Loves x1 x1)))"; got != want {
		t.Errorf("FormatCL = %q, want %q", got, want)
	}

	typed := &ast.Quantifier{
		Quant: ast.Forall,
		Vars:  []ast.Var{{Name: "x", Type: "Person"}, {Name: "y"}},
		Body: &ast.Negation{Body: &ast.Equation{
			Left:  &ast.Name{Text: "x"},
			Right: &ast.Name{Text: "y"},
		}},
	}
	if got, want := ast.FormatCL(typed), "(forall ((x Person) y) (not (= x y)))"; got != want {
		t.Errorf("FormatCL = %q, want %q", got, want)
	}

	doc := &ast.Expression{Items: []ast.Node{
		&ast.Relation{Name: "P", Args: []ast.Node{&ast.Name{Text: "a"}}},
		&ast.Connective{Op: ast.Iff, Operands: []ast.Node{
			&ast.Relation{Name: "Q"},
			&ast.Relation{Name: "R"},
		}},
	}}
	if got, want := ast.FormatCL(doc), "(P a)\n(iff (Q) (R))"; got != want {
		t.Errorf("FormatCL = %q, want %q", got, want)
	}
}

func TestEqualIgnoresPositions(t *testing.T) {
	a := lovesGraph()
	b := lovesGraph()
	b.Items[0].(*ast.Concept).Base = loc(40, 50)
	if !ast.Equal(a, b) {
		t.Fatal("trees differing only in positions must be equal")
	}
	b.Items[1].(*ast.Relation).Args[1].(*ast.Coreference).Label = "y"
	if ast.Equal(a, b) {
		t.Fatal("trees with different labels must differ")
	}
	if ast.Equal(a, nil) || !ast.Equal(nil, nil) {
		t.Fatal("nil handling is wrong")
	}
	var typedNil *ast.Expression
	if !ast.Equal(typedNil, nil) {
		t.Fatal("typed nil must equal nil")
	}
}

func TestWalkPreOrder(t *testing.T) {
	var kinds []ast.Kind
	ast.Walk(lovesGraph(), func(n ast.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	want := []ast.Kind{ast.KindExpression, ast.KindConcept, ast.KindRelation, ast.KindCoreference, ast.KindCoreference}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("node %d: %v, want %v", i, kinds[i], want[i])
		}
	}

	// пропуск поддерева
	n := 0
	ast.Walk(lovesGraph(), func(node ast.Node) bool {
		n++
		return node.Kind() != ast.KindRelation
	})
	if n != 3 {
		t.Errorf("expected 3 visits when relation children are skipped, got %d", n)
	}
	if ast.Count(lovesGraph()) != 5 {
		t.Errorf("Count = %d", ast.Count(lovesGraph()))
	}
}

func TestConceptBinds(t *testing.T) {
	tests := []struct {
		c    ast.Concept
		want bool
	}{
		{ast.Concept{Type: "Cat"}, true},
		{ast.Concept{Referent: ast.Referent{Kind: ast.ReferentDefining, Name: "x"}}, true},
		{ast.Concept{Type: "P", Universal: true}, true},
		{ast.Concept{Type: "P", Referent: ast.Referent{Kind: ast.ReferentBound, Name: "x"}}, false},
		{ast.Concept{Type: "P", Referent: ast.Referent{Kind: ast.ReferentConstant, Name: "John"}}, false},
	}
	for _, tt := range tests {
		if got := tt.c.Binds(); got != tt.want {
			t.Errorf("%s Binds() = %v, want %v", ast.FormatCGIF(&tt.c), got, tt.want)
		}
	}
}

func TestResultInvariant(t *testing.T) {
	r := ast.NewResult(lovesGraph(), nil, "x")
	if !r.Success {
		t.Error("result without errors must succeed")
	}
}
