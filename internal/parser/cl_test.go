package parser_test

import (
	"strings"
	"testing"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
)

func TestCLWellFormed(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(Loves John Mary)", "(Loves John Mary)"},
		{"(exists (x1) (and (Person x1) (Loves x1 x1)))", "(exists (x1) (and (Person x1) (Loves x1 x1)))"},
		{"(forall (x) (if (Man x) (Mortal x)))", "(forall (x) (if (Man x) (Mortal x)))"},
		{"(forall ((x Person) y) (iff (P x) (Q y)))", "(forall ((x Person) y) (iff (P x) (Q y)))"},
		{"(not (= a b))", "(not (= a b))"},
		{"(or (P a))", "(or (P a))"},
		{"(Rains)", "(Rains)"},
		{"; header\n(P a)\n(Q b) ; trailing", "(P a)\n(Q b)"},
		{"(exists (x) (exists (y) (R x y)))", "(exists (x) (exists (y) (R x y)))"},
	}
	for _, tt := range tests {
		tree := parseOK(t, dialect.CL, tt.src)
		if got := ast.FormatCL(tree); got != tt.want {
			t.Errorf("%q: formatted %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestCLTreeShape(t *testing.T) {
	tree := parseOK(t, dialect.CL, "(exists ((x Person)) (and (Happy x) (= x Bob)))")
	q, ok := tree.Items[0].(*ast.Quantifier)
	if !ok || q.Quant != ast.Exists {
		t.Fatalf("expected exists quantifier, got %T", tree.Items[0])
	}
	if len(q.Vars) != 1 || q.Vars[0] != (ast.Var{Name: "x", Type: "Person"}) {
		t.Errorf("unexpected vars %+v", q.Vars)
	}
	conj := q.Body.(*ast.Connective)
	if conj.Op != ast.And || len(conj.Operands) != 2 {
		t.Fatalf("unexpected body %+v", conj)
	}
	eq := conj.Operands[1].(*ast.Equation)
	if eq.Left.(*ast.Name).Text != "x" || eq.Right.(*ast.Name).Text != "Bob" {
		t.Errorf("unexpected equation %s", ast.FormatCL(eq))
	}
}

func TestCLFreeVariables(t *testing.T) {
	tests := []struct {
		src   string
		frees int
	}{
		{"(P a b)", 0},
		{"(forall (x) (P x))", 0},
		{"(forall (x) (P x)) (Q x)", 1},
		{"(Q x) (exists (x) (P x))", 1},
		{"(and (exists (x) (P x)) (R x x))", 2},
		{"(exists (x) (forall (y) (R x y)))", 0},
	}
	for _, tt := range tests {
		_, bag := parse(t, dialect.CL, tt.src)
		got := 0
		for _, d := range bag.Items() {
			if d.Code == diag.RefFreeVariable {
				got++
			}
		}
		if got != tt.frees || bag.Len() != tt.frees {
			t.Errorf("%q: %d free-variable errors, want %d (%s)", tt.src, got, tt.frees, diagnosticsSummary(bag))
		}
	}
}

func TestCLArity(t *testing.T) {
	tests := []string{
		"(not (P a) (Q b))",
		"(not)",
		"(if (P a))",
		"(iff (P a) (Q b) (R c))",
		"(and)",
		"(= a)",
		"(= a b c)",
		"(exists (x) (P x) (Q x))",
	}
	for _, src := range tests {
		res, bag := parse(t, dialect.CL, src)
		if res.Errors == 0 || !hasCode(bag, diag.SynBadArity) && !hasCode(bag, diag.SynExpectSentence) {
			t.Errorf("%q: expected arity error, got %s", src, diagnosticsSummary(bag))
		}
	}
}

func TestCLSyntaxErrors(t *testing.T) {
	tests := []struct {
		src    string
		code   diag.Code
		maxCol uint32
	}{
		{"(P a", diag.SynExpectRParen, 5},
		{"(P a))", diag.SynUnexpectedToken, 6},
		{"P", diag.SynUnexpectedToken, 1},
		{"()", diag.SynExpectSentence, 2},
		{"((P a))", diag.SynExpectIdentifier, 2},
		{"(exists x (P x))", diag.SynExpectVarList, 9},
		{"(exists () (P a))", diag.SynEmptyVarList, 9},
		{"(P (f x))", diag.SynUnexpectedToken, 4},
		{"(and P Q)", diag.SynExpectSentence, 6},
		{"(P and)", diag.SynUnexpectedToken, 4},
		{"(forall ((x)) (P x))", diag.SynExpectIdentifier, 12},
	}
	for _, tt := range tests {
		res, bag := parse(t, dialect.CL, tt.src)
		if res.Errors == 0 {
			t.Errorf("%q: expected errors", tt.src)
			continue
		}
		if !hasCode(bag, tt.code) {
			t.Errorf("%q: expected %s, got %s", tt.src, tt.code.ID(), diagnosticsSummary(bag))
			continue
		}
		first := bag.Items()[0]
		if first.Pos.Column > tt.maxCol {
			t.Errorf("%q: first diagnostic %s at %v", tt.src, first.Code.ID(), first.Pos)
		}
	}
}

func TestCLRecoveryScopedToSentence(t *testing.T) {
	res, bag := parse(t, dialect.CL, "(P (f x)) (Q a) (and (R b) ((bad))) (S c)")
	if countKind(bag, diag.KindSyntax) != 2 {
		t.Fatalf("expected 2 syntax errors, got %s", diagnosticsSummary(bag))
	}
	if got := ast.FormatCL(res.Tree); got != "(Q a)\n(and (R b))\n(S c)" {
		t.Errorf("recovered tree = %q", got)
	}
}

func TestCLUppercaseKeywordsAreNames(t *testing.T) {
	// ключевые слова только в нижнем регистре: (AND ...): обычный предикат
	tree := parseOK(t, dialect.CL, "(AND a b)")
	if rel, ok := tree.Items[0].(*ast.Relation); !ok || rel.Name != "AND" {
		t.Errorf("expected relation AND, got %s", ast.FormatCL(tree))
	}
}

func TestCLUppercaseConnectiveNamesKeyword(t *testing.T) {
	_, bag := parse(t, dialect.CL, "(AND (P a) (Q b))")
	if bag.Len() != 1 {
		t.Fatalf("expected one error, got %s", diagnosticsSummary(bag))
	}
	d := bag.Items()[0]
	if d.Code != diag.SynUnexpectedToken {
		t.Errorf("code = %s", d.Code.ID())
	}
	if !strings.Contains(d.Message, "use 'and'") || strings.Contains(d.Message, "function terms") {
		t.Errorf("message does not point at the keyword: %q", d.Message)
	}

	// обычный предикат с вложенным термом: прежнее сообщение
	_, bag = parse(t, dialect.CL, "(Likes (f a))")
	if bag.Len() != 1 || !strings.Contains(bag.Items()[0].Message, "function terms") {
		t.Errorf("unexpected diagnostics %s", diagnosticsSummary(bag))
	}
}
