package driver_test

import (
	"context"
	"slices"
	"strings"
	"testing"

	"cglogic/internal/ast"
	"cglogic/internal/diag"
	"cglogic/internal/driver"
)

func TestParseExpressionType(t *testing.T) {
	tests := []struct {
		text, typ string
		ok        bool
	}{
		{"[Cat]", "CGIF", true},
		{"[Cat]", "cgif", true},
		{"(P a)", "CL", true},
		{"(P a)", "cL", true},
		{"[Cat]", "XML", false},
		{"[Cat]", "", false},
	}
	for _, tt := range tests {
		res := driver.Parse(tt.text, tt.typ)
		if res.Success != tt.ok {
			t.Errorf("Parse(%q, %q).Success = %v, errors %v", tt.text, tt.typ, res.Success, res.Errors)
			continue
		}
		if tt.ok {
			continue
		}
		if len(res.Errors) != 1 || res.Errors[0].Code != diag.InpInvalidType {
			t.Fatalf("Parse(%q, %q): want one %s, got %v", tt.text, tt.typ, diag.InpInvalidType.ID(), res.Errors)
		}
		if res.Tree != nil {
			t.Errorf("invalid type must not produce a tree")
		}
		if len(res.Errors[0].Suggestions) == 0 {
			t.Errorf("invalid type error carries no suggestion")
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct{ text, typ string }{
		{"[Cat: *x] [Mat: *y] (On ?x ?y)", "CGIF"},
		{"~[[Dog: Rex] (Barks Rex)]", "CGIF"},
		{"(forall (x) (if (Cat x) (Animal x)))", "CL"},
		{"(exists (x y) (and (Cat x) (= x y)))", "CL"},
	}
	for _, tt := range tests {
		first := driver.Parse(tt.text, tt.typ)
		if !first.Success {
			t.Fatalf("Parse(%q): %v", tt.text, first.Errors)
		}
		if first.Text == "" {
			t.Fatalf("Parse(%q): empty canonical text", tt.text)
		}
		second := driver.Parse(first.Text, tt.typ)
		if !second.Success {
			t.Fatalf("reparse of %q: %v", first.Text, second.Errors)
		}
		if !ast.Equal(first.Tree, second.Tree) {
			t.Errorf("round trip changed the tree: %q -> %q", tt.text, first.Text)
		}
		if second.Text != first.Text {
			t.Errorf("canonical text is not stable: %q vs %q", first.Text, second.Text)
		}
	}
}

func TestParseErrorsHavePositions(t *testing.T) {
	res := driver.Parse("[Cat: *x]\n[Dog", "CGIF")
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Text != "" {
		t.Errorf("failed parse must not render text, got %q", res.Text)
	}
	for _, d := range res.Errors {
		if !d.Pos.IsValid() {
			t.Errorf("diagnostic %s has no position", d.Code.ID())
		}
	}
	if got := res.Errors[0].Pos.Line; got != 2 {
		t.Errorf("first error on line %d, want 2", got)
	}
}

func TestTranslateFacade(t *testing.T) {
	res := driver.Translate("[Person: *x] (Loves ?x ?x)")
	if !res.Success {
		t.Fatalf("Translate: %v", res.Errors)
	}
	if want := "(exists (x1) (and (Person x1) (Loves x1 x1)))"; res.Text != want {
		t.Errorf("Translate text = %q, want %q", res.Text, want)
	}

	bad := driver.Translate("[Cat")
	if bad.Success || bad.Tree != nil {
		t.Errorf("Translate of a broken input must fail without a tree: %+v", bad)
	}
	if len(bad.Errors) == 0 {
		t.Error("expected parse errors to be forwarded")
	}
}

func TestSuggestCorrections(t *testing.T) {
	res := driver.Parse("[Cat]", "prolog")
	hints := driver.SuggestCorrections(res.Errors[0], "prolog")
	if !slices.Contains(hints, "Use 'CGIF' or 'CL' as the expression type") {
		t.Errorf("hints = %v", hints)
	}

	res = driver.Parse("(P a", "CL")
	if res.Success {
		t.Fatal("expected failure")
	}
	if hints := driver.SuggestCorrections(res.Errors[0], "CL"); len(hints) == 0 {
		t.Errorf("no hints for %s", res.Errors[0].Code.ID())
	}
}

func TestParseKeepsEveryError(t *testing.T) {
	text := strings.Repeat("[Cat: |] ", diag.DefaultLimit+20)
	res := driver.Parse(text, "CGIF")
	if res.Success {
		t.Fatal("expected errors")
	}
	if len(res.Errors) != diag.DefaultLimit+20 {
		t.Errorf("got %d errors, want %d", len(res.Errors), diag.DefaultLimit+20)
	}
	for _, d := range res.Errors {
		if d.Kind() == diag.KindLimit {
			t.Fatalf("facade result carries a limit note: %s", d.Message)
		}
	}
}

func TestCheckSourceLimitLeavesNote(t *testing.T) {
	src := "[Cat: |] [Cat: |] [Cat: |] [Cat: |] (Loves ?z)"
	_, rep := driver.CheckSource(context.Background(), "limit.cgif", []byte(src), driver.Options{MaxDiagnostics: 2})
	if len(rep.Diagnostics) != 3 {
		t.Fatalf("got %d diagnostics, want 2 errors and a note: %v", len(rep.Diagnostics), rep.Diagnostics)
	}
	for _, d := range rep.Diagnostics[:2] {
		if d.Code != diag.SynBadReferent {
			t.Errorf("unexpected %s before the note", d.Code.ID())
		}
	}
	if last := rep.Diagnostics[2]; last.Code != diag.TooManyDiagnostics {
		t.Errorf("last diagnostic = %s, want %s", last.Code.ID(), diag.TooManyDiagnostics.ID())
	}
	if !rep.Failed() {
		t.Error("report with errors must fail")
	}
}
