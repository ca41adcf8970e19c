package suggest

import (
	"slices"
	"testing"

	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/parser"
	"cglogic/internal/source"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"and", "and", 0},
		{"exsts", "exists", 1},
		{"forall", "fral", 2},
		{"é", "e", 1},
		{"", "iff", 3},
	}
	for _, tt := range tests {
		if got := distance(tt.a, tt.b); got != tt.want {
			t.Errorf("distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		word string
		want string
		ok   bool
	}{
		{"exsts", "exists", true},
		{"AND", "and", true},
		{"Forall", "forall", true},
		{"forrall", "forall", true},
		{"and", "", false},
		{"Person", "", false},
		{"x", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Keyword(tt.word)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Keyword(%q) = %q,%v want %q,%v", tt.word, got, ok, tt.want, tt.ok)
		}
	}
}

func TestQuoted(t *testing.T) {
	got := quoted("free variable 'x' near 'y' and 'unterminated")
	if !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("quoted = %v", got)
	}
}

// diagnose parses src and returns the first diagnostic.
func diagnose(t *testing.T, n dialect.Notation, src string) diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("s", []byte(src)))
	bag := diag.NewBag(0)
	parser.Parse(file, n, parser.Options{Reporter: diag.BagReporter{Bag: bag, File: file}})
	if bag.Len() == 0 {
		t.Fatalf("%q: expected a diagnostic", src)
	}
	return bag.Items()[0]
}

func TestForParsedErrors(t *testing.T) {
	tests := []struct {
		name     string
		notation dialect.Notation
		src      string
		want     string
	}{
		{"misspelled exists", dialect.CL, "(exsts (x) (P x))", "did you mean 'exists'?"},
		{"uppercase keyword", dialect.CL, "(AND (P a) (Q b))", "did you mean 'and'?"},
		{"free variable", dialect.CL, "(exists (x) (P x))\n(Q x)", "bind 'x' with (exists (x) ...) or (forall (x) ...)"},
		{"not arity", dialect.CL, "(not (P a) (Q b))", "write it as (not S)"},
		{"undefined label", dialect.CGIF, "(Loves ?z ?z)", "define the label first, for example [Thing: *z]"},
		{"duplicate label", dialect.CGIF, "[A: *x] [B: *x]", "use ?x to refer to the existing concept"},
		{"unclosed concept", dialect.CGIF, "[Cat: John", "add the missing ']'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := For(tt.notation, diagnose(t, tt.notation, tt.src))
			if !slices.Contains(got, tt.want) {
				t.Errorf("suggestions = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestForKeepsAttachedSuggestions(t *testing.T) {
	d := diag.New(diag.InpInvalidType, source.Span{}, "invalid expression type 'XML'").
		WithSuggestions("Use 'CGIF' or 'CL' as the expression type", "custom")
	got := For(dialect.Unknown, d)
	want := []string{"Use 'CGIF' or 'CL' as the expression type", "custom"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestForEquation(t *testing.T) {
	d := diag.New(diag.UnsEquation, source.Span{}, "equation (= ...) has no CGIF form")
	if got := For(dialect.CL, d); len(got) != 1 || got[0] != "state the identity as a relation, for example (Same a b)" {
		t.Errorf("got %q", got)
	}
}

func TestForWithoutAdvice(t *testing.T) {
	d := diag.New(diag.TooManyDiagnostics, source.Span{}, "too many")
	if got := For(dialect.CGIF, d); len(got) != 0 {
		t.Errorf("expected no suggestions, got %q", got)
	}
}
