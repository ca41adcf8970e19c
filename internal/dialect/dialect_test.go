package dialect

import "testing"

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in   string
		want Notation
		ok   bool
	}{
		{"CGIF", CGIF, true},
		{"cgif", CGIF, true},
		{"CL", CL, true},
		{" clif ", CL, true},
		{"KIF", Unknown, false},
		{"", Unknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseNotation(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseNotation(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Notation{
		"a/b/graph.cgif": CGIF,
		"x.CG":           CGIF,
		"theory.clif":    CL,
		"t.cl":           CL,
		"notes.txt":      Unknown,
	}
	for path, want := range tests {
		if got := FromPath(path); got != want {
			t.Errorf("FromPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		src  string
		want Notation
	}{
		{"[Person: *x](Loves ?x ?x)", CGIF},
		{"[Cat: @every]", CGIF},
		{"(exists (x) (and (Person x) (Loves x x)))", CL},
		{"; comment\n(forall (y) (P y))", CL},
		{"(Loves John Mary)", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		if got := Detect([]byte(tt.src)).Notation; got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestResolvePrecedence(t *testing.T) {
	cl := []byte("(exists (x) (P x))")
	if got := Resolve(CGIF, "f.clif", cl); got != CGIF {
		t.Errorf("explicit notation must win, got %v", got)
	}
	if got := Resolve(Unknown, "f.cgif", cl); got != CGIF {
		t.Errorf("extension must beat sniffing, got %v", got)
	}
	if got := Resolve(Unknown, "-", cl); got != CL {
		t.Errorf("sniffing fallback failed, got %v", got)
	}
}
