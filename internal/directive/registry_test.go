package directive

import (
	"slices"
	"testing"

	"cglogic/internal/dialect"
	"cglogic/internal/lexer"
	"cglogic/internal/source"
)

func TestParseComment(t *testing.T) {
	tests := []struct {
		text      string
		namespace string
		codes     []string
		ok        bool
	}{
		{"/* expect: REF3002 */", NamespaceExpect, []string{"REF3002"}, true},
		{"/*expect:syn2002, ref3001*/", NamespaceExpect, []string{"SYN2002", "REF3001"}, true},
		{"; expect: SYN2003", NamespaceExpect, []string{"SYN2003"}, true},
		{";; clean", NamespaceClean, nil, true},
		{"/* clean: extra */", "", nil, false},
		{"/* expect: */", "", nil, false},
		{"; a regular comment", "", nil, false},
		{"/* note: something */", "", nil, false},
	}
	for _, tt := range tests {
		ns, codes, ok := ParseComment(tt.text)
		if ok != tt.ok || ns != tt.namespace || !slices.Equal(codes, tt.codes) {
			t.Errorf("ParseComment(%q) = %q, %v, %v; want %q, %v, %v", tt.text, ns, codes, ok, tt.namespace, tt.codes, tt.ok)
		}
	}
}

func TestRegistry_CollectFromTokens(t *testing.T) {
	fs := source.NewFileSet()
	src := "/* clean */\n[Cat: *x]\n(On ?x ?y) /* expect: REF3002 */\n/* just a note */ [Dog]"
	file := fs.Get(fs.AddVirtual("notes/a.cgif", []byte(src)))

	r := NewRegistry()
	r.CollectFromTokens(file, lexer.Tokenize(file, lexer.Options{Notation: dialect.CGIF}))

	if r.Len() != 2 {
		t.Fatalf("expected 2 scenarios, got %d: %+v", r.Len(), r.All())
	}
	expects := r.FilterByNamespace([]string{NamespaceExpect})
	if len(expects) != 1 {
		t.Fatalf("expected 1 expect scenario, got %d", len(expects))
	}
	s := expects[0]
	if s.Line != 3 || !slices.Equal(s.Codes, []string{"REF3002"}) || s.SourceFile != "notes/a.cgif" {
		t.Errorf("unexpected scenario %+v", s)
	}
	if got := s.Name(); got != "a.cgif#0" {
		t.Errorf("Name() = %q", got)
	}
	if all := r.FilterByNamespace(nil); len(all) != 2 {
		t.Errorf("empty filter returned %d scenarios", len(all))
	}
}

func TestRegistry_CollectCLComments(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("b.cl", []byte("; expect: SYN2003, SYN2011\n(P a")))

	r := NewRegistry()
	r.CollectFromTokens(file, lexer.Tokenize(file, lexer.Options{Notation: dialect.CL}))
	all := r.All()
	if len(all) != 1 || all[0].Line != 1 || len(all[0].Codes) != 2 {
		t.Fatalf("unexpected scenarios %+v", all)
	}
}
