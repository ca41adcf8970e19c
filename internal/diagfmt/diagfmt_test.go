package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/lexer"
	"cglogic/internal/parser"
	"cglogic/internal/source"
)

func parseInto(t *testing.T, fs *source.FileSet, path string, n dialect.Notation, src string) (*ast.Expression, *diag.Bag) {
	t.Helper()
	file := fs.Get(fs.AddVirtual(path, []byte(src)))
	bag := diag.NewBag(0)
	res := parser.Parse(file, n, parser.Options{Reporter: diag.BagReporter{Bag: bag, File: file}})
	return res.Tree, bag
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/home/user/project")
	_, bag := parseInto(t, fs, "/home/user/project/src/test.cgif", dialect.CGIF, "[Cat: John")
	if bag.Len() == 0 {
		t.Fatal("expected a diagnostic")
	}

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.cgif:1:"},
		{"relative", PathModeRelative, "src/test.cgif:1:"},
		{"basename", PathModeBasename, "test.cgif:1:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			out := buf.String()
			if !strings.Contains(out, tt.contains) {
				t.Errorf("expected %q in:\n%s", tt.contains, out)
			}
			if !strings.Contains(out, "ERROR SYN2002") {
				t.Errorf("expected severity and code in:\n%s", out)
			}
		})
	}
}

func TestPrettyCaretUnderWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	// «猫» занимает две колонки терминала
	_, bag := parseInto(t, fs, "w.cgif", dialect.CGIF, "[猫: *x] (Sees ?y)")
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSuggestions: true})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	// "[猫: *x] (Sees " шириной 15 колонок, метка ?y шириной 2
	if want := "  |" + strings.Repeat(" ", 16) + "^~"; lines[2] != want {
		t.Errorf("caret line = %q, want %q", lines[2], want)
	}
}

func TestPrettySuggestionsAndContext(t *testing.T) {
	fs := source.NewFileSet()
	_, bag := parseInto(t, fs, "c.cl", dialect.CL, "(P a)\n(Q b)\n(not (R c) (S d))")
	items := bag.Items()
	items[0] = items[0].WithSuggestions("write it as (not S)")

	var buf bytes.Buffer
	PrettyList(&buf, items, fs, PrettyOpts{Context: 1, ShowSuggestions: true})
	out := buf.String()
	for _, want := range []string{"2 | (Q b)", "3 | (not (R c) (S d))", "help: write it as (not S)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "1 | (P a)") {
		t.Errorf("context must be limited to one line:\n%s", out)
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	_, bag := parseInto(t, fs, "j.cgif", dialect.CGIF, "(Loves ?z ?z)")
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("count = %d, want 1 (Max)", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "REF3002" || d.Kind != "Reference" || d.Location.StartLine != 1 || d.Location.StartCol != 8 {
		t.Errorf("unexpected diagnostic %+v", d)
	}
}

func TestTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.cl", []byte("(P x)")))
	toks := lexer.Tokenize(file, lexer.Options{Notation: dialect.CL})
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 tokens, got:\n%s", buf.String())
	}
	if !strings.Contains(lines[1], `Ident`) || !strings.Contains(lines[1], `"P"`) || !strings.Contains(lines[1], "at 1:2-1:3") {
		t.Errorf("unexpected line %q", lines[1])
	}
}

func TestTreePretty(t *testing.T) {
	fs := source.NewFileSet()
	tree, _ := parseInto(t, fs, "p.cgif", dialect.CGIF, "[Person: *x] ~[(Sad ?x)]")
	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, tree); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Expression (1:1)",
		"├─ Concept Person *x (1:1)",
		"└─ Negation (1:14)",
		"   └─ Expression (1:16)",
		"      └─ Relation Sad (1:16)",
		"         └─ Coreference ?x (1:21)",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeJSON(t *testing.T) {
	fs := source.NewFileSet()
	tree, _ := parseInto(t, fs, "q.cl", dialect.CL, "(forall ((x Person)) (Mortal x))")
	var buf bytes.Buffer
	if err := FormatTreeJSON(&buf, tree); err != nil {
		t.Fatal(err)
	}
	var out NodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	q := out.Children[0]
	if q.Type != "Quantifier" || q.Fields["quantifier"] != "forall" {
		t.Errorf("unexpected node %+v", q)
	}
}
