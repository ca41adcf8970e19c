package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"cglogic/internal/source"
)

func TestUTF16Positions(t *testing.T) {
	// 🙂: две UTF-16 единицы и четыре байта; é: одна единица и два байта
	text := "[é: *x]\n(R 🙂 ?x)"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("u.cgif", []byte(text)))

	tests := []struct {
		off uint32
		pos protocol.Position
	}{
		{0, protocol.Position{Line: 0, Character: 0}},
		{3, protocol.Position{Line: 0, Character: 2}},
		{9, protocol.Position{Line: 1, Character: 0}},
		{12, protocol.Position{Line: 1, Character: 3}},
		{16, protocol.Position{Line: 1, Character: 5}},
	}
	for _, tt := range tests {
		if got := positionForOffset(file, tt.off); got != tt.pos {
			t.Errorf("positionForOffset(%d) = %+v, want %+v", tt.off, got, tt.pos)
		}
		if got := offsetForPosition(file, tt.pos); got != tt.off {
			t.Errorf("offsetForPosition(%+v) = %d, want %d", tt.pos, got, tt.off)
		}
	}

	// за концом строки: конец строки
	if got := offsetForPosition(file, protocol.Position{Line: 0, Character: 99}); got != 8 {
		t.Errorf("clamped offset = %d, want 8", got)
	}
}

func TestApplyChanges(t *testing.T) {
	tests := []struct {
		text    string
		changes []any
		want    string
	}{
		{"[Cat]", []any{protocol.TextDocumentContentChangeEventWhole{Text: "[Dog]"}}, "[Dog]"},
		{"[Cat]", []any{protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{Start: protocol.Position{Line: 0, Character: 1}, End: protocol.Position{Line: 0, Character: 4}},
			Text:  "Dog",
		}}, "[Dog]"},
		{"[A]\n[🙂B]", []any{protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{Start: protocol.Position{Line: 1, Character: 3}, End: protocol.Position{Line: 1, Character: 4}},
			Text:  "C",
		}}, "[A]\n[🙂C]"},
	}
	for _, tt := range tests {
		if got := applyChanges(tt.text, tt.changes); got != tt.want {
			t.Errorf("applyChanges(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestURIToPath(t *testing.T) {
	if got := uriToPath("file:///tmp/a%20b.cgif"); got != "/tmp/a b.cgif" {
		t.Errorf("uriToPath = %q", got)
	}
	if got := uriToPath("untitled:Untitled-1"); got != "untitled:Untitled-1" {
		t.Errorf("non-file URI changed: %q", got)
	}
}
