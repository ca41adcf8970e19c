package lexer

import (
	"testing"

	"cglogic/internal/source"
)

func TestCursorPrefixAndSkip(t *testing.T) {
	fs := source.NewFileSet()
	c := NewCursor(fs.Get(fs.AddVirtual("c.cgif", []byte("/* a */@every"))))

	if !c.HasPrefix("/*") || c.HasPrefix("*/") {
		t.Fatal("HasPrefix mismatch at start")
	}
	m := c.Mark()
	c.Skip(7)
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 7 {
		t.Errorf("span = %v", sp)
	}
	if !c.HasPrefix("@every") || c.HasPrefix("@everyone") {
		t.Error("HasPrefix must not read past the end")
	}
	c.Skip(100)
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Error("Skip past the end must stop at EOF")
	}
	c.Reset(m)
	if c.Peek() != '/' {
		t.Errorf("Reset: Peek = %q", c.Peek())
	}
}
