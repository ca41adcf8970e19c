package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"cglogic/internal/ast"
	"cglogic/internal/source"
	"cglogic/internal/token"
)

// CheckTokenCoverage checks that tokens and their leading trivia tile the
// file content: no gaps, no overlaps, token text equal to its span, and a
// final EOF at the end of the content.
func CheckTokenCoverage(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		return fmt.Errorf("token stream does not end with EOF")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var off uint32
	for i, tok := range tokens {
		for _, tr := range tok.Leading {
			if tr.Span.Start != off {
				return fmt.Errorf("gap before %v trivia at %d (expected %d)", tr.Kind, tr.Span.Start, off)
			}
			off = tr.Span.End
		}
		if tok.Span.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, tok.Span.File, sf.ID)
		}
		if tok.Span.Start != off {
			return fmt.Errorf("gap before %v at %d (expected %d)", tok.Kind, tok.Span.Start, off)
		}
		if tok.Span.End > lenContent || tok.Text != string(sf.Content[tok.Span.Start:tok.Span.End]) {
			return fmt.Errorf("token %d text %q does not match span %v", i, tok.Text, tok.Span)
		}
		off = tok.Span.End
	}
	if off != lenContent {
		return fmt.Errorf("coverage ends at %d, want %d", off, lenContent)
	}
	return nil
}

// CheckTreeSpans runs the span invariants on a parsed tree:
// 1) every span belongs to sf and lies within its content
// 2) every child span lies inside its parent span
// 3) Pos is the resolved start of the span
// Only Expression may have an empty span (empty input).
func CheckTreeSpans(root ast.Node, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if ast.IsNil(root) {
		return nil
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkNode(root, sf, lenContent)
}

func checkNode(n ast.Node, sf *source.File, lenContent uint32) error {
	sp := n.Span()
	if sp.File != sf.ID {
		return fmt.Errorf("%v span file mismatch: got=%d want=%d", n.Kind(), sp.File, sf.ID)
	}
	if sp.End < sp.Start || sp.End > lenContent {
		return fmt.Errorf("%v span %v outside content [0,%d)", n.Kind(), sp, lenContent)
	}
	if sp.Empty() && n.Kind() != ast.KindExpression {
		return fmt.Errorf("empty %v span: %v", n.Kind(), sp)
	}
	if want := sf.Position(sp.Start); n.Pos() != want {
		return fmt.Errorf("%v at %v has Pos %v, want %v", n.Kind(), sp, n.Pos(), want)
	}
	for _, c := range n.Children() {
		if ast.IsNil(c) {
			continue
		}
		if !sp.Contains(c.Span()) {
			return fmt.Errorf("%v span %v is outside parent %v span %v", c.Kind(), c.Span(), n.Kind(), sp)
		}
		if err := checkNode(c, sf, lenContent); err != nil {
			return err
		}
	}
	return nil
}
