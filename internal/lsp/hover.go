package lsp

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
)

// nodeAt returns the innermost non-root node whose span contains offset.
func nodeAt(root ast.Node, offset uint32) ast.Node {
	var best ast.Node
	ast.Walk(root, func(n ast.Node) bool {
		if n == root {
			return true
		}
		sp := n.Span()
		if offset < sp.Start || offset >= sp.End {
			return false
		}
		if best == nil || sp.Len() <= best.Span().Len() {
			best = n
		}
		return true
	})
	return best
}

// buildHover показывает вид узла и его каноническую запись; для CGIF
// без ошибок добавляет перевод всего документа в CL.
func buildHover(doc *document, pos protocol.Position) *protocol.Hover {
	if doc == nil || doc.parsed == nil || doc.parsed.Tree == nil {
		return nil
	}
	file := doc.parsed.File
	n := nodeAt(doc.parsed.Tree, offsetForPosition(file, pos))
	if n == nil {
		return nil
	}

	lang, text := "cgif", ast.FormatCGIF(n)
	if doc.parsed.Notation == dialect.CL {
		lang, text = "clif", ast.FormatCL(n)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** at %s\n\n```%s\n%s\n```", n.Kind(), n.Pos(), lang, text)
	if doc.report.Translation != "" {
		fmt.Fprintf(&b, "\n\nCL:\n\n```clif\n%s\n```", doc.report.Translation)
	}

	rng := rangeForSpan(file, n.Span())
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: b.String()},
		Range:    &rng,
	}
}
