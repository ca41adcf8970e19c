package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"cglogic/internal/ast"
)

// buildFoldingRanges folds every node that spans more than one line:
// top-level sentences, negations, contexts and quantifier bodies.
func buildFoldingRanges(doc *document) []protocol.FoldingRange {
	ranges := []protocol.FoldingRange{}
	if doc == nil || doc.parsed == nil || doc.parsed.Tree == nil {
		return ranges
	}
	file := doc.parsed.File
	seen := make(map[protocol.UInteger]bool)
	ast.Walk(doc.parsed.Tree, func(n ast.Node) bool {
		if n == ast.Node(doc.parsed.Tree) {
			return true
		}
		r := rangeForSpan(file, n.Span())
		// одна складка на стартовую строку: самая внешняя
		if r.End.Line > r.Start.Line && !seen[r.Start.Line] {
			seen[r.Start.Line] = true
			ranges = append(ranges, protocol.FoldingRange{
				StartLine: r.Start.Line,
				EndLine:   r.End.Line,
			})
		}
		return true
	})
	return ranges
}
