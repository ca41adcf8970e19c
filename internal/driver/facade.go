package driver

import (
	"fmt"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/parser"
	"cglogic/internal/source"
	"cglogic/internal/suggest"
	"cglogic/internal/translate"
)

// InputName is the path shown for text passed to the facade functions.
const InputName = "<input>"

const invalidTypeHint = "Use 'CGIF' or 'CL' as the expression type"

// Parse разбирает text в нотации, заданной именем expressionType
// ("CGIF" или "CL", регистр не важен). При неверном имени возвращается
// одна ошибка InpInvalidType и дерева нет.
func Parse(text, expressionType string) ast.Result {
	n, ok := dialect.ParseNotation(expressionType)
	if !ok {
		d := diag.New(diag.InpInvalidType, source.Span{},
			fmt.Sprintf("invalid expression type %q", expressionType)).WithSuggestions(invalidTypeHint)
		d.Pos = source.Position{Line: 1, Column: 1}
		return ast.Failed(d)
	}
	return ParseText(text, n)
}

// ParseText parses text in notation n. On success Text holds the
// canonical rendering of the tree; on failure Tree may be partial.
func ParseText(text string, n dialect.Notation) ast.Result {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(InputName, []byte(text)))
	tree, bag := parseFile(file, n, diag.NoLimit)
	if bag.Len() > 0 {
		return ast.NewResult(tree, bag.Items(), "")
	}
	return ast.NewResult(tree, nil, render(n, tree))
}

// Translate parses text as CGIF and translates it to CL. Parse errors are
// returned as is, without a tree.
func Translate(text string) ast.Result {
	parsed := ParseText(text, dialect.CGIF)
	if !parsed.Success {
		return ast.Failed(parsed.Errors...)
	}
	return translate.Translate(parsed.Tree)
}

// SuggestCorrections returns advisory hints for d. expressionType selects
// notation-specific advice; an unknown type yields the common hints only.
func SuggestCorrections(d diag.Diagnostic, expressionType string) []string {
	n, _ := dialect.ParseNotation(expressionType)
	return suggest.For(n, d)
}

// parseFile разбирает file целиком; лимит держит только bag, который
// при переполнении оставляет заметку TooManyDiagnostics.
func parseFile(file *source.File, n dialect.Notation, maxDiagnostics int) (*ast.Expression, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag, File: file})
	res := parser.Parse(file, n, parser.Options{Reporter: reporter})
	bag.Sort()
	return res.Tree, bag
}

func render(n dialect.Notation, tree ast.Node) string {
	if n == dialect.CL {
		return ast.FormatCL(tree)
	}
	return ast.FormatCGIF(tree)
}
