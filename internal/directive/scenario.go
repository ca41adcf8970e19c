package directive

import (
	"fmt"
	"path/filepath"
	"strings"

	"cglogic/internal/source"
)

// Namespaces understood by the runner.
const (
	// NamespaceExpect lists codes that must be reported on the directive's line.
	NamespaceExpect = "expect"
	// NamespaceClean requires the file to have no errors at all.
	NamespaceClean = "clean"
)

// Scenario is one directive comment in a source file:
//
//	[Cat: *x] (On ?x ?y) /* expect: REF3002 */
//	(forall (x) (P x) ; expect: SYN2003
type Scenario struct {
	// Namespace is the directive name before the colon.
	Namespace string

	// Index is the sequential number of this scenario per file and namespace.
	Index int

	// SourceFile is the normalized path of the file containing the directive.
	SourceFile string

	// Span is the source location of the comment.
	Span source.Span

	// Line is the 1-based line the directive applies to.
	Line uint32

	// Codes are diagnostic IDs such as "REF3002"; empty for clean.
	Codes []string
}

// Name returns a short "file#index" label.
func (s *Scenario) Name() string {
	return fmt.Sprintf("%s#%d", filepath.Base(s.SourceFile), s.Index)
}

// ParseComment extracts a directive from comment text. Both "/* ... */"
// and "; ..." forms are accepted; comments that are not directives yield ok=false.
func ParseComment(text string) (namespace string, codes []string, ok bool) {
	body := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(body, "/*"):
		body = strings.TrimSuffix(strings.TrimPrefix(body, "/*"), "*/")
	case strings.HasPrefix(body, ";"):
		body = strings.TrimLeft(body, ";")
	default:
		return "", nil, false
	}
	head, rest, found := strings.Cut(strings.TrimSpace(body), ":")
	if !found {
		// "clean" допускается без двоеточия
		head, rest = strings.TrimSpace(body), ""
	}
	namespace = strings.ToLower(strings.TrimSpace(head))
	switch namespace {
	case NamespaceExpect:
		codes = splitCodes(rest)
		if len(codes) == 0 {
			return "", nil, false
		}
	case NamespaceClean:
		if strings.TrimSpace(rest) != "" {
			return "", nil, false
		}
	default:
		return "", nil, false
	}
	return namespace, codes, true
}

func splitCodes(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	for i, f := range fields {
		fields[i] = strings.ToUpper(f)
	}
	return fields
}
