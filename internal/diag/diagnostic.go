package diag

import (
	"cglogic/internal/source"
)

type Diagnostic struct {
	Severity    Severity
	Code        Code
	Message     string
	Primary     source.Span
	Pos         source.Position
	Suggestions []string
}

// Kind is a shortcut for d.Code.Kind().
func (d Diagnostic) Kind() Kind {
	return d.Code.Kind()
}

// WithSuggestions returns a copy of d carrying the given suggestions.
func (d Diagnostic) WithSuggestions(s ...string) Diagnostic {
	if len(s) == 0 {
		return d
	}
	d.Suggestions = append(append([]string(nil), d.Suggestions...), s...)
	return d
}

// New builds an error-severity diagnostic without a reporter,
// used by phases that own no Bag (facade input checks, tree-only passes).
func New(code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: SevError, Code: code, Message: msg, Primary: primary}
}
