package ast

import "cglogic/internal/diag"

// Result is the outcome of a parse or translation.
// Success is true iff Errors is empty. Tree may be a partial tree when
// Success is false; such a tree must not be treated as complete.
type Result struct {
	Success bool
	Tree    Node
	Errors  []diag.Diagnostic
	Text    string
}

// NewResult builds a Result, keeping the Success invariant.
func NewResult(tree Node, errs []diag.Diagnostic, text string) Result {
	return Result{
		Success: len(errs) == 0,
		Tree:    tree,
		Errors:  errs,
		Text:    text,
	}
}

// Failed builds an unsuccessful Result with no tree.
func Failed(errs ...diag.Diagnostic) Result {
	return Result{Errors: errs}
}
