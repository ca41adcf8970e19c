// Package validate runs semantic checks over a parsed or hand-built tree.
// It never changes the tree and never fails: findings are diagnostics.
package validate

import (
	"strconv"

	"cglogic/internal/ast"
	"cglogic/internal/diag"
	"cglogic/internal/source"
)

// Options configure a validation pass.
type Options struct {
	Reporter diag.Reporter
}

// Result summarises one pass. Diagnostics are in document order and carry
// the node positions.
type Result struct {
	Diagnostics []diag.Diagnostic
	Visited     int
}

// Check walks tree and reports semantic problems through opts.Reporter.
func Check(tree ast.Node, opts Options) Result {
	v := validator{
		reporter: opts.Reporter,
		arity:    make(map[string]use),
	}
	v.visit(tree)
	return v.res
}

// Validate is the collecting form of Check: diagnostics come back in
// document order.
func Validate(tree ast.Node) []diag.Diagnostic {
	return Check(tree, Options{}).Diagnostics
}

// use: первое употребление имени отношения
type use struct {
	arity int
	pos   source.Position
}

type validator struct {
	reporter diag.Reporter
	arity    map[string]use
	res      Result
}

func (v *validator) report(n ast.Node, code diag.Code, msg string) {
	d := diag.New(code, n.Span(), msg)
	d.Pos = n.Pos()
	v.res.Diagnostics = append(v.res.Diagnostics, d)
	if v.reporter != nil {
		diag.ReportError(v.reporter, code, n.Span(), msg).Emit()
	}
}

func (v *validator) visit(n ast.Node) {
	if ast.IsNil(n) {
		return
	}
	v.res.Visited++
	switch x := n.(type) {
	case *ast.Relation:
		v.checkArity(x, x.Name, len(x.Args))
	case *ast.Function:
		v.checkArity(x, x.Name, len(x.Inputs)+len(x.Outputs))
	case *ast.Connective:
		v.checkConnective(x)
	case *ast.Quantifier:
		v.checkQuantifier(x)
	case *ast.Negation:
		if x.Body == nil {
			v.report(x, diag.SemMissingChild, "negation has no body")
		}
	case *ast.Equation:
		if x.Left == nil || x.Right == nil {
			v.report(x, diag.SemMissingChild, "equation needs two terms")
		}
	case *ast.Context:
		if x.Body == nil {
			v.report(x, diag.SemMissingChild, "context ["+x.Type+": ...] has no graph")
		}
	}
	for _, c := range n.Children() {
		v.visit(c)
	}
}

func (v *validator) checkArity(n ast.Node, name string, arity int) {
	first, seen := v.arity[name]
	if !seen {
		v.arity[name] = use{arity: arity, pos: n.Pos()}
		return
	}
	if first.arity == arity {
		return
	}
	msg := "'" + name + "' used with " + strconv.Itoa(arity) + " argument" + plural(arity) +
		", first used with " + strconv.Itoa(first.arity)
	if first.pos.IsValid() {
		msg += " at " + first.pos.String()
	}
	v.report(n, diag.SemArityMismatch, msg)
}

func (v *validator) checkConnective(c *ast.Connective) {
	switch c.Op {
	case ast.And, ast.Or:
		if len(c.Operands) == 0 {
			v.report(c, diag.SemEmptyConnective, "("+c.Op.String()+") has no operands")
		}
	case ast.If, ast.Iff:
		if len(c.Operands) != 2 {
			v.report(c, diag.SemMissingChild,
				"("+c.Op.String()+" ...) needs exactly 2 operands, has "+strconv.Itoa(len(c.Operands)))
		}
	}
	for _, o := range c.Operands {
		if ast.IsNil(o) {
			v.report(c, diag.SemMissingChild, "("+c.Op.String()+" ...) has a missing operand")
			return
		}
	}
}

func (v *validator) checkQuantifier(q *ast.Quantifier) {
	if len(q.Vars) == 0 {
		v.report(q, diag.SemMissingChild, q.Quant.String()+" declares no variables")
	}
	seen := make(map[string]struct{}, len(q.Vars))
	for _, vr := range q.Vars {
		if _, dup := seen[vr.Name]; dup {
			v.report(q, diag.SemDuplicateQuantVar, "variable '"+vr.Name+"' declared twice in "+q.Quant.String())
			continue
		}
		seen[vr.Name] = struct{}{}
	}
	if ast.IsNil(q.Body) {
		v.report(q, diag.SemMissingChild, q.Quant.String()+" has no body")
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
