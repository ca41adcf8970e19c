package translate

import (
	"slices"
	"strconv"

	"cglogic/internal/ast"
	"cglogic/internal/diag"
)

// ToCGIF is a shortcut for New(Options{}).ToCGIF(tree).
func ToCGIF(tree ast.Node) ast.Result {
	return New(Options{}).ToCGIF(tree)
}

// reverse: состояние одного перевода CL -> CGIF.
// В scope binding.name: переменная CL, binding.label: её метка CGIF.
type reverse struct {
	labels map[string]struct{}
	scope  []binding
	errs   []diag.Diagnostic
}

// ToCGIF converts a CL tree into a CGIF graph. Quantified variables become
// concepts with defining labels, unary atoms become concepts, not/or/if/iff
// are expressed with nested negations. Equations and CGIF-only nodes are
// rejected. The input is never modified.
func (tr *Translator) ToCGIF(tree ast.Node) ast.Result {
	root, ok := tree.(*ast.Expression)
	switch {
	case tree == nil || ok && root == nil:
		return ast.NewResult(&ast.Expression{}, nil, "")
	case !ok:
		root = &ast.Expression{Base: baseOf(tree), Items: []ast.Node{tree}}
	}

	r := &reverse{labels: make(map[string]struct{})}
	out := &ast.Expression{Base: root.Base, Items: r.seq(root.Items)}
	if len(r.errs) > 0 {
		return ast.Failed(r.errs...)
	}
	return ast.NewResult(out, nil, ast.FormatCGIF(out))
}

func (r *reverse) fail(code diag.Code, n ast.Node, msg string) {
	r.errs = append(r.errs, failure(code, n, msg))
}

// seq переводит конъюнкцию предложений в элементы одного графа.
func (r *reverse) seq(sentences []ast.Node) []ast.Node {
	var out []ast.Node
	for i, s := range sentences {
		part := r.items(s)
		if i < len(sentences)-1 {
			part = enclose(s, part)
		}
		out = append(out, part...)
	}
	return out
}

// enclose: концепт @every охватывает весь остаток графа, поэтому часть
// с ним, за которой что-то следует, закрывается двойным отрицанием.
func enclose(at ast.Node, part []ast.Node) []ast.Node {
	for _, it := range part {
		if c, ok := it.(*ast.Concept); ok && c.Universal {
			return []ast.Node{negation(at, []ast.Node{negation(at, part)})}
		}
	}
	return part
}

func (r *reverse) items(n ast.Node) []ast.Node {
	if ast.IsNil(n) {
		return nil
	}
	switch x := n.(type) {
	case *ast.Expression:
		return r.seq(x.Items)
	case *ast.Relation:
		if a := r.atom(x); a != nil {
			return []ast.Node{a}
		}
		return nil
	case *ast.Negation:
		if ast.IsNil(x.Body) {
			r.fail(diag.SemMissingChild, x, "'not' without a sentence")
			return nil
		}
		return []ast.Node{negation(x, r.items(x.Body))}
	case *ast.Connective:
		return r.connective(x)
	case *ast.Quantifier:
		return r.quantified(x)
	case *ast.Equation:
		r.fail(diag.UnsEquation, x, "equation (= ...) has no CGIF form")
		return nil
	default:
		r.fail(diag.UnsNotation, n, "CGIF "+n.Kind().String()+" cannot appear in a CL sentence")
		return nil
	}
}

func (r *reverse) connective(c *ast.Connective) []ast.Node {
	if slices.ContainsFunc(c.Operands, ast.IsNil) {
		r.fail(diag.SemMissingChild, c, "'"+c.Op.String()+"' has a missing operand")
		return nil
	}
	switch c.Op {
	case ast.Or:
		// (or A B) == ~[~[A] ~[B]]
		alts := make([]ast.Node, 0, len(c.Operands))
		for _, o := range c.Operands {
			alts = append(alts, negation(o, r.items(o)))
		}
		return []ast.Node{negation(c, alts)}
	case ast.If, ast.Iff:
		if len(c.Operands) != 2 {
			r.fail(diag.SemMissingChild, c, "'"+c.Op.String()+"' needs exactly two sentences")
			return nil
		}
		a, b := c.Operands[0], c.Operands[1]
		out := []ast.Node{r.implication(c, a, b)}
		if c.Op == ast.Iff {
			// каждая сторона переводится заново, со своими метками
			out = append(out, r.implication(c, b, a))
		}
		return out
	}
	return r.seq(c.Operands)
}

// implication: (if A B) == ~[A ~[B]]
func (r *reverse) implication(at, a, b ast.Node) ast.Node {
	ante := enclose(a, r.items(a))
	return negation(at, append(ante, negation(b, r.items(b))))
}

// quantified превращает переменные в концепты с определяющими метками.
// Атом (T x) среди конъюнктов тела (или антецедента forall) становится
// типом концепта; остаток тела идёт за концептами в том же графе.
func (r *reverse) quantified(q *ast.Quantifier) []ast.Node {
	if len(q.Vars) == 0 || ast.IsNil(q.Body) {
		r.fail(diag.SemMissingChild, q, "'"+q.Quant.String()+"' needs variables and a body")
		return nil
	}
	universal := q.Quant == ast.Forall
	var (
		conds []ast.Node // откуда берутся типы
		body  ast.Node   // следствие forall
		cond  bool
	)
	switch {
	case !universal:
		conds = conjuncts(q.Body)
	case isImplication(q.Body):
		c := q.Body.(*ast.Connective)
		conds, body, cond = conjuncts(c.Operands[0]), c.Operands[1], true
	case len(q.Vars) == 1 && q.Vars[0].Type == "" && isTypeAtom(q.Body, q.Vars[0].Name):
		// (forall (x) (T x)) == [T: @every *x]
		conds = []ast.Node{q.Body}
	default:
		body = q.Body
	}

	mark := len(r.scope)
	out := make([]ast.Node, 0, len(q.Vars)+1)
	for _, v := range q.Vars {
		typ := v.Type
		if typ == "" {
			typ, conds = takeType(conds, v.Name)
		}
		label := r.newLabel(v.Name)
		r.scope = append(r.scope, binding{label: label, name: v.Name})
		out = append(out, &ast.Concept{
			Base:      q.Base,
			Type:      typ,
			Referent:  ast.Referent{Kind: ast.ReferentDefining, Name: label},
			Universal: universal,
		})
	}

	switch {
	case cond && len(conds) > 0:
		// forall x (T x & R -> B) == [T: @every *x] ~[R ~[B]]
		rest := enclose(q, r.seq(conds))
		out = append(out, negation(q, append(rest, negation(body, r.items(body)))))
	case body != nil:
		out = append(out, r.items(body)...)
	default:
		out = append(out, r.seq(conds)...)
	}
	r.scope = r.scope[:mark]
	return out
}

// atom: унарный атом становится концептом [T: ?x] или [T: c].
func (r *reverse) atom(rel *ast.Relation) ast.Node {
	args := make([]ast.Node, 0, len(rel.Args))
	for _, a := range rel.Args {
		t, ok := r.term(rel, a)
		if !ok {
			return nil
		}
		args = append(args, t)
	}
	if len(args) != 1 {
		return &ast.Relation{Base: rel.Base, Name: rel.Name, Args: args}
	}
	c := &ast.Concept{Base: rel.Base, Type: rel.Name}
	switch t := args[0].(type) {
	case *ast.Coreference:
		c.Referent = ast.Referent{Kind: ast.ReferentBound, Name: t.Label}
	case *ast.Name:
		c.Referent = ast.Referent{Kind: ast.ReferentConstant, Name: t.Text}
	}
	return c
}

// term: связанная переменная становится ?label, остальные имена: константы.
func (r *reverse) term(parent, n ast.Node) (ast.Node, bool) {
	x, ok := n.(*ast.Name)
	if !ok {
		if ast.IsNil(n) {
			r.fail(diag.SemMissingChild, parent, "missing argument")
		} else {
			r.fail(diag.UnsNotation, n, n.Kind().String()+" cannot be a CL term")
		}
		return nil, false
	}
	for i := len(r.scope) - 1; i >= 0; i-- {
		if r.scope[i].name == x.Text {
			return &ast.Coreference{Base: x.Base, Label: r.scope[i].label}, true
		}
	}
	return &ast.Name{Base: x.Base, Text: x.Text}, true
}

// newLabel: имя переменной, а при повторе x2, x3...; метки в графе уникальны.
func (r *reverse) newLabel(name string) string {
	label := name
	for i := 2; ; i++ {
		if _, used := r.labels[label]; !used {
			break
		}
		label = name + strconv.Itoa(i)
	}
	r.labels[label] = struct{}{}
	return label
}

func negation(at ast.Node, items []ast.Node) *ast.Negation {
	b := baseOf(at)
	return &ast.Negation{Base: b, Body: &ast.Expression{Base: b, Items: items}}
}

func baseOf(n ast.Node) ast.Base {
	return ast.At(n.Span(), n.Pos())
}

// conjuncts возвращает операнды (and ...) копией, иначе сам узел.
func conjuncts(n ast.Node) []ast.Node {
	if c, ok := n.(*ast.Connective); ok && c.Op == ast.And {
		return slices.Clone(c.Operands)
	}
	return []ast.Node{n}
}

func isImplication(n ast.Node) bool {
	c, ok := n.(*ast.Connective)
	return ok && c.Op == ast.If && len(c.Operands) == 2 && !slices.ContainsFunc(c.Operands, ast.IsNil)
}

func isTypeAtom(n ast.Node, name string) bool {
	rel, ok := n.(*ast.Relation)
	if !ok || len(rel.Args) != 1 {
		return false
	}
	arg, ok := rel.Args[0].(*ast.Name)
	return ok && arg.Text == name
}

// takeType убирает из conds первый атом (T name) и возвращает T.
func takeType(conds []ast.Node, name string) (string, []ast.Node) {
	for i, c := range conds {
		if isTypeAtom(c, name) {
			return c.(*ast.Relation).Name, slices.Delete(conds, i, i+1)
		}
	}
	return "", conds
}
