package translate

import (
	"cglogic/internal/ast"
	"cglogic/internal/diag"
)

// DefaultType is the predicate used for untyped concepts.
const DefaultType = "Thing"

type Options struct {
	// DefaultType overrides the type atom of untyped concepts; empty means "Thing".
	DefaultType string
}

// Translator is stateless; one value may serve concurrent calls.
type Translator struct {
	opts Options
}

func New(opts Options) *Translator {
	if opts.DefaultType == "" {
		opts.DefaultType = DefaultType
	}
	return &Translator{opts: opts}
}

// Translate is a shortcut for New(Options{}).Translate(tree).
func Translate(tree ast.Node) ast.Result {
	return New(Options{}).Translate(tree)
}

// binding: метка, видимая в текущей области
type binding struct {
	label string
	name  string
}

// translation: состояние одного вызова
type translation struct {
	opts  Options
	vars  *VariableMap
	scope []binding
	errs  []diag.Diagnostic
}

// Translate converts a CGIF tree into a CL tree. The input is never modified.
func (tr *Translator) Translate(tree ast.Node) ast.Result {
	root, ok := tree.(*ast.Expression)
	switch {
	case tree == nil || ok && root == nil:
		return ast.NewResult(&ast.Expression{}, nil, "")
	case !ok:
		root = &ast.Expression{Base: ast.At(tree.Span(), tree.Pos()), Items: []ast.Node{tree}}
	}

	t := &translation{opts: tr.opts}
	t.vars = newVariableMap(collectNames(root))
	t.collect(root)
	if len(t.errs) > 0 {
		return ast.Failed(t.errs...)
	}

	out := &ast.Expression{Base: root.Base}
	if s := t.graph(root.Items); s != nil {
		out.Items = []ast.Node{s}
	}
	if len(t.errs) > 0 {
		return ast.Failed(t.errs...)
	}
	return ast.NewResult(out, nil, ast.FormatCL(out))
}

func (t *translation) fail(code diag.Code, n ast.Node, msg string) {
	t.errs = append(t.errs, failure(code, n, msg))
}

// failure: ошибка перевода, привязанная к узлу входного дерева.
func failure(code diag.Code, n ast.Node, msg string) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  n.Span(),
		Pos:      n.Pos(),
	}
}

// collectNames: все имена дерева, чтобы сгенерированные переменные с ними не совпали.
func collectNames(root ast.Node) map[string]struct{} {
	names := make(map[string]struct{})
	ast.Walk(root, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.Concept:
			if x.Type != "" {
				names[x.Type] = struct{}{}
			}
			if x.Referent.Kind == ast.ReferentConstant {
				names[x.Referent.Name] = struct{}{}
			}
		case *ast.Relation:
			names[x.Name] = struct{}{}
		case *ast.Function:
			names[x.Name] = struct{}{}
		case *ast.Name:
			names[x.Text] = struct{}{}
		}
		return true
	})
	return names
}

// collect: проход 1: переменные для связывающих концептов в порядке документа.
func (t *translation) collect(root ast.Node) {
	ast.Walk(root, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.Concept:
			if !x.Binds() {
				return true
			}
			label := ""
			if x.Referent.Kind == ast.ReferentDefining {
				label = x.Referent.Name
			}
			if _, ok := t.vars.assign(x, label); !ok {
				t.fail(diag.RefDuplicateLabel, x, "duplicate defining label '"+label+"'")
			}
		case *ast.Coreference:
			if x.Defining {
				if _, ok := t.vars.assign(x, x.Label); !ok {
					t.fail(diag.RefDuplicateLabel, x, "duplicate defining label '"+x.Label+"'")
				}
			}
		case *ast.Quantifier, *ast.Connective, *ast.Equation:
			t.fail(diag.UnsNotation, n, "CL "+n.Kind().String()+" cannot appear in a CGIF graph")
			return false
		}
		return true
	})
}

// graph: проход 2 для последовательности элементов одного графа.
// Первый связывающий концепт становится квантором над остатком графа.
// Возвращает nil для пустого графа.
func (t *translation) graph(items []ast.Node) ast.Node {
	var prefix []ast.Node
	for i, it := range items {
		c, ok := it.(*ast.Concept)
		if !ok || !c.Binds() {
			if s := t.node(it); s != nil {
				prefix = append(prefix, s)
			}
			continue
		}
		prefix = append(prefix, t.quantify(c, items[i+1:]))
		break
	}
	return conj(prefix)
}

func (t *translation) quantify(c *ast.Concept, rest []ast.Node) ast.Node {
	name, _ := t.vars.Of(c)
	atom := t.typeAtom(c, name)

	label := ""
	if c.Referent.Kind == ast.ReferentDefining {
		label = c.Referent.Name
	}
	t.scope = append(t.scope, binding{label: label, name: name})
	body := t.graph(rest)
	t.scope = t.scope[:len(t.scope)-1]

	q := &ast.Quantifier{Base: c.Base, Quant: ast.Exists, Vars: []ast.Var{{Name: name}}}
	if c.Universal {
		q.Quant = ast.Forall
	}
	switch {
	case body == nil:
		q.Body = atom
	case c.Universal:
		q.Body = &ast.Connective{Base: c.Base, Op: ast.If, Operands: []ast.Node{atom, body}}
	default:
		q.Body = conj(append([]ast.Node{atom}, flatten(body)...))
	}
	return q
}

func (t *translation) typeAtom(c *ast.Concept, term string) ast.Node {
	typ := c.Type
	if typ == "" {
		typ = t.opts.DefaultType
	}
	return &ast.Relation{
		Base: c.Base,
		Name: typ,
		Args: []ast.Node{&ast.Name{Base: c.Base, Text: term}},
	}
}

// node переводит несвязывающий элемент графа; nil при ошибке.
func (t *translation) node(n ast.Node) ast.Node {
	switch x := n.(type) {
	case *ast.Concept:
		// константа или ?x: просто атом типа
		switch x.Referent.Kind {
		case ast.ReferentConstant:
			return t.typeAtom(x, x.Referent.Name)
		case ast.ReferentBound:
			name, ok := t.lookup(x, x.Referent.Name)
			if !ok {
				return nil
			}
			return t.typeAtom(x, name)
		}
		return nil
	case *ast.Relation:
		args := make([]ast.Node, 0, len(x.Args))
		for _, a := range x.Args {
			term, ok := t.term(a)
			if !ok {
				return nil
			}
			args = append(args, term)
		}
		return &ast.Relation{Base: x.Base, Name: x.Name, Args: args}
	case *ast.Negation:
		body, ok := x.Body.(*ast.Expression)
		if !ok {
			body = &ast.Expression{Base: x.Base, Items: []ast.Node{x.Body}}
		}
		if len(body.Items) == 0 {
			t.fail(diag.UnsEmptyGraph, x, "empty negated graph has no CL form")
			return nil
		}
		inner := t.graph(body.Items)
		if inner == nil {
			return nil
		}
		return &ast.Negation{Base: x.Base, Body: inner}
	case *ast.Expression:
		return t.graph(x.Items)
	case *ast.Context:
		t.fail(diag.UnsContext, x, "context ["+x.Type+": ...] cannot be translated to CL")
		return nil
	case *ast.Function:
		t.fail(diag.UnsFunction, x, "actor ("+x.Name+" ... | ...) cannot be translated to CL")
		return nil
	default:
		t.fail(diag.UnsNotation, n, n.Kind().String()+" cannot appear at graph level")
		return nil
	}
}

func (t *translation) term(n ast.Node) (ast.Node, bool) {
	switch x := n.(type) {
	case *ast.Name:
		return &ast.Name{Base: x.Base, Text: x.Text}, true
	case *ast.Coreference:
		name, ok := t.lookup(x, x.Label)
		if !ok {
			return nil, false
		}
		return &ast.Name{Base: x.Base, Text: name}, true
	}
	t.fail(diag.UnsNotation, n, n.Kind().String()+" cannot be a relation argument")
	return nil, false
}

// lookup разрешает метку через стек областей; вне области: ошибка.
func (t *translation) lookup(at ast.Node, label string) (string, bool) {
	for i := len(t.scope) - 1; i >= 0; i-- {
		if t.scope[i].label == label {
			return t.scope[i].name, true
		}
	}
	if _, defined := t.vars.Label(label); defined {
		t.fail(diag.RefOutOfScope, at, "label '"+label+"' is used outside the graph that defines it")
	} else {
		t.fail(diag.RefUndefinedLabel, at, "undefined reference '"+label+"'")
	}
	return "", false
}

func conj(nodes []ast.Node) ast.Node {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	}
	first, last := nodes[0], nodes[len(nodes)-1]
	return &ast.Connective{
		Base:     ast.At(first.Span().Cover(last.Span()), first.Pos()),
		Op:       ast.And,
		Operands: nodes,
	}
}

// flatten раскрывает конъюнкцию, построенную conj.
func flatten(n ast.Node) []ast.Node {
	if c, ok := n.(*ast.Connective); ok && c.Op == ast.And {
		return c.Operands
	}
	return []ast.Node{n}
}
