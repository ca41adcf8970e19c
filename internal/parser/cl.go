package parser

import (
	"strings"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/source"
	"cglogic/internal/token"
)

// occurrence: использование имени в позиции терма
type occurrence struct {
	name    string
	span    source.Span
	inScope bool
}

type clParser struct {
	parser
	scopes   scopeStack
	declared map[string]struct{} // все имена, объявленные хоть одним квантором
	uses     []occurrence
}

// ParseCL parses CLIF sentences:
//
//	Expression := Sentence*
//	Sentence   := '(' Ident Term* ')'
//	            | '(' ('and' | 'or') Sentence+ ')'
//	            | '(' 'not' Sentence ')'
//	            | '(' ('if' | 'iff') Sentence Sentence ')'
//	            | '(' ('exists' | 'forall') '(' Binding+ ')' Sentence ')'
//	            | '(' '=' Term Term ')'
//	Binding    := Ident | '(' Ident Ident ')'
//	Term       := Ident
//
// A name is a variable iff some quantifier in the same input declares it;
// its occurrences outside every declaring scope are reported as free.
func ParseCL(file *source.File, opts Options) Result {
	p := &clParser{
		parser:   newParser(file, dialect.CL, &opts),
		declared: make(map[string]struct{}),
	}
	items := make([]ast.Node, 0, 4)
	for !p.stop() {
		if !p.at(token.LParen) {
			p.err(diag.SynUnexpectedToken, "unexpected "+describe(p.peek())+"; expected '('")
			p.advance()
			p.resyncUntil(token.LParen)
			continue
		}
		if n := p.parseSentence(); n != nil {
			items = append(items, n)
		}
	}
	p.reportFree()
	p.finish()
	tree := &ast.Expression{Base: p.base(p.fileSpan()), Items: items}
	return Result{Tree: tree, Errors: opts.CurrentErrors}
}

// parseSentence разбирает одно предложение, начиная с '('.
// При ошибке восстанавливается до парной ')' и возвращает nil.
func (p *clParser) parseSentence() ast.Node {
	outer := p.depth
	open := p.advance() // '('
	head := p.peek()
	var (
		n  ast.Node
		ok bool
	)
	switch head.Kind {
	case token.KwAnd, token.KwOr:
		n, ok = p.parseConnective(open, head, 1, -1)
	case token.KwIf, token.KwIff:
		n, ok = p.parseConnective(open, head, 2, 2)
	case token.KwNot:
		n, ok = p.parseNot(open)
	case token.KwExists, token.KwForall:
		n, ok = p.parseQuantified(open, head)
	case token.Equals:
		n, ok = p.parseEquation(open)
	case token.Ident:
		n, ok = p.parseAtom(open)
	case token.RParen:
		p.err(diag.SynExpectSentence, "empty sentence '()'")
		p.advance()
		return nil
	default:
		p.err(diag.SynExpectIdentifier, "expected predicate or operator, got "+describe(head))
	}
	if !ok {
		p.skipToClose(outer)
		return nil
	}
	return n
}

// skipToClose: пропускает токены, пока баланс скобок не вернётся к outer,
// т.е. до ')' текущего предложения включительно (или до EOF).
func (p *clParser) skipToClose(outer int) {
	for !p.at(token.EOF) && p.depth > outer {
		p.advance()
	}
}

func (p *clParser) closeSentence(what string) bool {
	_, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' to close "+what)
	return ok
}

// parseOperands: предложения до ')' или EOF; возвращает число попыток,
// чтобы неудачные операнды не давали лишней ошибки арности.
func (p *clParser) parseOperands() (ops []ast.Node, attempted int) {
	for !p.stop() && !p.at(token.RParen) {
		if !p.at(token.LParen) {
			tok := p.advance()
			p.report(diag.SynExpectSentence, tok.Span, "expected sentence, got "+describe(tok))
			attempted++
			continue
		}
		attempted++
		if n := p.parseSentence(); n != nil {
			ops = append(ops, n)
		}
	}
	return ops, attempted
}

func (p *clParser) parseConnective(open, head token.Token, minOps, maxOps int) (ast.Node, bool) {
	p.advance()
	ops, attempted := p.parseOperands()
	if attempted < minOps || (maxOps >= 0 && attempted > maxOps) {
		p.report(diag.SynBadArity, head.Span, arityMessage(head.Text, minOps, maxOps, attempted))
	}
	if !p.closeSentence("'" + head.Text + "'") {
		return nil, false
	}
	var op ast.ConnOp
	switch head.Kind {
	case token.KwOr:
		op = ast.Or
	case token.KwIf:
		op = ast.If
	case token.KwIff:
		op = ast.Iff
	default:
		op = ast.And
	}
	return &ast.Connective{Base: p.base(p.spanFrom(open.Span)), Op: op, Operands: ops}, true
}

func (p *clParser) parseNot(open token.Token) (ast.Node, bool) {
	head := p.advance()
	ops, attempted := p.parseOperands()
	if attempted != 1 {
		p.report(diag.SynBadArity, head.Span, arityMessage("not", 1, 1, attempted))
	}
	if !p.closeSentence("'not'") {
		return nil, false
	}
	if len(ops) == 0 {
		return nil, true
	}
	return &ast.Negation{Base: p.base(p.spanFrom(open.Span)), Body: ops[0]}, true
}

func (p *clParser) parseQuantified(open, head token.Token) (ast.Node, bool) {
	p.advance()
	vars, ok := p.parseBindings()
	if !ok {
		return nil, false
	}

	names := make([]string, 0, len(vars))
	for _, v := range vars {
		names = append(names, v.Name)
		p.declared[v.Name] = struct{}{}
	}
	p.scopes.push(names)
	ops, attempted := p.parseOperands()
	p.scopes.pop()

	if attempted != 1 {
		if attempted == 0 {
			p.err(diag.SynExpectSentence, "expected sentence as body of '"+head.Text+"'")
		} else {
			p.report(diag.SynBadArity, head.Span, "'"+head.Text+"' takes exactly one body sentence")
		}
	}
	if !p.closeSentence("'" + head.Text + "'") {
		return nil, false
	}
	if len(ops) == 0 {
		return nil, true
	}
	q := ast.Exists
	if head.Kind == token.KwForall {
		q = ast.Forall
	}
	return &ast.Quantifier{Base: p.base(p.spanFrom(open.Span)), Quant: q, Vars: vars, Body: ops[0]}, true
}

// parseBindings: '(' (x | (x Type))+ ')'
func (p *clParser) parseBindings() ([]ast.Var, bool) {
	open, ok := p.expect(token.LParen, diag.SynExpectVarList, "expected '(' to open variable list")
	if !ok {
		return nil, false
	}
	var vars []ast.Var
	for !p.stop() && !p.at(token.RParen) {
		switch p.peek().Kind {
		case token.Ident:
			vars = append(vars, ast.Var{Name: p.advance().Text})
		case token.LParen:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variable name")
			if !ok {
				return nil, false
			}
			typ, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type of '"+name.Text+"'")
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after typed variable"); !ok {
				return nil, false
			}
			vars = append(vars, ast.Var{Name: name.Text, Type: typ.Text})
		default:
			p.err(diag.SynExpectIdentifier, "expected variable, got "+describe(p.peek()))
			return nil, false
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' to close variable list"); !ok {
		return nil, false
	}
	if len(vars) == 0 {
		p.report(diag.SynEmptyVarList, p.spanFrom(open.Span), "quantifier declares no variables")
	}
	return vars, true
}

func (p *clParser) parseEquation(open token.Token) (ast.Node, bool) {
	eq := p.advance()
	terms, ok := p.parseTerms("=")
	if !ok {
		return nil, false
	}
	if len(terms) != 2 {
		p.report(diag.SynBadArity, eq.Span, arityMessage("=", 2, 2, len(terms)))
	}
	if !p.closeSentence("equation") {
		return nil, false
	}
	if len(terms) != 2 {
		return nil, true
	}
	return &ast.Equation{Base: p.base(p.spanFrom(open.Span)), Left: terms[0], Right: terms[1]}, true
}

func (p *clParser) parseAtom(open token.Token) (ast.Node, bool) {
	name := p.advance()
	terms, ok := p.parseTerms(name.Text)
	if !ok {
		return nil, false
	}
	if !p.closeSentence("atomic sentence") {
		return nil, false
	}
	return &ast.Relation{Base: p.base(p.spanFrom(open.Span)), Name: name.Text, Args: terms}, true
}

// parseTerms: идентификаторы до ')'. Вложенные термы-функции не поддерживаются.
func (p *clParser) parseTerms(head string) ([]ast.Node, bool) {
	var terms []ast.Node
	for p.at(token.Ident) {
		tok := p.advance()
		p.use(tok)
		terms = append(terms, &ast.Name{Base: p.base(tok.Span), Text: tok.Text})
	}
	if !p.at(token.RParen) && !p.at(token.EOF) {
		tok := p.peek()
		msg := "expected term, got " + describe(tok)
		if tok.Kind == token.LParen {
			msg = "function terms are not supported in arguments of '" + head + "'"
			if kw := strings.ToLower(head); kw != head {
				if _, ok := token.LookupKeyword(kw); ok {
					msg = "'" + head + "' is not a keyword, CL keywords are lowercase: use '" + kw + "'"
				}
			}
		}
		p.report(diag.SynUnexpectedToken, p.diagSpan(), msg)
		return nil, false
	}
	return terms, true
}

func (p *clParser) use(tok token.Token) {
	p.uses = append(p.uses, occurrence{
		name:    tok.Text,
		span:    tok.Span,
		inScope: p.scopes.has(tok.Text),
	})
}

// reportFree после разбора: имя, объявленное где-либо квантором,
// но использованное вне всех объявляющих его областей: свободная переменная.
func (p *clParser) reportFree() {
	for _, u := range p.uses {
		if u.inScope {
			continue
		}
		if _, isVar := p.declared[u.name]; isVar {
			p.report(diag.RefFreeVariable, u.span, "free variable '"+u.name+"' is not bound by an enclosing quantifier")
		}
	}
}

func arityMessage(op string, minOps, maxOps, got int) string {
	switch {
	case minOps == maxOps:
		return "'" + op + "' takes exactly " + plural(minOps) + ", got " + itoa(got)
	case maxOps < 0:
		return "'" + op + "' takes at least " + plural(minOps) + ", got " + itoa(got)
	}
	return "'" + op + "' has wrong number of operands"
}
