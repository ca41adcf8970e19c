package parser

import (
	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/source"
	"cglogic/internal/token"
)

type cgifParser struct {
	parser
	corefs *CoreferenceMap
}

// ParseCGIF parses a conceptual graph:
//
//	Expression := (Concept | Context | Relation | Function | Negation)*
//	Concept    := '[' [Type] [':'] [Referent] ']'
//	Context    := '[' [Type] ':' Expression ']'       -- referent starts with [ ( ~
//	Referent   := '@every' [*x] | *x | ?x | Ident
//	Relation   := '(' Ident (?x | Ident)* ')'
//	Function   := '(' Ident (?x | Ident)* '|' (*x | ?x | Ident)* ')'
//	Negation   := '~' '[' Expression ']'
func ParseCGIF(file *source.File, opts Options) Result {
	p := &cgifParser{
		parser: newParser(file, dialect.CGIF, &opts),
		corefs: NewCoreferenceMap(),
	}
	items := p.parseGraph(false)
	p.finish()
	tree := &ast.Expression{Base: p.base(p.fileSpan()), Items: items}
	return Result{Tree: tree, Errors: opts.CurrentErrors}
}

func isGraphStarter(k token.Kind) bool {
	return k == token.LBracket || k == token.LParen || k == token.Tilde
}

// parseGraph: цикл по элементам графа; nested останавливается на ']'.
func (p *cgifParser) parseGraph(nested bool) []ast.Node {
	items := make([]ast.Node, 0, 4)
	for !p.stop() {
		if nested && p.at(token.RBracket) {
			break
		}
		var (
			n  ast.Node
			ok bool
		)
		switch p.peek().Kind {
		case token.LBracket:
			n, ok = p.parseConcept()
		case token.LParen:
			n, ok = p.parseRelation()
		case token.Tilde:
			n, ok = p.parseNegation()
		default:
			p.err(diag.SynUnexpectedToken, "unexpected "+describe(p.peek())+"; expected '[', '(' or '~'")
			p.advance()
			ok = false
		}
		if ok && n != nil {
			items = append(items, n)
			continue
		}
		p.resyncGraph(nested)
	}
	return items
}

// resyncGraph прокручивает до стартера следующей конструкции ('[', '(', '~'),
// до ']' вложенного графа или до EOF.
func (p *cgifParser) resyncGraph(nested bool) {
	stops := []token.Kind{token.LBracket, token.LParen, token.Tilde}
	if nested {
		stops = append(stops, token.RBracket)
	}
	p.resyncUntil(stops...)
}

func (p *cgifParser) parseConcept() (ast.Node, bool) {
	open := p.advance() // '['
	typ := ""
	if p.at(token.Ident) {
		typ = p.advance().Text
	}
	colon := false
	if p.at(token.Colon) {
		p.advance()
		colon = true
	}

	if colon && isGraphStarter(p.peek().Kind) {
		return p.parseContext(open, typ)
	}

	c := &ast.Concept{Type: typ}
	ok := true
	switch p.peek().Kind {
	case token.RBracket:
		// generic concept: [Cat], [Cat:], []
	case token.Every, token.DefLabel, token.BoundLabel, token.Ident:
		p.parseReferent(c)
	default:
		p.err(diag.SynBadReferent, "expected referent or ']', got "+describe(p.peek()))
		ok = false
	}
	if ok {
		_, ok = p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' to close concept")
	}
	if !ok {
		// до ']' этого концепта или до следующей конструкции
		p.resyncUntil(token.RBracket, token.LBracket, token.LParen, token.Tilde)
		if p.at(token.RBracket) {
			p.advance()
		}
	}
	c.Base = p.base(p.spanFrom(open.Span))
	return c, true
}

// parseReferent заполняет c.Referent и выполняет разрешение кореференций.
// Вызывается только когда текущий токен: @every, метка или Ident.
func (p *cgifParser) parseReferent(c *ast.Concept) {
	if p.at(token.Every) {
		p.advance()
		c.Universal = true
		if !p.at(token.DefLabel) {
			return
		}
	}
	tok := p.advance()
	switch tok.Kind {
	case token.DefLabel:
		c.Referent = ast.Referent{Kind: ast.ReferentDefining, Name: tok.Name()}
		p.define(tok, c)
	case token.BoundLabel:
		c.Referent = ast.Referent{Kind: ast.ReferentBound, Name: tok.Name()}
		p.resolve(tok)
	case token.Ident:
		c.Referent = ast.Referent{Kind: ast.ReferentConstant, Name: tok.Text}
	}
}

func (p *cgifParser) parseContext(open token.Token, typ string) (ast.Node, bool) {
	items := p.parseGraph(true)
	body := &ast.Expression{Items: items}
	bodySpan := open.Span
	if len(items) > 0 {
		bodySpan = items[0].Span().Cover(items[len(items)-1].Span())
	}
	body.Base = p.base(bodySpan)
	p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' to close context")
	return &ast.Context{Base: p.base(p.spanFrom(open.Span)), Type: typ, Body: body}, true
}

func (p *cgifParser) parseRelation() (ast.Node, bool) {
	open := p.advance() // '('
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected relation name")
	if !ok {
		p.skipArgs()
		return nil, false
	}

	var inputs, outputs []ast.Node
	actor := false
loop:
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.BoundLabel:
			p.advance()
			p.resolve(tok)
			arg := &ast.Coreference{Base: p.base(tok.Span), Label: tok.Name()}
			if actor {
				outputs = append(outputs, arg)
			} else {
				inputs = append(inputs, arg)
			}
		case token.Ident:
			p.advance()
			arg := &ast.Name{Base: p.base(tok.Span), Text: tok.Text}
			if actor {
				outputs = append(outputs, arg)
			} else {
				inputs = append(inputs, arg)
			}
		case token.DefLabel:
			p.advance()
			if !actor {
				p.report(diag.SynUnexpectedToken, tok.Span, "defining label "+tok.Text+" is only allowed in a concept or after '|'")
				continue
			}
			arg := &ast.Coreference{Base: p.base(tok.Span), Label: tok.Name(), Defining: true}
			p.define(tok, arg)
			outputs = append(outputs, arg)
		case token.Pipe:
			p.advance()
			if actor {
				p.report(diag.SynUnexpectedToken, tok.Span, "second '|' in actor")
				continue
			}
			actor = true
		default:
			break loop
		}
	}

	p.expect(token.RParen, diag.SynExpectRParen, "expected ')' to close relation")
	sp := p.spanFrom(open.Span)
	if actor {
		return &ast.Function{Base: p.base(sp), Name: nameTok.Text, Inputs: inputs, Outputs: outputs}, true
	}
	return &ast.Relation{Base: p.base(sp), Name: nameTok.Text, Args: inputs}, true
}

// skipArgs: восстановление внутри отношения: до ')' (съедаем) или стартера.
func (p *cgifParser) skipArgs() {
	p.resyncUntil(token.RParen, token.LBracket, token.LParen, token.Tilde, token.RBracket)
	if p.at(token.RParen) {
		p.advance()
	}
}

func (p *cgifParser) parseNegation() (ast.Node, bool) {
	tilde := p.advance() // '~'
	open, ok := p.expect(token.LBracket, diag.SynExpectLBracket, "expected '[' after '~'")
	if !ok {
		return nil, false
	}
	items := p.parseGraph(true)
	body := &ast.Expression{Items: items}
	bodySpan := open.Span
	if len(items) > 0 {
		bodySpan = items[0].Span().Cover(items[len(items)-1].Span())
	}
	body.Base = p.base(bodySpan)
	p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' to close negation")
	return &ast.Negation{Base: p.base(p.spanFrom(tilde.Span)), Body: body}, true
}

func (p *cgifParser) define(tok token.Token, n ast.Node) {
	prev, ok := p.corefs.Define(tok.Name(), Definition{Node: n, Span: tok.Span})
	if ok {
		return
	}
	at := p.file.Position(prev.Span.Start)
	p.report(diag.RefDuplicateLabel, tok.Span,
		"duplicate defining label '"+tok.Name()+"' (first defined at "+at.String()+")")
}

func (p *cgifParser) resolve(tok token.Token) {
	if _, ok := p.corefs.Lookup(tok.Name()); ok {
		return
	}
	p.report(diag.RefUndefinedLabel, tok.Span, "undefined reference '"+tok.Name()+"'")
}
