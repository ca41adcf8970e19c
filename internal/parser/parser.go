package parser

import (
	"fmt"
	"slices"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/lexer"
	"cglogic/internal/source"
	"cglogic/internal/token"

	"fortio.org/safecast"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result is the tree of one parse and the number of errors reported for it.
// Tree is never nil; it may be partial when Errors > 0.
type Result struct {
	Tree   *ast.Expression
	Errors uint
}

// Parse dispatches on notation. Unknown notations are parsed as CGIF.
func Parse(file *source.File, n dialect.Notation, opts Options) Result {
	if n == dialect.CL {
		return ParseCL(file, opts)
	}
	return ParseCGIF(file, opts)
}

// parser: общее состояние на один вызов Parse
type parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     *Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	depth    int         // баланс съеденных '(' и ')'
	limited  bool        // заметка о лимите уже отправлена
}

// countingReporter засчитывает лексические ошибки в счётчик парсера.
type countingReporter struct {
	opts *Options
}

func (r countingReporter) Report(code diag.Code, sev diag.Severity, sp source.Span, msg string, sugg []string) {
	if sev == diag.SevError {
		r.opts.CurrentErrors++
	}
	if r.opts.Reporter != nil {
		r.opts.Reporter.Report(code, sev, sp, msg, sugg)
	}
}

func newParser(file *source.File, n dialect.Notation, opts *Options) parser {
	lx := lexer.New(file, lexer.Options{Notation: n, Reporter: countingReporter{opts: opts}})
	return parser{
		lx:       lx,
		file:     file,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
	}
}

func (p *parser) peek() token.Token {
	for {
		tok := p.lx.Peek()
		if tok.Kind != token.Invalid {
			return tok
		}
		// Invalid уже зарепорчен лексером: просто пропускаем
		p.lx.Next()
	}
}

func (p *parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance: съедает следующий токен и обновляет lastSpan
func (p *parser) advance() token.Token {
	tok := p.peek()
	p.lx.Next()
	switch tok.Kind {
	case token.EOF:
		return tok
	case token.LParen:
		p.depth++
	case token.RParen:
		p.depth--
	}
	p.lastSpan = tok.Span
	return tok
}

// diagSpan: лучший span для диагностики: на EOF указываем сразу за последним токеном
func (p *parser) diagSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.ZeroAt()
	}
	return tok.Span
}

// expect: ожидаем конкретный токен. Если нет: репортим и ничего не съедаем.
func (p *parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.report(code, p.diagSpan(), msg+", got "+describe(p.peek()))
	return token.Token{}, false
}

// репортует ошибку и передает текущий спан
func (p *parser) err(code diag.Code, msg string) bool {
	return p.report(code, p.diagSpan(), msg)
}

func (p *parser) report(code diag.Code, sp source.Span, msg string) bool {
	p.opts.CurrentErrors++
	if p.opts.MaxErrors > 0 && p.opts.CurrentErrors > p.opts.MaxErrors {
		p.noteLimit(sp)
		return false
	}
	if p.opts.Reporter == nil {
		return false
	}
	p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	return true
}

// stop: пора прекращать разбор (EOF или лимит ошибок)
func (p *parser) stop() bool {
	return p.at(token.EOF) || p.opts.Enough()
}

// finish is called once the top-level loop ends. A parse cut short by
// MaxErrors leaves a TooManyDiagnostics note at the point where it stopped.
func (p *parser) finish() {
	if p.opts.Enough() && !p.at(token.EOF) {
		p.noteLimit(p.diagSpan())
	}
}

// noteLimit отправляет одну заметку о лимите на весь разбор.
func (p *parser) noteLimit(sp source.Span) {
	if p.limited || p.opts.Reporter == nil {
		return
	}
	p.limited = true
	msg := fmt.Sprintf("too many errors (limit %d); parsing stopped, later problems are not reported", p.opts.MaxErrors)
	at := source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
	p.opts.Reporter.Report(diag.TooManyDiagnostics, diag.SevInfo, at, msg, nil)
}

// resyncUntil пропускает токены, пока не встретит один из kinds или EOF.
// Всегда съедает хотя бы один токен, если текущий не из стоп-набора.
func (p *parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		p.advance()
	}
}

func (p *parser) base(sp source.Span) ast.Base {
	return ast.At(sp, p.file.Position(sp.Start))
}

// spanFrom: от начала start до конца последнего съеденного токена
func (p *parser) spanFrom(start source.Span) source.Span {
	if p.lastSpan.End < start.Start {
		return start
	}
	return start.Cover(p.lastSpan)
}

func (p *parser) fileSpan() source.Span {
	end, err := safecast.Conv[uint32](len(p.file.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return source.Span{File: p.file.ID, Start: 0, End: end}
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Ident:
		return "identifier '" + tok.Text + "'"
	case token.DefLabel, token.BoundLabel:
		return "label '" + tok.Text + "'"
	}
	return tok.Kind.Describe()
}
