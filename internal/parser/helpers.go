package parser

import (
	"fmt"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/source"
	"codecleanup/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

// eat съедает токен k, если он следующий.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// eatWord съедает контекстное слово w (Preserve, Ascending, ...).
func (p *Parser) eatWord(w string) bool {
	if p.atWord(w) {
		p.advance()
		return true
	}
	return false
}

// skipEOL — неявное продолжение строки: после '(' ',' '{' и бинарных операторов.
func (p *Parser) skipEOL() {
	for p.at(token.EOL) {
		p.advance()
	}
}

// skipSeparators пропускает пустые строки и ':' между операторами.
func (p *Parser) skipSeparators() {
	for p.at_or(token.EOL, token.Colon) {
		p.advance()
	}
}

// atStatementEnd reports whether the current statement has no more tokens.
func (p *Parser) atStatementEnd() bool {
	return p.at_or(token.EOL, token.EOF, token.Colon)
}

// endStatement требует конец оператора; лишние токены пропускаются с предупреждением.
func (p *Parser) endStatement() {
	if p.atStatementEnd() {
		return
	}
	// блок закрыт без своего End: курсор уже стоит на чужой закрывающей строке
	if _, _, ok := p.closer(); ok || p.atDeclarationStart() {
		return
	}
	p.warn(diag.SynExpectEndOfLine, fmt.Sprintf("expected end of statement, found %q", p.peek().Text))
	p.skipStatement()
}

// skipStatement прокручивает до конца текущего оператора.
func (p *Parser) skipStatement() {
	for !p.atStatementEnd() {
		p.advance()
	}
}

// skipLine прокручивает до конца физической строки, включая ':'.
func (p *Parser) skipLine() {
	for !p.at_or(token.EOL, token.EOF) {
		p.advance()
	}
}

// getDiagnosticSpan — возвращает лучший span для диагностики
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — предупреждение и (invalid,false).
// Ошибки выражений не мешают анализу, поэтому это не SevError.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevWarning, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan}, false
}

// expectName съедает имя: идентификатор или ключевое слово в роли имени.
func (p *Parser) expectName(msg string) (token.Token, bool) {
	tok := p.peek()
	if tok.Kind == token.Ident || tok.Kind.IsKeyword() {
		return p.advance(), true
	}
	p.warn(diag.SynExpectIdentifier, msg)
	return token.Token{Kind: token.Invalid, Span: p.getDiagnosticSpan()}, false
}

// репортует структурную ошибку на span
func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) bool {
	return p.report(code, diag.SevError, sp, msg)
}

// репортует warning и передает текущий спан
func (p *Parser) warn(code diag.Code, msg string) bool {
	return p.report(code, diag.SevWarning, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	enough := p.opts.Enough()
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter == nil || enough {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// node creates a node starting at tok.
func (p *Parser) node(kind ast.Kind, tok token.Token) ast.NodeID {
	return p.b.New(kind, tok.Span)
}

// finish растягивает span узла до последнего съеденного токена.
func (p *Parser) finish(id ast.NodeID) ast.NodeID {
	p.b.Extend(id, p.lastSpan.End)
	return id
}

// add attaches child and widens parent to cover it.
func (p *Parser) add(parent, child ast.NodeID) {
	if !child.IsValid() {
		return
	}
	p.b.AddChild(parent, child)
	if c := p.b.Get(child); c != nil {
		p.b.Extend(parent, c.Span.End)
	}
}

func (p *Parser) spanOf(id ast.NodeID) source.Span {
	if n := p.b.Get(id); n != nil {
		return n.Span
	}
	return source.Span{}
}

// setName записывает имя без квадратных скобок.
func (p *Parser) setName(id ast.NodeID, tok token.Token) {
	if n := p.b.Get(id); n != nil && tok.Kind != token.Invalid {
		n.Name = tok.Name()
	}
}

func (p *Parser) setValue(id ast.NodeID, v string) {
	if n := p.b.Get(id); n != nil {
		n.Value = v
	}
}

func (p *Parser) setOp(id ast.NodeID, op token.Kind) {
	if n := p.b.Get(id); n != nil {
		n.Op = op
	}
}

func (p *Parser) setLeading(id ast.NodeID, tv []token.Trivia) {
	if n := p.b.Get(id); n != nil {
		n.Leading = tv
	}
}

func (p *Parser) flag(id ast.NodeID, f ast.NodeFlags) {
	if n := p.b.Get(id); n != nil {
		n.Flags |= f
	}
}

// textFrom returns source text from start up to the last consumed token.
func (p *Parser) textFrom(start uint32) string {
	if p.lastSpan.End <= start {
		return ""
	}
	return p.file.Text(source.Span{File: p.file.ID, Start: start, End: p.lastSpan.End})
}
