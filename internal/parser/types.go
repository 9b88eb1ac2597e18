package parser

import (
	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/token"
)

// parseTypeText съедает имя типа и возвращает его исходный текст.
// Типы в дереве хранятся строкой: правилам нужно только имя.
// ranks разрешает суффиксы массивов "()" и "(,)"; после New они принадлежат аргументам.
func (p *Parser) parseTypeText(ranks bool) (string, bool) {
	start := p.peek()
	if !p.memberNameAt(0) {
		p.warn(diag.SynExpectType, "expected type name")
		return "", false
	}
	p.advance()
	for {
		if p.at(token.LParen) && p.peekAt(1).Kind == token.KwOf {
			p.skipBalanced()
			continue
		}
		if p.at(token.Dot) && p.memberNameAt(1) {
			p.advance()
			p.advance()
			continue
		}
		break
	}
	for ranks && p.at(token.LParen) && p.rankFollows() {
		p.skipBalanced()
	}
	p.eat(token.Question)
	return p.textFrom(start.Span.Start), true
}

// rankFollows reports whether the parenthesis at the cursor holds only commas.
func (p *Parser) rankFollows() bool {
	for i := 1; ; i++ {
		switch p.peekAt(i).Kind {
		case token.Comma:
			continue
		case token.RParen:
			return true
		default:
			return false
		}
	}
}

// skipBalanced пропускает группу в круглых скобках вместе с вложенными.
func (p *Parser) skipBalanced() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.advance().Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

// skipAttributeBlock пропускает "<...>" перед типом результата.
func (p *Parser) skipAttributeBlock() {
	for p.at(token.Lt) {
		for !p.atStatementEnd() {
			if p.advance().Kind == token.Gt {
				break
			}
		}
	}
}

// parseAsClause — "As Type" или "As New Type(...)".
func (p *Parser) parseAsClause() ast.NodeID {
	asTok := p.advance()
	if p.at(token.KwNew) {
		id := p.node(ast.AsNewClause, asTok)
		creation := p.parseNew()
		if n := p.b.Get(creation); n != nil {
			v := n.Value
			p.setValue(id, v)
		}
		p.add(id, creation)
		return p.finish(id)
	}
	id := p.node(ast.AsClause, asTok)
	p.skipAttributeBlock()
	if text, ok := p.parseTypeText(true); ok {
		p.setValue(id, text)
	}
	return p.finish(id)
}

func (p *Parser) expectClose(k token.Kind) bool {
	code := diag.SynUnclosedParen
	msg := "expected ')'"
	if k == token.RBrace {
		code, msg = diag.SynUnclosedBrace, "expected '}'"
	}
	_, ok := p.expect(k, code, msg)
	return ok
}
