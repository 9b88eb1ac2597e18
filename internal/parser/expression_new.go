package parser

import (
	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/token"
)

// parseNew — New T(args), New T() {..}, New T With {..}, New T From {..}, New With {..}.
func (p *Parser) parseNew() ast.NodeID {
	kw := p.advance()
	id := p.node(ast.ObjectCreation, kw)
	if p.at(token.KwWith) {
		p.advance()
		p.add(id, p.parseMemberInitializer())
		return p.finish(id)
	}
	if text, ok := p.parseTypeText(false); ok {
		p.setValue(id, text)
	}
	if p.at(token.LParen) {
		p.add(id, p.parseArgumentList())
	}
	switch {
	case p.at(token.LBrace):
		if n := p.b.Get(id); n != nil {
			n.Kind = ast.ArrayCreation
		}
		p.add(id, p.parseCollectionInitializer())
	case p.atWord("From") && p.peekIs(1, token.LBrace):
		p.advance()
		p.add(id, p.parseCollectionInitializer())
	case p.at(token.KwWith) && p.peekIs(1, token.LBrace):
		p.advance()
		p.add(id, p.parseMemberInitializer())
	}
	return p.finish(id)
}

// parseCollectionInitializer — {a, b, {c, d}}
func (p *Parser) parseCollectionInitializer() ast.NodeID {
	lb := p.advance()
	id := p.node(ast.CollectionInitializer, lb)
	p.skipEOL()
	for !p.at_or(token.RBrace, token.EOF) {
		p.add(id, p.parseExpr())
		p.skipEOL()
		if !p.eat(token.Comma) {
			break
		}
		p.skipEOL()
	}
	p.expectClose(token.RBrace)
	return p.finish(id)
}

// parseMemberInitializer — {.Name = value, Key .Id = 1}
func (p *Parser) parseMemberInitializer() ast.NodeID {
	lb, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	id := p.node(ast.CollectionInitializer, lb)
	if !ok {
		return id
	}
	p.skipEOL()
	for !p.at_or(token.RBrace, token.EOF) {
		p.eatWord("Key")
		if p.at(token.Dot) && p.memberNameAt(1) && p.peekIs(2, token.Assign) {
			dot := p.advance()
			field := p.node(ast.FieldInitializer, dot)
			p.setName(field, p.advance())
			p.advance()
			p.skipEOL()
			p.add(field, p.parseExpr())
			p.add(id, field)
		} else {
			p.add(id, p.parseExpr())
		}
		p.skipEOL()
		if !p.eat(token.Comma) {
			break
		}
		p.skipEOL()
	}
	p.expectClose(token.RBrace)
	return p.finish(id)
}
