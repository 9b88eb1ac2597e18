package parser

import (
	"fmt"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/token"
)

func (p *Parser) parsePrimary() ast.NodeID {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.CharLit, token.DateLit,
		token.KwTrue, token.KwFalse, token.KwNothing:
		p.advance()
		id := p.node(ast.Literal, tok)
		p.setOp(id, tok.Kind)
		p.setValue(id, tok.Text)
		return id

	case token.InterpStringLit:
		p.advance()
		id := p.node(ast.InterpolatedString, tok)
		p.setValue(id, tok.Text)
		return id

	case token.Ident:
		switch {
		case (tok.IsWord("From") || tok.IsWord("Aggregate")) && p.rangeVariableAt(1):
			return p.parseQuery()
		case (tok.IsWord("Async") || tok.IsWord("Iterator")) && p.peekIs(1, token.KwSub, token.KwFunction):
			return p.parseLambda()
		}
		return p.identifier()

	case token.KwMe, token.KwMyBase, token.KwMyClass, token.KwGlobal:
		return p.identifier()

	case token.LParen:
		p.advance()
		id := p.node(ast.Parenthesized, tok)
		p.skipEOL()
		p.add(id, p.parseExpr())
		p.skipEOL()
		p.expectClose(token.RParen)
		return p.finish(id)

	case token.LBrace:
		return p.parseCollectionInitializer()

	case token.KwNew:
		return p.parseNew()

	case token.KwCType, token.KwDirectCast, token.KwTryCast:
		return p.parseCast()

	case token.KwIf:
		if p.peekAt(1).Kind == token.LParen {
			return p.parseTernary()
		}

	case token.KwGetType:
		p.advance()
		id := p.node(ast.GetTypeExpression, tok)
		if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after GetType"); ok {
			if text, ok := p.parseTypeText(true); ok {
				p.setValue(id, text)
			}
			p.expectClose(token.RParen)
		}
		return p.finish(id)

	case token.KwNameOf:
		p.advance()
		id := p.node(ast.NameOfExpression, tok)
		if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after NameOf"); ok {
			p.add(id, p.parseExpr())
			p.expectClose(token.RParen)
		}
		return p.finish(id)

	case token.KwSub, token.KwFunction:
		return p.parseLambda()

	case token.Dot, token.Bang:
		// .Member внутри With
		if p.memberNameAt(1) {
			return p.memberAccess(ast.MemberAccess, ast.NoNodeID)
		}
	}
	return p.bad(fmt.Sprintf("expected expression, found %q", tok.Text))
}

func (p *Parser) identifier() ast.NodeID {
	tok := p.advance()
	id := p.node(ast.Identifier, tok)
	p.setName(id, tok)
	p.genericSuffix(id)
	return p.finish(id)
}

// CType(expr, T), DirectCast(expr, T), TryCast(expr, T)
func (p *Parser) parseCast() ast.NodeID {
	kw := p.advance()
	id := p.node(ast.CastExpression, kw)
	p.setOp(id, kw.Kind)
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, fmt.Sprintf("expected '(' after %s", kw.Kind)); !ok {
		return id
	}
	p.skipEOL()
	p.add(id, p.parseExpr())
	p.skipEOL()
	if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' before target type"); ok {
		p.skipEOL()
		if text, ok := p.parseTypeText(true); ok {
			p.setValue(id, text)
		}
	}
	p.skipEOL()
	p.expectClose(token.RParen)
	return p.finish(id)
}

// If(cond, a, b) и If(a, b)
func (p *Parser) parseTernary() ast.NodeID {
	kw := p.advance()
	id := p.node(ast.TernaryIf, kw)
	args := p.parseArgumentList()
	for _, a := range p.b.Get(args).Children {
		p.add(id, a)
	}
	return p.finish(id)
}
