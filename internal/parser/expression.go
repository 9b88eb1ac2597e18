package parser

import (
	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/source"
	"codecleanup/internal/token"
)

// parseExpr — выражение целиком, включая сравнения через '='.
func (p *Parser) parseExpr() ast.NodeID {
	return p.parseBinary(precXor)
}

// parseBinary — разбор бинарных выражений методом "precedence climbing".
func (p *Parser) parseBinary(minPrec int) ast.NodeID {
	left := p.parseUnary()
	for {
		op := p.peek()
		prec := binaryPrec(op.Kind)
		if prec < 0 || prec < minPrec {
			return left
		}
		p.advance()
		p.skipEOL()
		right := p.parseBinary(prec + 1)
		left = p.binary(op.Kind, left, right)
	}
}

func (p *Parser) binary(op token.Kind, left, right ast.NodeID) ast.NodeID {
	ls := p.spanOf(left)
	id := p.b.New(ast.BinaryExpression, ls)
	p.setOp(id, op)
	p.add(id, left)
	p.add(id, right)
	return id
}

// parseUnary — префиксные операторы; Not связывает слабее сравнений, минус сильнее всего кроме '^'.
func (p *Parser) parseUnary() ast.NodeID {
	tok := p.peek()
	switch {
	case tok.Kind == token.KwNot:
		return p.unary(tok, precComparison)
	case tok.Kind == token.Minus || tok.Kind == token.Plus:
		return p.unary(tok, precPower)
	case tok.Kind == token.KwAddressOf:
		return p.unary(tok, precPower)
	case tok.IsWord("Await") && p.startsOperand(p.peekAt(1)):
		return p.unary(tok, precPower)
	case tok.Kind == token.KwTypeOf:
		return p.parseTypeOf()
	}
	return p.parsePostfix()
}

func (p *Parser) unary(op token.Token, operandPrec int) ast.NodeID {
	p.advance()
	id := p.node(ast.UnaryExpression, op)
	p.setOp(id, op.Kind)
	if op.Kind == token.Ident {
		p.setName(id, op)
	}
	p.add(id, p.parseBinary(operandPrec))
	return id
}

// TypeOf x Is T
func (p *Parser) parseTypeOf() ast.NodeID {
	tok := p.advance()
	id := p.node(ast.TypeOfExpression, tok)
	p.add(id, p.parsePostfix())
	if p.at_or(token.KwIs, token.KwIsNot) {
		p.setOp(id, p.advance().Kind)
		if text, ok := p.parseTypeText(true); ok {
			p.setValue(id, text)
		}
	} else {
		p.warn(diag.SynUnexpectedToken, "expected 'Is' after 'TypeOf' operand")
	}
	return p.finish(id)
}

// startsOperand reports whether tok can begin an expression on the same line.
func (p *Parser) startsOperand(tok token.Token) bool {
	switch tok.Kind {
	case token.Ident, token.KwMe, token.KwMyBase, token.KwMyClass, token.KwNew,
		token.KwCType, token.KwDirectCast, token.KwTryCast, token.KwIf, token.KwGetType,
		token.KwNameOf, token.KwTrue, token.KwFalse, token.KwNothing, token.KwGlobal:
		return true
	}
	return tok.IsLiteral()
}

// bad creates an empty BadExpression at the cursor without consuming input.
func (p *Parser) bad(msg string) ast.NodeID {
	sp := p.getDiagnosticSpan()
	p.warn(diag.SynExpectExpression, msg)
	return p.b.New(ast.BadExpression, source.Span{File: sp.File, Start: sp.Start, End: sp.Start})
}
