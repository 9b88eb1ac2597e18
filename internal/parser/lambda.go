package parser

import (
	"codecleanup/internal/ast"
	"codecleanup/internal/source"
	"codecleanup/internal/token"
)

// parseLambda — Function(x) x * 2, Sub(x) Foo(x) и многострочные формы до End Sub/End Function.
func (p *Parser) parseLambda() ast.NodeID {
	start := p.peek()
	for p.atWord("Async") || p.atWord("Iterator") {
		p.advance()
	}
	kw := p.advance()
	id := p.node(ast.Lambda, start)
	p.setOp(id, kw.Kind)
	if p.at(token.LParen) {
		p.add(id, p.parseParameterList())
	}
	if p.at(token.KwAs) {
		p.add(id, p.parseAsClause())
	}

	if p.at(token.EOL) {
		p.flag(id, ast.FlagMultiLine)
		p.push(kw.Kind)
		p.add(id, p.parseBlock())
		p.closeBlock(id, kw.Kind)
		return id
	}

	if kw.Kind == token.KwFunction {
		p.add(id, p.parseExpr())
		return p.finish(id)
	}
	block := p.emptyBlock()
	p.add(block, p.parseStatement())
	p.add(id, block)
	return p.finish(id)
}

// emptyBlock creates a zero-width Block at the cursor.
func (p *Parser) emptyBlock() ast.NodeID {
	sp := p.peek().Span
	return p.b.New(ast.Block, source.Span{File: sp.File, Start: sp.Start, End: sp.Start})
}
