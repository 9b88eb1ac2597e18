package parser

import (
	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

// parseMethod — Sub/Function. Sub New даёт ConstructorBlock; в интерфейсе
// и с MustOverride тела нет и узел становится MethodStatement.
func (p *Parser) parseMethod(d declStart, ctx memberContext) ast.NodeID {
	kw := p.advance()
	nameTok, _ := p.expectName("expected method name")

	kind := ast.MethodBlock
	if kw.Kind == token.KwSub && nameTok.Kind == token.KwNew {
		kind = ast.ConstructorBlock
	}
	bodiless := ctx.inInterface || d.mods.has(token.KwMustOverride)
	if bodiless {
		kind = ast.MethodStatement
	}

	id := p.declNode(kind, d)
	p.setOp(id, kw.Kind)
	p.setName(id, nameTok)
	p.genericSuffix(id)
	p.parseSignatureTail(id)
	if bodiless {
		return p.finish(id)
	}
	p.endStatement()
	p.push(kw.Kind)
	p.add(id, p.parseBlock())
	p.closeBlock(id, kw.Kind)
	return id
}

// parseOperator — Operator +(a As T, b As T) As T, Widening Operator CType(...).
func (p *Parser) parseOperator(d declStart, ctx memberContext) ast.NodeID {
	p.advance()
	id := p.declNode(ast.OperatorBlock, d)
	if !p.atStatementEnd() {
		op := p.advance()
		if n := p.b.Get(id); n != nil {
			n.Name = op.Text
		}
	}
	p.parseSignatureTail(id)
	if ctx.inInterface {
		return p.finish(id)
	}
	p.endStatement()
	p.push(token.KwOperator)
	p.add(id, p.parseBlock())
	p.closeBlock(id, token.KwOperator)
	return id
}

// parseSignatureTail — (params) [As T] [Handles ...|Implements ...].
func (p *Parser) parseSignatureTail(id ast.NodeID) {
	if p.at(token.LParen) {
		p.add(id, p.parseParameterList())
	}
	if p.at(token.KwAs) {
		p.add(id, p.parseAsClause())
	}
	if p.at_or(token.KwHandles, token.KwImplements) {
		p.skipStatement()
	}
	p.finish(id)
}

// parseParameterList — "(ByVal a As Integer, Optional b As String = "")".
func (p *Parser) parseParameterList() ast.NodeID {
	lp := p.advance()
	list := p.node(ast.ParameterList, lp)
	p.skipEOL()
	for !p.at_or(token.RParen, token.EOF, token.EOL) {
		p.add(list, p.parseParameter())
		p.skipEOL()
		if !p.eat(token.Comma) {
			break
		}
		p.skipEOL()
	}
	p.skipEOL()
	p.expectClose(token.RParen)
	return p.finish(list)
}

func (p *Parser) parseParameter() ast.NodeID {
	start := p.peek()
	attrs := p.parseAttributeLists()
	id := p.node(ast.Parameter, start)
	for _, a := range attrs {
		p.add(id, a)
	}
	for p.at_or(token.KwByVal, token.KwByRef, token.KwOptional, token.KwParamArray) {
		p.advance()
	}
	name := p.parseDeclaredName()
	if n := p.b.Get(name); n != nil {
		nm := n.Name
		p.b.Get(id).Name = nm
	}
	p.add(id, name)
	if p.at(token.KwAs) {
		p.add(id, p.parseAsClause())
	}
	if p.eat(token.Assign) {
		p.add(id, p.parseExpr())
	}
	return p.finish(id)
}
