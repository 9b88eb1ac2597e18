package parser

import (
	"fmt"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/token"
)

// parseProperty — блок с Get/Set или однострочное автосвойство.
func (p *Parser) parseProperty(d declStart, ctx memberContext) ast.NodeID {
	p.advance()
	id := p.declNode(ast.PropertyBlock, d)
	if name, ok := p.expectName("expected property name"); ok {
		p.setName(id, name)
	}
	if p.at(token.LParen) {
		p.add(id, p.parseParameterList())
	}
	if p.at(token.KwAs) {
		p.add(id, p.parseAsClause())
	}
	if p.eat(token.Assign) {
		p.skipEOL()
		p.add(id, p.parseExpr())
	}
	if p.at(token.KwImplements) {
		p.skipStatement()
	}
	p.finish(id)

	if ctx.inInterface || d.mods.has(token.KwMustOverride) || !p.accessorAhead(token.KwGet, token.KwSet) {
		if n := p.b.Get(id); n != nil {
			n.Kind = ast.PropertyStatement
		}
		p.endStatement()
		return id
	}
	p.endStatement()
	p.push(token.KwProperty)
	p.parseAccessors(id, token.KwGet, token.KwSet)
	p.closeBlock(id, token.KwProperty)
	return id
}

// accessorAhead reports whether the next non-empty line starts an accessor of kinds.
func (p *Parser) accessorAhead(kinds ...token.Kind) bool {
	i := 0
	for p.peekIs(i, token.EOL, token.Colon) {
		i++
	}
	if p.peekIs(i, token.Lt) {
		for !p.peekIs(i, token.Gt, token.EOF) {
			i++
		}
		i++
		for p.peekIs(i, token.EOL) {
			i++
		}
	}
	for p.peekIs(i, token.KwPublic, token.KwPrivate, token.KwProtected, token.KwFriend) {
		i++
	}
	return p.peekIs(i, kinds...)
}

// parseAccessors разбирает Get/Set или AddHandler/RemoveHandler/RaiseEvent до конца владельца.
func (p *Parser) parseAccessors(owner ast.NodeID, kinds ...token.Kind) {
	for {
		p.skipSeparators()
		if !p.accessorAhead(kinds...) {
			if p.atBlockEnd() {
				return
			}
			p.warn(diag.SynUnexpectedToken, fmt.Sprintf("expected accessor, found %q", p.peek().Text))
			p.skipLine()
			continue
		}
		start := p.peek()
		attrs := p.parseAttributeLists()
		p.parseModifiers()
		kw := p.advance()
		acc := p.declNode(ast.Accessor, declStart{tok: start, attrs: attrs})
		p.setOp(acc, kw.Kind)
		if p.at(token.LParen) {
			p.add(acc, p.parseParameterList())
		}
		p.endStatement()
		p.push(kw.Kind)
		p.add(acc, p.parseBlock())
		p.closeBlock(acc, kw.Kind)
		p.add(owner, acc)
	}
}
