package parser

import (
	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

// rangeVariableAt reports whether "name In" or "name As" starts n tokens ahead.
func (p *Parser) rangeVariableAt(n int) bool {
	return p.memberNameAt(n) && p.peekIs(n+1, token.KwIn, token.KwAs)
}

// parseQuery — From x In xs Where ... Select ...
// Переменные диапазона хранятся как Identifier, выражения предложений — как дети по порядку.
func (p *Parser) parseQuery() ast.NodeID {
	id := p.node(ast.QueryExpression, p.peek())
	for {
		tok := p.peek()
		switch {
		case tok.IsWord("From"), tok.IsWord("Aggregate"):
			p.advance()
			p.parseRangeVariables(id)
		case tok.IsWord("Join"):
			p.advance()
			p.parseJoin(id)
		case tok.IsWord("Group") && p.peekAt(1).IsWord("Join"):
			p.advance()
			p.advance()
			p.parseJoin(id)
			if p.eatWord("Into") {
				p.parseExprList(id)
			}
		case tok.IsWord("Group"):
			p.advance()
			if !p.atWord("By") {
				p.parseExprList(id)
			}
			if p.eatWord("By") {
				p.parseExprList(id)
			}
			if p.eatWord("Into") {
				p.parseExprList(id)
			}
		case tok.IsWord("Where"), tok.IsWord("Let"):
			p.advance()
			p.skipEOL()
			p.add(id, p.parseExpr())
		case tok.Kind == token.KwSelect:
			p.advance()
			p.parseExprList(id)
		case tok.IsWord("Order"):
			p.advance()
			p.eatWord("By")
			for {
				p.skipEOL()
				p.add(id, p.parseExpr())
				if !p.eatWord("Ascending") {
					p.eatWord("Descending")
				}
				if !p.eat(token.Comma) {
					break
				}
			}
		case tok.IsWord("Distinct"):
			p.advance()
		case tok.IsWord("Skip"), tok.IsWord("Take"):
			p.advance()
			p.eat(token.KwWhile)
			p.add(id, p.parseExpr())
		case tok.IsWord("Into"):
			p.advance()
			p.parseExprList(id)
		default:
			return p.finish(id)
		}
		p.continueQuery()
	}
}

// continueQuery — неявное продолжение строки перед следующим предложением запроса.
func (p *Parser) continueQuery() {
	n := 0
	for p.peekAt(n).Kind == token.EOL {
		n++
	}
	if n == 0 {
		return
	}
	next := p.peekAt(n)
	if !isQueryClause(next) || p.peekIs(n+1, token.Assign, token.Dot, token.LParen, token.KwCase) {
		return
	}
	for range n {
		p.advance()
	}
}

func (p *Parser) parseRangeVariables(q ast.NodeID) {
	for {
		p.skipEOL()
		if p.memberNameAt(0) {
			p.add(q, p.identifier())
		}
		if p.at(token.KwAs) {
			p.advance()
			p.parseTypeText(true)
		}
		if p.eat(token.KwIn) {
			p.skipEOL()
			p.add(q, p.parseExpr())
		} else if p.eat(token.Assign) {
			p.add(q, p.parseExpr())
		}
		if !p.eat(token.Comma) {
			return
		}
	}
}

// Join y In ys On x.Id Equals y.Id
func (p *Parser) parseJoin(q ast.NodeID) {
	p.parseRangeVariables(q)
	p.skipEOL()
	if !p.eatWord("On") {
		return
	}
	for {
		p.skipEOL()
		p.add(q, p.parseExpr())
		if p.eatWord("Equals") {
			p.add(q, p.parseExpr())
		}
		if !p.eat(token.KwAnd) {
			return
		}
	}
}

func (p *Parser) parseExprList(q ast.NodeID) {
	for {
		p.skipEOL()
		p.add(q, p.parseExpr())
		if !p.eat(token.Comma) {
			return
		}
	}
}
