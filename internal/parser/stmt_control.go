package parser

import (
	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/token"
)

// parseIf различает блочную и однострочную формы по тому, что стоит после Then.
func (p *Parser) parseIf() ast.NodeID {
	ifTok := p.advance()
	cond := p.parseExpr()
	if !p.eat(token.KwThen) && !p.at(token.EOL) {
		p.warn(diag.SynExpectThen, "expected 'Then'")
	}

	if !p.at_or(token.EOL, token.EOF) {
		id := p.node(ast.SingleLineIf, ifTok)
		p.add(id, cond)
		p.add(id, p.parseLineStatements())
		if p.at(token.KwElse) {
			clause := p.node(ast.ElseClause, p.advance())
			p.add(clause, p.parseLineStatements())
			p.add(id, clause)
		}
		return p.finish(id)
	}

	id := p.node(ast.IfBlock, ifTok)
	p.add(id, cond)
	p.push(token.KwIf)
	p.add(id, p.parseBlock())
	for {
		tok := p.peek()
		if tok.Kind == token.KwElseIf || (tok.Kind == token.KwElse && p.peekIs(1, token.KwIf)) {
			clause := p.node(ast.ElseIfClause, p.advance())
			if tok.Kind == token.KwElse {
				p.advance()
			}
			p.add(clause, p.parseExpr())
			p.eat(token.KwThen)
			p.endStatement()
			p.add(clause, p.parseBlock())
			p.add(id, clause)
			continue
		}
		if tok.Kind == token.KwElse {
			clause := p.node(ast.ElseClause, p.advance())
			p.endStatement()
			p.add(clause, p.parseBlock())
			p.add(id, clause)
			continue
		}
		break
	}
	p.closeBlock(id, token.KwIf)
	return id
}

// parseFor — For i = a To b [Step s] и For Each x In xs.
func (p *Parser) parseFor() ast.NodeID {
	forTok := p.advance()
	if p.eat(token.KwEach) {
		id := p.node(ast.ForEachBlock, forTok)
		p.add(id, p.parseLoopControl())
		if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'In'"); ok {
			p.skipEOL()
			p.add(id, p.parseExpr())
		}
		return p.loopBody(id, token.KwFor)
	}

	id := p.node(ast.ForBlock, forTok)
	p.add(id, p.parseLoopControl())
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '='"); ok {
		p.add(id, p.parseExpr())
	}
	if _, ok := p.expect(token.KwTo, diag.SynUnexpectedToken, "expected 'To'"); ok {
		p.add(id, p.parseExpr())
	}
	if p.eat(token.KwStep) {
		p.add(id, p.parseExpr())
	}
	return p.loopBody(id, token.KwFor)
}

// parseLoopControl — "x As T" даёт VariableDeclarator, иначе выражение.
func (p *Parser) parseLoopControl() ast.NodeID {
	if p.memberNameAt(0) && p.peekIs(1, token.KwAs) {
		d := p.node(ast.VariableDeclarator, p.peek())
		p.add(d, p.parseDeclaredName())
		p.add(d, p.parseAsClause())
		return p.finish(d)
	}
	return p.parsePostfix()
}

func (p *Parser) loopBody(id ast.NodeID, closer token.Kind) ast.NodeID {
	p.endStatement()
	p.push(closer)
	p.add(id, p.parseBlock())
	p.closeBlock(id, closer)
	return id
}

func (p *Parser) parseWhile() ast.NodeID {
	id := p.node(ast.WhileBlock, p.advance())
	p.add(id, p.parseExpr())
	return p.loopBody(id, token.KwWhile)
}

// Do [While|Until c] ... Loop [While|Until c]
func (p *Parser) parseDo() ast.NodeID {
	id := p.node(ast.DoLoopBlock, p.advance())
	if p.eat(token.KwWhile) || p.eatWord("Until") {
		p.add(id, p.parseExpr())
	}
	p.loopBody(id, token.KwDo)
	if p.eat(token.KwWhile) || p.eatWord("Until") {
		p.add(id, p.parseExpr())
	}
	return id
}

func (p *Parser) parseSelect() ast.NodeID {
	id := p.node(ast.SelectBlock, p.advance())
	p.eat(token.KwCase)
	p.add(id, p.parseExpr())
	p.endStatement()
	p.push(token.KwSelect)
	for {
		p.skipSeparators()
		if p.at(token.KwCase) {
			p.add(id, p.parseCaseBlock())
			continue
		}
		if p.atBlockEnd() {
			break
		}
		p.warn(diag.SynUnexpectedToken, "expected 'Case'")
		p.skipLine()
	}
	p.closeBlock(id, token.KwSelect)
	return id
}

// parseCaseBlock — Case 1, 2 To 5, Is > 9 | Case Else.
func (p *Parser) parseCaseBlock() ast.NodeID {
	id := p.node(ast.CaseBlock, p.advance())
	if p.eat(token.KwElse) {
		p.setOp(id, token.KwElse)
	} else {
		for {
			p.add(id, p.parseCaseClause())
			if !p.eat(token.Comma) {
				break
			}
			p.skipEOL()
		}
	}
	p.endStatement()
	p.add(id, p.parseBlock())
	return id
}

func (p *Parser) parseCaseClause() ast.NodeID {
	if p.at(token.KwIs) || binaryPrec(p.peek().Kind) == precComparison {
		isTok := p.peek()
		p.eat(token.KwIs)
		op := p.advance()
		id := p.node(ast.UnaryExpression, isTok)
		p.setOp(id, op.Kind)
		p.setName(id, isTok)
		p.add(id, p.parseBinary(precComparison+1))
		return id
	}
	expr := p.parseExpr()
	if p.eat(token.KwTo) {
		return p.binary(token.KwTo, expr, p.parseExpr())
	}
	return expr
}

// Try ... Catch [e As T] [When cond] ... Finally ... End Try
func (p *Parser) parseTry() ast.NodeID {
	id := p.node(ast.TryBlock, p.advance())
	p.endStatement()
	p.push(token.KwTry)
	p.add(id, p.parseBlock())
	for p.at(token.KwCatch) {
		clause := p.node(ast.CatchClause, p.advance())
		if p.memberNameAt(0) && !p.at(token.KwWhen) {
			p.add(clause, p.parseDeclaredName())
			if p.at(token.KwAs) {
				p.add(clause, p.parseAsClause())
			}
		}
		if p.eat(token.KwWhen) {
			p.add(clause, p.parseExpr())
		}
		p.endStatement()
		p.add(clause, p.parseBlock())
		p.add(id, clause)
	}
	if p.at(token.KwFinally) {
		clause := p.node(ast.FinallyClause, p.advance())
		p.endStatement()
		p.add(clause, p.parseBlock())
		p.add(id, clause)
	}
	p.closeBlock(id, token.KwTry)
	return id
}

// With x / SyncLock x
func (p *Parser) parseWith() ast.NodeID {
	kw := p.advance()
	kind := ast.WithBlock
	if kw.Kind == token.KwSyncLock {
		kind = ast.SyncLockBlock
	}
	id := p.node(kind, kw)
	p.add(id, p.parseExpr())
	return p.loopBody(id, kw.Kind)
}

// Using r As New T(), s = Open() | Using expr
func (p *Parser) parseUsing() ast.NodeID {
	id := p.node(ast.UsingBlock, p.advance())
	if p.memberNameAt(0) && p.peekIs(1, token.KwAs, token.Assign) {
		p.parseDeclarators(id)
	} else {
		p.add(id, p.parseExpr())
	}
	return p.loopBody(id, token.KwUsing)
}
