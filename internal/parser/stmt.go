package parser

import (
	"fmt"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/token"
)

// parseBlock разбирает операторы до закрывающей строки самого внутреннего открытого блока.
func (p *Parser) parseBlock() ast.NodeID {
	block := p.emptyBlock()
	for {
		// "Next j, i" закрывает внешние For на той же строке: конец строки
		// остаётся самому внешнему из них
		if p.pendingNext > 0 {
			return block
		}
		p.skipSeparators()
		if p.atBlockEnd() {
			return block
		}
		p.add(block, p.parseStatement())
		p.endStatement()
	}
}

// parseLineStatements — операторы однострочного If, разделённые ':'.
func (p *Parser) parseLineStatements() ast.NodeID {
	block := p.emptyBlock()
	for {
		for p.eat(token.Colon) {
		}
		if p.at_or(token.EOL, token.EOF, token.KwElse) {
			return block
		}
		p.add(block, p.parseStatement())
		if !p.at_or(token.Colon, token.EOL, token.EOF, token.KwElse) {
			p.warn(diag.SynExpectEndOfLine, fmt.Sprintf("expected end of statement, found %q", p.peek().Text))
			for !p.at_or(token.Colon, token.EOL, token.EOF, token.KwElse) {
				p.advance()
			}
		}
	}
}

// parseStatement разбирает один оператор и оставляет курсор на его конце.
func (p *Parser) parseStatement() ast.NodeID {
	tok := p.peek()
	switch tok.Kind {
	case token.KwDim, token.KwStatic, token.KwConst:
		return p.parseLocalDeclaration()
	case token.KwIf:
		return p.parseIf()
	case token.KwFor:
		return p.parseFor()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDo()
	case token.KwSelect:
		return p.parseSelect()
	case token.KwTry:
		return p.parseTry()
	case token.KwWith, token.KwSyncLock:
		return p.parseWith()
	case token.KwUsing:
		return p.parseUsing()
	case token.KwReturn:
		return p.parseKeywordExpr(ast.ReturnStatement)
	case token.KwThrow:
		return p.parseKeywordExpr(ast.ThrowStatement)
	case token.KwExit:
		return p.parseJump(ast.ExitStatement)
	case token.KwContinue:
		return p.parseJump(ast.ContinueStatement)
	case token.KwCall:
		p.advance()
		id := p.node(ast.ExpressionStatement, tok)
		p.setOp(id, token.KwCall)
		p.add(id, p.parsePostfix())
		return p.finish(id)
	case token.KwRaiseEvent, token.KwAddHandler, token.KwRemoveHandler, token.KwErase:
		return p.parseOther(true)
	case token.KwReDim:
		p.advance()
		id := p.node(ast.OtherStatement, tok)
		p.setOp(id, tok.Kind)
		p.eatWord("Preserve")
		p.parseExprList(id)
		return p.finish(id)
	case token.KwGoTo, token.KwResume, token.KwStop, token.KwEnd:
		return p.parseOther(false)
	case token.Ident:
		switch {
		case tok.IsWord("On") && p.peekAt(1).IsWord("Error"):
			p.advance()
			id := p.node(ast.OtherStatement, tok)
			p.setName(id, tok)
			p.skipStatement()
			return p.finish(id)
		case tok.IsWord("Yield") && p.startsOperand(p.peekAt(1)):
			p.advance()
			id := p.node(ast.OtherStatement, tok)
			p.setName(id, tok)
			p.add(id, p.parseExpr())
			return p.finish(id)
		case tok.IsWord("Await"):
			id := p.node(ast.ExpressionStatement, tok)
			p.add(id, p.parseExpr())
			return p.finish(id)
		}
	}
	return p.parseSimpleStatement()
}

// parseSimpleStatement — присваивание или вызов.
func (p *Parser) parseSimpleStatement() ast.NodeID {
	target := p.parsePostfix()
	op := p.peek()
	if isAssignOp(op.Kind) {
		p.advance()
		id := p.b.New(ast.Assignment, p.spanOf(target))
		p.setOp(id, op.Kind)
		p.add(id, target)
		p.skipEOL()
		p.add(id, p.parseExpr())
		return id
	}
	id := p.b.New(ast.ExpressionStatement, p.spanOf(target))
	p.add(id, target)
	return id
}

// Return [expr], Throw [expr]
func (p *Parser) parseKeywordExpr(kind ast.Kind) ast.NodeID {
	kw := p.advance()
	id := p.node(kind, kw)
	if !p.atStatementEnd() && !p.at(token.KwElse) {
		p.add(id, p.parseExpr())
	}
	return p.finish(id)
}

// Exit Sub, Continue For: Op хранит вид блока.
func (p *Parser) parseJump(kind ast.Kind) ast.NodeID {
	kw := p.advance()
	id := p.node(kind, kw)
	if p.peek().Kind.IsKeyword() {
		p.setOp(id, p.advance().Kind)
	}
	return p.finish(id)
}

// parseOther — операторы без собственной структуры; withExprs разбирает список выражений.
func (p *Parser) parseOther(withExprs bool) ast.NodeID {
	kw := p.advance()
	id := p.node(ast.OtherStatement, kw)
	p.setOp(id, kw.Kind)
	if withExprs && !p.atStatementEnd() {
		p.parseExprList(id)
	} else {
		for !p.atStatementEnd() && !p.at(token.KwElse) {
			p.advance()
		}
	}
	return p.finish(id)
}

// parseLocalDeclaration — Dim/Static/Const.
func (p *Parser) parseLocalDeclaration() ast.NodeID {
	kw := p.advance()
	id := p.node(ast.LocalDeclaration, kw)
	p.setOp(id, kw.Kind)
	// Static Dim x
	for p.at_or(token.KwDim, token.KwStatic, token.KwConst) {
		p.advance()
	}
	p.parseDeclarators(id)
	return p.finish(id)
}

// parseDeclarators: "a, b As Integer, c As New T(), d = 1".
// Имена до As делят один тип и попадают в один VariableDeclarator.
func (p *Parser) parseDeclarators(parent ast.NodeID) {
	for {
		d := p.node(ast.VariableDeclarator, p.peek())
		for {
			name := p.parseDeclaredName()
			if !name.IsValid() {
				break
			}
			p.add(d, name)
			if p.at(token.Comma) && p.memberNameAt(1) {
				p.advance()
				continue
			}
			break
		}
		if p.at(token.KwAs) {
			p.add(d, p.parseAsClause())
		}
		if p.eat(token.Assign) {
			p.skipEOL()
			p.add(d, p.parseExpr())
		}
		p.finish(d)
		p.add(parent, d)
		if !p.eat(token.Comma) {
			return
		}
		p.skipEOL()
	}
}

// parseDeclaredName — имя с необязательными границами массива и '?'.
func (p *Parser) parseDeclaredName() ast.NodeID {
	tok, ok := p.expectName("expected variable name")
	if !ok {
		return ast.NoNodeID
	}
	id := p.node(ast.DeclaredName, tok)
	p.setName(id, tok)
	if p.at(token.LParen) {
		p.skipBalanced()
	}
	p.eat(token.Question)
	return p.finish(id)
}
