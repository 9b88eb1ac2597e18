package parser

import (
	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

// parsePostfix — первичное выражение и цепочка '.', '!', '?.' и вызовов.
func (p *Parser) parsePostfix() ast.NodeID {
	left := p.parsePrimary()
	for {
		switch p.peek().Kind {
		case token.Dot, token.Bang:
			if !p.memberNameAfterOp() {
				return left
			}
			left = p.memberAccess(ast.MemberAccess, left)
		case token.QuestionDot:
			if !p.memberNameAfterOp() {
				return left
			}
			left = p.memberAccess(ast.ConditionalAccess, left)
		case token.LParen:
			left = p.invocation(left)
		default:
			return left
		}
	}
}

// memberNameAt reports whether the token n ahead can name a member.
func (p *Parser) memberNameAt(n int) bool {
	tok := p.peekAt(n)
	return tok.Kind == token.Ident || tok.Kind.IsKeyword()
}

// memberNameAfterOp is memberNameAt(1) allowing the name on the next line:
// "items." at the end of a line continues implicitly.
func (p *Parser) memberNameAfterOp() bool {
	n := 1
	for p.peekAt(n).Kind == token.EOL {
		n++
	}
	return p.memberNameAt(n)
}

// memberAccess builds receiver.Name; a missing receiver means the access sits inside With.
func (p *Parser) memberAccess(kind ast.Kind, receiver ast.NodeID) ast.NodeID {
	dot := p.advance()
	var id ast.NodeID
	if receiver.IsValid() {
		id = p.b.New(kind, p.spanOf(receiver))
		p.add(id, receiver)
	} else {
		id = p.node(kind, dot)
	}
	if dot.Kind == token.Bang {
		p.setOp(id, token.Bang)
	}
	p.skipEOL()
	name := p.advance()
	p.setName(id, name)
	p.genericSuffix(id)
	return p.finish(id)
}

func (p *Parser) invocation(callee ast.NodeID) ast.NodeID {
	id := p.b.New(ast.Invocation, p.spanOf(callee))
	p.add(id, callee)
	p.add(id, p.parseArgumentList())
	return p.finish(id)
}

// genericSuffix stores "(Of T)" after a name in Value.
func (p *Parser) genericSuffix(id ast.NodeID) {
	if p.at(token.LParen) && p.peekAt(1).Kind == token.KwOf {
		start := p.peek().Span.Start
		p.skipBalanced()
		p.setValue(id, p.textFrom(start))
	}
}

// parseArgumentList разбирает "( ... )" с пропущенными и именованными аргументами.
func (p *Parser) parseArgumentList() ast.NodeID {
	lp := p.advance()
	list := p.node(ast.ArgumentList, lp)
	p.skipEOL()
	if p.eat(token.RParen) {
		return p.finish(list)
	}
	for {
		p.skipEOL()
		if p.at_or(token.Comma, token.RParen) {
			sp := p.peek().Span
			sp.End = sp.Start
			p.add(list, p.b.New(ast.OmittedArgument, sp))
		} else {
			p.add(list, p.parseArgument())
		}
		p.skipEOL()
		if !p.eat(token.Comma) {
			break
		}
	}
	p.skipEOL()
	p.expectClose(token.RParen)
	return p.finish(list)
}

func (p *Parser) parseArgument() ast.NodeID {
	if p.memberNameAt(0) && p.peekAt(1).Kind == token.ColonAssign {
		name := p.advance()
		id := p.node(ast.NamedArgument, name)
		p.setName(id, name)
		p.advance()
		p.skipEOL()
		p.add(id, p.parseExpr())
		return id
	}
	arg := p.parseExpr()
	if p.at(token.KwTo) {
		// границы массива: ReDim a(0 To n)
		p.advance()
		arg = p.binary(token.KwTo, arg, p.parseExpr())
	}
	return arg
}
