package parser

import (
	"fmt"
	"slices"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/source"
	"codecleanup/internal/token"
)

// endable — ключевые слова, которые могут стоять после End.
var endable = map[token.Kind]bool{
	token.KwSub: true, token.KwFunction: true, token.KwOperator: true, token.KwProperty: true,
	token.KwGet: true, token.KwSet: true, token.KwEvent: true, token.KwAddHandler: true,
	token.KwRemoveHandler: true, token.KwRaiseEvent: true, token.KwClass: true, token.KwModule: true,
	token.KwStructure: true, token.KwInterface: true, token.KwEnum: true, token.KwNamespace: true,
	token.KwIf: true, token.KwSelect: true, token.KwTry: true, token.KwWhile: true,
	token.KwWith: true, token.KwUsing: true, token.KwSyncLock: true,
}

// closer classifies the token at the cursor as a block terminator. final is
// false for clauses that continue a block: Else, Case, Catch, Finally.
func (p *Parser) closer() (kind token.Kind, final, ok bool) {
	switch p.peek().Kind {
	case token.KwEnd:
		if next := p.peekAt(1); endable[next.Kind] {
			return next.Kind, true, true
		}
	case token.KwNext:
		return token.KwFor, true, true
	case token.KwLoop:
		return token.KwDo, true, true
	case token.KwElse, token.KwElseIf:
		return token.KwIf, false, true
	case token.KwCase:
		return token.KwSelect, false, true
	case token.KwCatch, token.KwFinally:
		return token.KwTry, false, true
	}
	return token.Invalid, false, false
}

func (p *Parser) push(k token.Kind) {
	p.open = append(p.open, k)
}

func (p *Parser) pop(k token.Kind) {
	for j := len(p.open) - 1; j >= 0; j-- {
		if p.open[j] == k {
			p.open = slices.Delete(p.open, j, j+1)
			return
		}
	}
}

func (p *Parser) isOpen(k token.Kind) bool {
	return slices.Contains(p.open, k)
}

// atBlockEnd reports whether the statement list of the innermost block ends
// at the cursor. Closers that belong to no open block are reported and skipped.
func (p *Parser) atBlockEnd() bool {
	for {
		if p.at(token.EOF) || p.pendingNext > 0 {
			return true
		}
		if kind, final, ok := p.closer(); ok {
			if p.isOpen(kind) {
				return true
			}
			p.strayCloser(kind, final)
			p.skipSeparators()
			continue
		}
		// объявление внутри тела метода: тело не закрыто
		return p.atDeclarationStart()
	}
}

// atDeclarationStart reports whether a member declaration begins at the cursor.
func (p *Parser) atDeclarationStart() bool {
	tok := p.peek()
	switch tok.Kind {
	case token.KwPublic, token.KwPrivate, token.KwProtected, token.KwFriend, token.KwShared,
		token.KwShadows, token.KwOverrides, token.KwOverridable, token.KwNotOverridable,
		token.KwMustOverride, token.KwMustInherit, token.KwNotInheritable, token.KwOverloads,
		token.KwPartial, token.KwWithEvents, token.KwWidening, token.KwNarrowing,
		token.KwClass, token.KwModule, token.KwStructure, token.KwInterface, token.KwEnum,
		token.KwNamespace, token.KwProperty, token.KwOperator, token.KwEvent, token.KwDeclare,
		token.KwDelegate, token.KwImports, token.KwOption, token.KwInherits, token.KwImplements,
		token.Lt:
		return true
	case token.KwSub, token.KwFunction:
		return p.peekAt(1).Kind != token.LParen
	}
	return false
}

// closeBlock consumes the closer of block id, or reports why it is missing.
func (p *Parser) closeBlock(id ast.NodeID, want token.Kind) {
	p.pop(want)
	if want == token.KwFor && p.pendingNext > 0 {
		p.pendingNext--
		p.finish(id)
		return
	}
	kind, final, ok := p.closer()
	if ok && final && kind == want {
		switch p.advance().Kind {
		case token.KwEnd:
			p.advance()
		case token.KwNext:
			p.consumeNextVariables()
		}
		p.finish(id)
		return
	}

	p.flag(id, ast.FlagRecovered)
	if ok {
		p.errAt(diag.SynMismatchedEnd, p.closerSpan(),
			fmt.Sprintf("expected '%s', found '%s'", closerText(want), p.closerSpelling()))
		return
	}
	start := p.spanOf(id)
	p.errAt(diag.SynUnterminatedBlock, source.Span{File: start.File, Start: start.Start, End: start.Start},
		fmt.Sprintf("'%s' block is not terminated; expected '%s'", openerText(want), closerText(want)))
}

// consumeNextVariables съедает "i, j" после Next; каждая лишняя переменная
// закрывает ещё один внешний For.
func (p *Parser) consumeNextVariables() {
	outer := 0
	for i := len(p.open) - 1; i >= 0 && p.open[i] == token.KwFor; i-- {
		outer++
	}
	for !p.atStatementEnd() {
		if p.at(token.Comma) {
			if outer > 0 {
				p.pendingNext++
				outer--
			} else {
				p.errAt(diag.SynStrayEnd, p.peek().Span, "'Next' names more loops than are open")
			}
		}
		p.advance()
	}
}

func (p *Parser) strayCloser(kind token.Kind, final bool) {
	sp, text := p.closerSpan(), p.closerSpelling()
	if final {
		p.errAt(diag.SynStrayEnd, sp, fmt.Sprintf("'%s' without a matching '%s'", text, openerText(kind)))
	} else {
		p.errAt(diag.SynUnexpectedToken, sp, fmt.Sprintf("'%s' without '%s'", text, openerText(kind)))
	}
	p.skipLine()
}

func (p *Parser) closerSpan() source.Span {
	sp := p.peek().Span
	if p.at(token.KwEnd) {
		sp = sp.Cover(p.peekAt(1).Span)
	}
	return sp
}

func (p *Parser) closerSpelling() string {
	if p.at(token.KwEnd) {
		return "End " + p.peekAt(1).Kind.String()
	}
	return p.peek().Kind.String()
}

func openerText(k token.Kind) string {
	return k.String()
}

func closerText(k token.Kind) string {
	switch k {
	case token.KwFor:
		return "Next"
	case token.KwDo:
		return "Loop"
	default:
		return "End " + k.String()
	}
}
