package parser

import (
	"fmt"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/token"
)

// memberContext describes the container whose members are being parsed.
type memberContext struct {
	inType      bool
	inInterface bool
}

// modifiers — ключевые слова перед объявлением.
type modifiers struct {
	kinds []token.Kind
	words []string // Async, Iterator, Custom
}

func (m modifiers) has(k token.Kind) bool {
	for _, x := range m.kinds {
		if x == k {
			return true
		}
	}
	return false
}

func (m modifiers) hasWord(w string) bool {
	for _, x := range m.words {
		if token.EqualFold(x, w) {
			return true
		}
	}
	return false
}

func (m modifiers) empty() bool {
	return len(m.kinds) == 0 && len(m.words) == 0
}

var modifierKinds = map[token.Kind]bool{
	token.KwPublic: true, token.KwPrivate: true, token.KwProtected: true, token.KwFriend: true,
	token.KwShared: true, token.KwShadows: true, token.KwOverrides: true, token.KwOverridable: true,
	token.KwNotOverridable: true, token.KwMustOverride: true, token.KwMustInherit: true,
	token.KwNotInheritable: true, token.KwOverloads: true, token.KwPartial: true,
	token.KwReadOnly: true, token.KwWriteOnly: true, token.KwWithEvents: true,
	token.KwWidening: true, token.KwNarrowing: true, token.KwDefault: true,
	token.KwDim: true, token.KwConst: true, token.KwStatic: true,
}

var contextualModifiers = []string{"Async", "Iterator", "Custom"}

// parseMembers разбирает объявления контейнера до закрывающей строки открытого блока или EOF.
func (p *Parser) parseMembers(parent ast.NodeID, ctx memberContext) {
	for {
		p.skipSeparators()
		if p.at(token.EOF) {
			return
		}
		if kind, final, ok := p.closer(); ok {
			if p.isOpen(kind) {
				return
			}
			p.strayCloser(kind, final)
			continue
		}
		p.add(parent, p.parseMember(ctx))
	}
}

// parseMember — одно объявление; всё остальное разбирается как оператор.
func (p *Parser) parseMember(ctx memberContext) ast.NodeID {
	start := p.peek()
	if !ctx.inType && p.at_or(token.KwDim, token.KwStatic, token.KwConst) {
		id := p.parseStatement()
		p.endStatement()
		return id
	}

	attrs := p.parseAttributeLists()
	mods := p.parseModifiers()
	decl := declStart{tok: start, attrs: attrs, mods: mods}

	var id ast.NodeID
	switch p.peek().Kind {
	case token.KwOption:
		id = p.parseOption()
	case token.KwImports:
		id = p.parseImports()
	case token.KwNamespace:
		return p.parseNamespace(decl)
	case token.KwClass, token.KwModule, token.KwStructure, token.KwInterface:
		return p.parseTypeBlock(decl)
	case token.KwEnum:
		return p.parseEnum(decl)
	case token.KwSub, token.KwFunction:
		if p.peekIs(1, token.LParen) {
			id = p.parseStatement()
			break
		}
		return p.parseMethod(decl, ctx)
	case token.KwOperator:
		return p.parseOperator(decl, ctx)
	case token.KwProperty:
		return p.parseProperty(decl, ctx)
	case token.KwEvent:
		return p.parseEvent(decl)
	case token.KwDeclare:
		id = p.parseDeclare(decl)
	case token.KwDelegate:
		id = p.parseDelegate(decl)
	case token.KwInherits, token.KwImplements:
		kw := p.advance()
		id = p.declNode(ast.OtherDeclaration, decl)
		p.setOp(id, kw.Kind)
		p.skipStatement()
		p.finish(id)
	default:
		if !mods.empty() || len(attrs) > 0 {
			id = p.parseField(decl)
			break
		}
		id = p.parseStatement()
	}
	p.endStatement()
	return id
}

// declStart — общая часть всех объявлений: первый токен, атрибуты, модификаторы.
type declStart struct {
	tok   token.Token
	attrs []ast.NodeID
	mods  modifiers
}

// declNode создаёт узел объявления; span и ведущие комментарии берутся от первого токена.
func (p *Parser) declNode(kind ast.Kind, d declStart) ast.NodeID {
	id := p.node(kind, d.tok)
	p.setLeading(id, d.tok.Leading)
	for _, a := range d.attrs {
		p.add(id, a)
	}
	return id
}

func (p *Parser) parseModifiers() modifiers {
	var m modifiers
	for {
		tok := p.peek()
		if modifierKinds[tok.Kind] {
			m.kinds = append(m.kinds, p.advance().Kind)
			continue
		}
		if p.atContextualModifier() {
			m.words = append(m.words, p.advance().Text)
			continue
		}
		return m
	}
}

// atContextualModifier: Async/Iterator/Custom считаются модификаторами только перед объявлением.
func (p *Parser) atContextualModifier() bool {
	tok := p.peek()
	matched := false
	for _, w := range contextualModifiers {
		if tok.IsWord(w) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	next := p.peekAt(1)
	if modifierKinds[next.Kind] {
		return true
	}
	switch next.Kind {
	case token.KwSub, token.KwFunction, token.KwProperty, token.KwEvent:
		return true
	}
	for _, w := range contextualModifiers {
		if next.IsWord(w) {
			return true
		}
	}
	return false
}

// parseAttributeLists — <A, B(1)> перед объявлением; после '>' допускается перенос строки.
func (p *Parser) parseAttributeLists() []ast.NodeID {
	var out []ast.NodeID
	for p.at(token.Lt) {
		list := p.node(ast.AttributeList, p.advance())
		for {
			p.skipEOL()
			p.add(list, p.parseAttribute())
			p.skipEOL()
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close attribute list"); !ok {
			p.skipStatement()
		}
		p.finish(list)
		out = append(out, list)
		p.skipEOL()
	}
	return out
}

func (p *Parser) parseAttribute() ast.NodeID {
	// Assembly: / Module:
	if (p.atWord("Assembly") || p.at(token.KwModule)) && p.peekIs(1, token.Colon) {
		p.advance()
		p.advance()
	}
	start := p.peek()
	id := p.node(ast.Attribute, start)
	if _, ok := p.parseTypeText(false); !ok {
		return id
	}
	if n := p.b.Get(id); n != nil {
		n.Name = p.textFrom(start.Span.Start)
	}
	if p.at(token.LParen) {
		p.add(id, p.parseArgumentList())
	}
	return p.finish(id)
}

// Option Strict On
func (p *Parser) parseOption() ast.NodeID {
	kw := p.advance()
	id := p.node(ast.OptionStatement, kw)
	name, ok := p.expectName("expected option name")
	if !ok {
		return id
	}
	p.setName(id, name)
	if !p.atStatementEnd() {
		p.setValue(id, p.advance().Text)
	}
	return p.finish(id)
}

// Imports System.Text / Imports Alias = Namespace
func (p *Parser) parseImports() ast.NodeID {
	kw := p.advance()
	id := p.node(ast.ImportsStatement, kw)
	start := p.peek().Span.Start
	p.skipStatement()
	p.setValue(id, p.textFrom(start))
	return p.finish(id)
}

func (p *Parser) parseNamespace(d declStart) ast.NodeID {
	p.advance()
	id := p.declNode(ast.NamespaceBlock, d)
	start := p.peek().Span.Start
	for !p.atStatementEnd() {
		p.advance()
	}
	if n := p.b.Get(id); n != nil {
		n.Name = p.textFrom(start)
	}
	p.endStatement()
	p.push(token.KwNamespace)
	p.parseMembers(id, memberContext{})
	p.closeBlock(id, token.KwNamespace)
	return id
}

// parseTypeBlock — Class/Module/Structure/Interface.
func (p *Parser) parseTypeBlock(d declStart) ast.NodeID {
	kw := p.advance()
	id := p.declNode(ast.TypeBlock, d)
	p.setOp(id, kw.Kind)
	if name, ok := p.expectName(fmt.Sprintf("expected %s name", kw.Kind)); ok {
		p.setName(id, name)
	}
	p.genericSuffix(id)
	p.endStatement()
	p.push(kw.Kind)
	p.parseMembers(id, memberContext{inType: true, inInterface: kw.Kind == token.KwInterface})
	p.closeBlock(id, kw.Kind)
	return id
}

// parseEnum — Enum E [As T], члены по одному на строку.
func (p *Parser) parseEnum(d declStart) ast.NodeID {
	p.advance()
	id := p.declNode(ast.EnumBlock, d)
	if name, ok := p.expectName("expected enum name"); ok {
		p.setName(id, name)
	}
	if p.at(token.KwAs) {
		p.add(id, p.parseAsClause())
	}
	p.endStatement()
	p.push(token.KwEnum)
	for {
		p.skipSeparators()
		if p.atBlockEnd() {
			break
		}
		p.add(id, p.parseEnumMember())
		p.endStatement()
	}
	p.closeBlock(id, token.KwEnum)
	return id
}

func (p *Parser) parseEnumMember() ast.NodeID {
	start := p.peek()
	attrs := p.parseAttributeLists()
	id := p.declNode(ast.EnumMember, declStart{tok: start, attrs: attrs})
	if name, ok := p.expectName("expected enum member name"); ok {
		p.setName(id, name)
	}
	if p.eat(token.Assign) {
		p.skipEOL()
		p.add(id, p.parseExpr())
	}
	return p.finish(id)
}

// parseField — Private x As Integer, Const Max = 10, WithEvents btn As Button.
func (p *Parser) parseField(d declStart) ast.NodeID {
	id := p.declNode(ast.FieldDeclaration, d)
	if d.mods.has(token.KwConst) {
		p.setOp(id, token.KwConst)
	}
	if !p.memberNameAt(0) {
		p.warn(diag.SynExpectIdentifier, fmt.Sprintf("expected declaration, found %q", p.peek().Text))
		return p.finish(id)
	}
	p.parseDeclarators(id)
	return p.finish(id)
}

// Event E As Handler, Event E(args), Custom Event E ... End Event
func (p *Parser) parseEvent(d declStart) ast.NodeID {
	kw := p.advance()
	id := p.declNode(ast.OtherDeclaration, d)
	p.setOp(id, kw.Kind)
	if name, ok := p.expectName("expected event name"); ok {
		p.setName(id, name)
	}
	if p.at(token.LParen) {
		p.add(id, p.parseParameterList())
	}
	if p.at(token.KwAs) {
		p.add(id, p.parseAsClause())
	}
	p.skipStatement() // Implements I.E
	p.finish(id)
	if !d.mods.hasWord("Custom") {
		return id
	}
	p.push(token.KwEvent)
	p.parseAccessors(id, token.KwAddHandler, token.KwRemoveHandler, token.KwRaiseEvent)
	p.closeBlock(id, token.KwEvent)
	return id
}

// Declare [Ansi|Unicode|Auto] Sub|Function Name Lib "x" [Alias "y"] (params) [As T]
func (p *Parser) parseDeclare(d declStart) ast.NodeID {
	p.advance()
	for p.atWord("Ansi") || p.atWord("Unicode") || p.atWord("Auto") {
		p.advance()
	}
	id := p.declNode(ast.MethodStatement, d)
	if p.at_or(token.KwSub, token.KwFunction) {
		p.setOp(id, p.advance().Kind)
	}
	if name, ok := p.expectName("expected procedure name"); ok {
		p.setName(id, name)
	}
	for p.at_or(token.KwLib, token.KwAlias) {
		p.advance()
		p.eat(token.StringLit)
	}
	p.parseSignatureTail(id)
	return p.finish(id)
}

// Delegate Sub|Function Name(params) [As T]
func (p *Parser) parseDelegate(d declStart) ast.NodeID {
	p.advance()
	id := p.declNode(ast.OtherDeclaration, d)
	p.setOp(id, token.KwDelegate)
	p.eat(token.KwSub)
	p.eat(token.KwFunction)
	if name, ok := p.expectName("expected delegate name"); ok {
		p.setName(id, name)
	}
	p.genericSuffix(id)
	p.parseSignatureTail(id)
	return p.finish(id)
}
