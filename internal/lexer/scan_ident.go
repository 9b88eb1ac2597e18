package lexer

import (
	"codecleanup/internal/diag"
	"codecleanup/internal/dialect"
	"codecleanup/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies it through LookupKeyword.
// A trailing $ or % type character (Left$, count%) belongs to the identifier.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || (r >= utf8RuneSelf && !isIdentStartRune(r)) {
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character "+lx.text(sp))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	lx.bumpRune()
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			break
		}
		if r < utf8RuneSelf {
			if !isIdentContinueByte(byte(r)) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}
	if c := lx.cursor.Peek(); (c == '$' || c == '%') && lx.cursor.PeekAt(1) != '"' {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if k, ok := token.LookupKeyword(text); ok {
		dialect.RecordKeyword(lx.opts.Evidence, k, text, sp)
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	dialect.RecordIdent(lx.opts.Evidence, text, sp)
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanBracketedIdent scans an escaped identifier such as [Select].
func (lx *Lexer) scanBracketedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		c := lx.cursor.Peek()
		if c == ']' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Ident, Span: sp, Text: lx.text(sp)}
		}
		if c == '\n' || !(isIdentContinueByte(c) || c >= utf8RuneSelf) {
			break
		}
		lx.cursor.Bump()
	}
	// не идентификатор: откатываемся и отдаём '[' как неизвестный символ
	lx.cursor.Reset(start)
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unexpected character [")
	return token.Token{Kind: token.Invalid, Span: sp, Text: "["}
}
