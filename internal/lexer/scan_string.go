package lexer

import (
	"codecleanup/internal/diag"
	"codecleanup/internal/token"
)

// scanString scans "..." where "" is an escaped quote. Multi-line strings are allowed.
// A trailing c or C makes it a Char literal.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	if !lx.scanQuotedBody() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	kind := token.StringLit
	if c := lx.cursor.Peek(); (c == 'c' || c == 'C') && !isIdentContinueByte(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		kind = token.CharLit
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanQuotedBody consumes up to and including the closing quote.
func (lx *Lexer) scanQuotedBody() bool {
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		if lx.cursor.Peek() == '"' {
			lx.cursor.Bump()
			continue
		}
		return true
	}
	return false
}

// scanInterpolated scans $"text {expr} {{literal}}", including strings nested inside holes.
func (lx *Lexer) scanInterpolated() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // $
	lx.cursor.Bump() // "
	depth := 0
	for !lx.cursor.EOF() {
		c := lx.cursor.Bump()
		switch {
		case depth == 0 && c == '"':
			if lx.cursor.Peek() == '"' {
				lx.cursor.Bump()
				continue
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.InterpStringLit, Span: sp, Text: lx.text(sp)}
		case depth == 0 && c == '{':
			if lx.cursor.Peek() == '{' {
				lx.cursor.Bump()
				continue
			}
			depth++
		case depth > 0 && c == '"':
			lx.scanQuotedBody()
		case depth > 0 && c == '{':
			depth++
		case depth > 0 && c == '}':
			depth--
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated interpolated string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanDate scans #1/2/2024# or #12:00 AM#. A '#' that does not start a date is reported.
func (lx *Lexer) scanDate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		c := lx.cursor.Peek()
		if c == '\n' {
			break
		}
		lx.cursor.Bump()
		if c == '#' {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.DateLit, Span: sp, Text: lx.text(sp)}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedDate, sp, "unterminated date literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
