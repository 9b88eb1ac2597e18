package lexer

import (
	"codecleanup/internal/diag"
	"codecleanup/internal/token"
)

// scanNumber handles 42, 1_000, 3.14, 1.5E+3, .5, &HFF, &O17, &B1010
// and the type suffixes S I L D F R US UI UL @ ! # % &.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '&' {
		lx.cursor.Bump()
		radix := lx.cursor.Bump() | 0x20
		digit := isHex
		switch radix {
		case 'o':
			digit = isOct
		case 'b':
			digit = isBin
		}
		n := 0
		for c := lx.cursor.Peek(); digit(c) || c == '_'; c = lx.cursor.Peek() {
			lx.cursor.Bump()
			n++
		}
		if n == 0 {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digits after "+lx.text(sp))
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.scanIntSuffix()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
	}

	lx.digits()
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		lx.digits()
		kind = token.FloatLit
	}
	if c := lx.cursor.Peek(); c == 'e' || c == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if c := lx.cursor.Peek(); c == '+' || c == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.cursor.Reset(mark)
		} else {
			lx.digits()
			kind = token.FloatLit
		}
	}

	switch c := lx.cursor.Peek(); c | 0x20 {
	case 'd', 'f', 'r':
		if !isIdentContinueByte(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			kind = token.FloatLit
		}
	default:
		switch c {
		case '@', '!', '#':
			lx.cursor.Bump()
			kind = token.FloatLit
		default:
			lx.scanIntSuffix()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) digits() {
	for c := lx.cursor.Peek(); isDec(c) || c == '_'; c = lx.cursor.Peek() {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanIntSuffix() {
	c0, c1 := lx.cursor.Peek()|0x20, lx.cursor.PeekAt(1)|0x20
	switch {
	case c0 == 'u' && (c1 == 's' || c1 == 'i' || c1 == 'l') && !isIdentContinueByte(lx.cursor.PeekAt(2)):
		lx.cursor.Bump()
		lx.cursor.Bump()
	case (c0 == 's' || c0 == 'i' || c0 == 'l') && !isIdentContinueByte(lx.cursor.PeekAt(1)):
		lx.cursor.Bump()
	case lx.cursor.Peek() == '%':
		lx.cursor.Bump()
	case lx.cursor.Peek() == '&' && isLongSuffixEnd(lx.cursor.PeekAt(1)):
		// 10& is a Long literal; "10 & x" and "10&x" keep & as concatenation
		lx.cursor.Bump()
	}
}

func isLongSuffixEnd(b byte) bool {
	return !isIdentContinueByte(b) && b != ' ' && b != '"' && b != '&' && b != '='
}
