package lexer

import (
	"codecleanup/internal/diag"
	"codecleanup/internal/token"
)

// scanOperatorOrPunct matches greedily: three-byte forms, then two, then one.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try3('<', '<', '='):
		return emit(token.ShlAssign)
	case lx.try3('>', '>', '='):
		return emit(token.ShrAssign)
	case lx.try2('<', '>'):
		return emit(token.NotEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('<', '<'):
		return emit(token.Shl)
	case lx.try2('>', '>'):
		return emit(token.Shr)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('\\', '='):
		return emit(token.BackslashAssign)
	case lx.try2('^', '='):
		return emit(token.CaretAssign)
	case lx.try2('&', '='):
		return emit(token.AmpAssign)
	case lx.try2(':', '='):
		return emit(token.ColonAssign)
	case lx.try2('?', '.'):
		return emit(token.QuestionDot)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '\\':
		return emit(token.Backslash)
	case '^':
		return emit(token.Caret)
	case '&':
		return emit(token.Amp)
	case '=':
		return emit(token.Assign)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case ':':
		return emit(token.Colon)
	case '!':
		return emit(token.Bang)
	case '?':
		return emit(token.Question)
	case '@':
		return emit(token.At)
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unexpected character "+lx.text(sp))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
