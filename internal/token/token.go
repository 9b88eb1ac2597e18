package token

import (
	"codecleanup/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, char or date literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit, DateLit, InterpStringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsWord reports whether the token is the contextual word w (Strict, Await, From, ...).
func (t Token) IsWord(w string) bool {
	return t.Kind == Ident && EqualFold(t.Text, w)
}

// Name returns the identifier text without escaping brackets.
func (t Token) Name() string {
	return Unbracket(t.Text)
}

// EndsLine reports whether the token terminates a logical line.
func (t Token) EndsLine() bool {
	return t.Kind == EOL || t.Kind == EOF
}
