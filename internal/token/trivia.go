package token

import "codecleanup/internal/source"

// Directive is a parsed preprocessor line such as #Region "Helpers".
type Directive struct {
	Name    string
	Payload string
}

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment  // ' text or REM text
	TriviaDocLine      // ''' text
	TriviaContinuation // explicit " _"
	TriviaDirective
)

type Trivia struct {
	Kind      TriviaKind
	Span      source.Span
	Text      string
	Directive *Directive // только если Kind == TriviaDirective
}

// IsComment reports whether the trivia carries comment text.
func (tv Trivia) IsComment() bool {
	return tv.Kind == TriviaLineComment || tv.Kind == TriviaDocLine
}

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaDocLine:
		return "DocLine"
	case TriviaContinuation:
		return "Continuation"
	case TriviaDirective:
		return "Directive"
	default:
		return "Trivia?"
	}
}
