package lexer

import (
	"strings"

	"codecleanup/internal/token"
)

// collectLeadingTrivia gathers trivia in front of the next significant token:
//   - runs of spaces and tabs become one TriviaSpace
//   - newlines on a line with no token yet become TriviaNewline
//   - ' and REM comments become TriviaLineComment, ''' becomes TriviaDocLine
//   - " _" followed by end of line becomes TriviaContinuation (newline included)
//   - #Region / #End Region / #If ... at line start become TriviaDirective
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\f':
			for {
				c := lx.cursor.Peek()
				if c != ' ' && c != '\t' && c != '\r' && c != '\f' {
					break
				}
				lx.cursor.Bump()
			}
			lx.push(token.TriviaSpace, start)

		case b == '\n' && !lx.lineHasToken:
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.push(token.TriviaNewline, start)

		case b == '\'' || isSmartQuote(lx.cursor.Peek(), lx.cursor.PeekAt(1), lx.cursor.PeekAt(2)):
			kind := token.TriviaLineComment
			if lx.cursor.PeekAt(1) == '\'' && lx.cursor.PeekAt(2) == '\'' && lx.cursor.PeekAt(3) != '\'' {
				kind = token.TriviaDocLine
			}
			lx.skipToEOL()
			lx.push(kind, start)

		case lx.atREM():
			lx.skipToEOL()
			lx.push(token.TriviaLineComment, start)

		case b == '_' && lx.isContinuation():
			lx.cursor.Bump()
			for c := lx.cursor.Peek(); c == ' ' || c == '\t' || c == '\r'; c = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			if lx.cursor.Peek() == '\'' {
				lx.skipToEOL()
			}
			lx.cursor.Eat('\n')
			lx.push(token.TriviaContinuation, start)

		case b == '#' && !lx.lineHasToken && isLetterByte(lx.cursor.PeekAt(1)):
			lx.skipToEOL()
			sp := lx.cursor.SpanFrom(start)
			text := lx.text(sp)
			name, payload, _ := strings.Cut(strings.TrimSpace(text[1:]), " ")
			if strings.EqualFold(name, "End") {
				rest, tail, _ := strings.Cut(strings.TrimSpace(payload), " ")
				name, payload = "End "+rest, tail
			}
			lx.hold = append(lx.hold, token.Trivia{
				Kind:      token.TriviaDirective,
				Span:      sp,
				Text:      text,
				Directive: &token.Directive{Name: name, Payload: strings.TrimSpace(payload)},
			})

		default:
			return
		}
	}
}

func (lx *Lexer) push(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

func (lx *Lexer) skipToEOL() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// atREM reports a REM comment: the word REM followed by whitespace or end of line.
func (lx *Lexer) atREM() bool {
	c := &lx.cursor
	if !(c.Peek()|0x20 == 'r' && c.PeekAt(1)|0x20 == 'e' && c.PeekAt(2)|0x20 == 'm') {
		return false
	}
	if lx.prev.Kind == token.Dot || lx.prev.Kind == token.Bang {
		return false
	}
	next := c.PeekAt(3)
	return next == 0 || next == ' ' || next == '\t' || next == '\n' || next == '\r'
}

// isContinuation reports whether '_' is an explicit line continuation:
// only whitespace or a comment may follow it on the line.
func (lx *Lexer) isContinuation() bool {
	for n := uint32(1); ; n++ {
		switch lx.cursor.PeekAt(n) {
		case ' ', '\t', '\r':
			continue
		case '\n', 0, '\'':
			return true
		default:
			return false
		}
	}
}

// U+2018 / U+2019 are accepted as comment markers.
func isSmartQuote(b0, b1, b2 byte) bool {
	return b0 == 0xE2 && b1 == 0x80 && (b2 == 0x98 || b2 == 0x99)
}
