package dialect

import (
	"codecleanup/internal/token"
)

// ObserveTokenPair records token-pattern evidence using a sliding two-token
// window. The caller feeds tokens in source order.
func ObserveTokenPair(e *Evidence, prev, tok token.Token) {
	if e == nil {
		return
	}
	adjacent := prev.Span.File == tok.Span.File && prev.Span.End == tok.Span.Start

	switch {
	case tok.Kind == token.Invalid && tok.Text == ";":
		e.Add(Hint{Dialect: CSharp, Score: 2, Reason: "statement terminator `;`", Span: tok.Span})
	case adjacent && prev.Kind == token.Assign && tok.Kind == token.Assign:
		e.Add(Hint{Dialect: CSharp, Score: 3, Reason: "equality operator `==`", Span: prev.Span.Cover(tok.Span)})
	case adjacent && prev.Kind == token.Amp && tok.Kind == token.Amp:
		e.Add(Hint{Dialect: CSharp, Score: 3, Reason: "logical operator `&&`", Span: prev.Span.Cover(tok.Span)})
	case adjacent && prev.Kind == token.Bang && tok.Kind == token.Assign:
		e.Add(Hint{Dialect: CSharp, Score: 3, Reason: "inequality operator `!=`", Span: prev.Span.Cover(tok.Span)})
	case prev.Kind == token.RParen && tok.Kind == token.LBrace && tok.Leading == nil:
		e.Add(Hint{Dialect: CSharp, Score: 1, Reason: "brace-delimited block", Span: tok.Span})
	case prev.Kind == token.KwEnd:
		switch tok.Kind {
		case token.KwSub, token.KwFunction, token.KwIf, token.KwClass, token.KwModule, token.KwTry, token.KwProperty:
			e.Add(Hint{Dialect: VisualBasic, Score: 4, Reason: "vb block terminator `End " + tok.Text + "`", Span: prev.Span.Cover(tok.Span)})
		}
	}
}
