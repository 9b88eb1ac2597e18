package dialect

import (
	"codecleanup/internal/source"
	"codecleanup/internal/token"
)

type keywordSignal struct {
	Dialect Kind
	Score   int
	Reason  string
}

// C# spellings are case-sensitive: VB code is normally written with the IDE's
// capitalisation, so a lowercase "void" or "null" is a strong C# tell.
var identSignals = map[string][]keywordSignal{
	"void":      {{Dialect: CSharp, Score: 4, Reason: "c# keyword `void`"}},
	"null":      {{Dialect: CSharp, Score: 3, Reason: "c# literal `null`"}},
	"this":      {{Dialect: CSharp, Score: 3, Reason: "c# keyword `this`"}},
	"var":       {{Dialect: CSharp, Score: 2, Reason: "c# keyword `var`"}},
	"bool":      {{Dialect: CSharp, Score: 2, Reason: "c# type `bool`"}},
	"foreach":   {{Dialect: CSharp, Score: 4, Reason: "c# keyword `foreach`"}},
	"namespace": {{Dialect: CSharp, Score: 2, Reason: "lowercase `namespace`"}},
	"using":     {{Dialect: CSharp, Score: 1, Reason: "lowercase `using`"}},
	"static":    {{Dialect: CSharp, Score: 1, Reason: "lowercase `static`"}},
	"catch":     {{Dialect: CSharp, Score: 1, Reason: "lowercase `catch`"}},
}

var keywordSignals = map[token.Kind]keywordSignal{
	token.KwDim:      {Dialect: VisualBasic, Score: 3, Reason: "vb keyword `Dim`"},
	token.KwThen:     {Dialect: VisualBasic, Score: 2, Reason: "vb keyword `Then`"},
	token.KwEnd:      {Dialect: VisualBasic, Score: 2, Reason: "vb block terminator `End`"},
	token.KwSub:      {Dialect: VisualBasic, Score: 2, Reason: "vb keyword `Sub`"},
	token.KwAndAlso:  {Dialect: VisualBasic, Score: 3, Reason: "vb operator `AndAlso`"},
	token.KwOrElse:   {Dialect: VisualBasic, Score: 3, Reason: "vb operator `OrElse`"},
	token.KwNothing:  {Dialect: VisualBasic, Score: 2, Reason: "vb literal `Nothing`"},
	token.KwImports:  {Dialect: VisualBasic, Score: 2, Reason: "vb keyword `Imports`"},
	token.KwNext:     {Dialect: VisualBasic, Score: 1, Reason: "vb keyword `Next`"},
	token.KwModule:   {Dialect: VisualBasic, Score: 2, Reason: "vb keyword `Module`"},
	token.KwElseIf:   {Dialect: VisualBasic, Score: 2, Reason: "vb keyword `ElseIf`"},
	token.KwFunction: {Dialect: VisualBasic, Score: 1, Reason: "vb keyword `Function`"},
}

// RecordIdent collects evidence carried by an identifier.
func RecordIdent(e *Evidence, ident string, span source.Span) {
	if e == nil || ident == "" {
		return
	}
	for _, sig := range identSignals[ident] {
		e.Add(Hint{Dialect: sig.Dialect, Score: sig.Score, Reason: sig.Reason, Span: span})
	}
}

// RecordKeyword collects evidence carried by a reserved word. Lowercase
// spellings of shared keywords count for C# instead.
func RecordKeyword(e *Evidence, k token.Kind, text string, span source.Span) {
	if e == nil {
		return
	}
	if sigs, ok := identSignals[text]; ok {
		for _, sig := range sigs {
			e.Add(Hint{Dialect: sig.Dialect, Score: sig.Score, Reason: sig.Reason, Span: span})
		}
		return
	}
	if sig, ok := keywordSignals[k]; ok {
		e.Add(Hint{Dialect: sig.Dialect, Score: sig.Score, Reason: sig.Reason, Span: span})
	}
}
