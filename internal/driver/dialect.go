package driver

import (
	"fmt"

	"codecleanup/internal/diag"
	"codecleanup/internal/dialect"
	"codecleanup/internal/source"
)

// foreignByExtension reports files whose extension promises another language.
func foreignByExtension(path string) bool {
	return dialect.FromExtension(path) == dialect.CSharp
}

// foreignByContent is consulted only when the extension says nothing
// (stdin, .txt, no extension).
func foreignByContent(path string, ev *dialect.Evidence) (dialect.Classification, bool) {
	if dialect.FromExtension(path) != dialect.Unknown {
		return dialect.Classification{}, false
	}
	c := dialect.Classifier{}.Classify(ev)
	return c, c.LooksForeign()
}

func unsupportedDiagnostic(file *source.File, c dialect.Classification) diag.Diagnostic {
	msg := "input is C#, not Visual Basic; no rules were run"
	if c.TotalScore > 0 {
		msg = fmt.Sprintf("input looks like %s (score %d of %d); no rules were run", c.Kind, c.Score, c.TotalScore)
	}
	return diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.AlnLanguageMismatch,
		Message:  msg,
		Primary:  source.Span{File: file.ID},
	}
}

func dialectCSharp() dialect.Classification {
	return dialect.Classification{Kind: dialect.CSharp}
}
