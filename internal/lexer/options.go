package lexer

import (
	"codecleanup/internal/diag"
	"codecleanup/internal/dialect"
	"codecleanup/internal/source"
)

type Options struct {
	Reporter diag.Reporter     // nil: ошибки игнорируются, лексинг продолжается
	Evidence *dialect.Evidence // optional language-signal collector
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.Emit(lx.opts.Reporter, diag.Diagnostic{Severity: diag.SevError, Code: code, Primary: sp, Message: msg})
}
