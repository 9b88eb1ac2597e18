package diagfmt

import (
	"context"
	"testing"

	"codecleanup/internal/diag"
	"codecleanup/internal/engine"
	"codecleanup/internal/lexer"
	"codecleanup/internal/parser"
	"codecleanup/internal/rules"
	"codecleanup/internal/source"
)

const sample = `Option Strict On
Option Explicit On
Module Program
    Sub Main()
        Try
            Work()
        Catch ex As Exception
        End Try
    End Sub
End Module
`

func testRegistry() *rules.Registry {
	return rules.NewRegistry().MustRegister(
		rules.NewEmptyCatch(),
		rules.NewUnloggedGenericCatch(),
		rules.NewEmptyStringLiteral(),
	)
}

func analyze(t *testing.T, path, input string) (*engine.Report, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(path, []byte(input)))
	bag := diag.NewBag(50)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := parser.ParseFile(context.Background(), file, lx, parser.Options{Reporter: reporter, MaxErrors: 50})
	rep, err := engine.New(testRegistry(), 1).Analyze(context.Background(), res)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	return rep, fs
}
