package driver

import (
	"context"

	"fortio.org/safecast"

	"codecleanup/internal/diag"
	"codecleanup/internal/dialect"
	"codecleanup/internal/lexer"
	"codecleanup/internal/parser"
	"codecleanup/internal/source"
)

type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Result   parser.Result
	Evidence *dialect.Evidence
}

// Parse reads and parses one input for the parse command.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := Load(fs, path, nil)
	if err != nil {
		return nil, err
	}
	file := fs.Get(id)
	res, ev, err := parseFile(ctx, file, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return &ParseResult{FileSet: fs, File: file, Result: res, Evidence: ev}, nil
}

func parseFile(ctx context.Context, file *source.File, maxDiagnostics int) (parser.Result, *dialect.Evidence, error) {
	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		return parser.Result{}, nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	ev := dialect.NewEvidence()
	lx := lexer.New(file, lexer.Options{Reporter: reporter, Evidence: ev})
	res := parser.ParseFile(ctx, file, lx, parser.Options{Reporter: reporter, MaxErrors: maxErrors})
	return res, ev, nil
}
