package driver

import (
	"codecleanup/internal/diag"
	"codecleanup/internal/dialect"
	"codecleanup/internal/lexer"
	"codecleanup/internal/source"
	"codecleanup/internal/token"
)

type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Tokens   []token.Token
	Bag      *diag.Bag
	Evidence *dialect.Evidence
}

// Tokenize lexes one input for the tokenize command.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := Load(fs, path, nil)
	if err != nil {
		return nil, err
	}
	file := fs.Get(id)

	bag := diag.NewBag(maxDiagnostics)
	ev := dialect.NewEvidence()
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, Evidence: ev})

	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Tokens:   lx.All(),
		Bag:      bag,
		Evidence: ev,
	}, nil
}
