package rules_test

import (
	"context"
	"strings"
	"testing"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/lexer"
	"codecleanup/internal/parser"
	"codecleanup/internal/rules"
	"codecleanup/internal/source"
)

// parse builds a tree and fails on any front-end diagnostic.
func parse(t *testing.T, input string) *ast.Tree {
	t.Helper()

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.vb", []byte(input)))

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := parser.ParseFile(context.Background(), file, lx, parser.Options{Reporter: reporter, MaxErrors: 100})
	if res.Tree == nil {
		t.Fatal("nil tree")
	}
	if bag.Len() != 0 {
		var sb strings.Builder
		for _, d := range bag.Items() {
			sb.WriteString(d.Message)
			sb.WriteByte('\n')
		}
		t.Fatalf("unexpected diagnostics:\n%s", sb.String())
	}
	return res.Tree
}

func lines(fs []rules.Finding) []int {
	out := make([]int, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Line)
	}
	return out
}

func sameLines(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func primaries(fs []rules.Finding) string {
	var sb strings.Builder
	for _, f := range fs {
		sb.WriteString(f.Primary())
		sb.WriteByte('\n')
	}
	return sb.String()
}
