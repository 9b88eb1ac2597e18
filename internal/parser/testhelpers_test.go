package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/lexer"
	"codecleanup/internal/source"
)

func parseSource(t *testing.T, input string) (Result, *diag.Bag) {
	t.Helper()
	return parseSourceWithLimit(t, input, 100)
}

func parseSourceWithLimit(t *testing.T, input string, maxErrors uint) (Result, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.vb", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := ParseFile(context.Background(), file, lx, Options{Reporter: reporter, MaxErrors: maxErrors})
	if res.Tree == nil {
		t.Fatal("nil tree")
	}
	return res, bag
}

// parseClean fails the test when the parser reports anything at all.
func parseClean(t *testing.T, input string) *ast.Tree {
	t.Helper()
	res, bag := parseSource(t, input)
	if bag.Len() != 0 || res.Errors != 0 {
		t.Fatalf("unexpected diagnostics: %s\n%s", diagnosticsSummary(bag), dump(res.Tree))
	}
	return res.Tree
}

func dump(tree *ast.Tree) string {
	var sb strings.Builder
	_ = tree.Dump(&sb, tree.Root)
	return sb.String()
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// only returns the single node of kind or fails.
func only(t *testing.T, tree *ast.Tree, kind ast.Kind) ast.NodeID {
	t.Helper()
	ids := tree.All(kind)
	if len(ids) != 1 {
		t.Fatalf("expected exactly one %s, got %d\n%s", kind, len(ids), dump(tree))
	}
	return ids[0]
}

func childKinds(tree *ast.Tree, id ast.NodeID) []ast.Kind {
	var out []ast.Kind
	for _, c := range tree.Children(id) {
		out = append(out, tree.Kind(c))
	}
	return out
}

func sameKinds(a, b []ast.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
