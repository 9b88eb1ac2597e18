package parser

import (
	"testing"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
)

func TestBlockRecovery(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		code   diag.Code
		errors uint
	}{
		{
			name: "If closed by End Sub",
			input: `Sub Main()
    If ready Then
        Go()
End Sub
`,
			code:   diag.SynMismatchedEnd,
			errors: 1,
		},
		{
			name: "missing End Sub at end of file",
			input: `Sub Main()
    Go()
`,
			code:   diag.SynUnterminatedBlock,
			errors: 1,
		},
		{
			name:   "stray End If",
			input:  "Go()\nEnd If\n",
			code:   diag.SynStrayEnd,
			errors: 1,
		},
		{
			name:   "Else without If",
			input:  "Else\nGo()\n",
			code:   diag.SynUnexpectedToken,
			errors: 1,
		},
		{
			name: "Next names too many loops",
			input: `For i = 1 To 2
Next i, j
`,
			code:   diag.SynStrayEnd,
			errors: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, bag := parseSource(t, tt.input)
			if !hasCode(bag, tt.code) {
				t.Fatalf("expected %s, got %s", tt.code.ID(), diagnosticsSummary(bag))
			}
			if res.Errors != tt.errors {
				t.Fatalf("expected %d errors, got %d: %s", tt.errors, res.Errors, diagnosticsSummary(bag))
			}
		})
	}
}

func TestMismatchedEndKeepsOuterBlock(t *testing.T) {
	input := `Class C
    Sub A()
        If x Then
            y = 1
    End Sub
    Sub B()
    End Sub
End Class
`
	res, bag := parseSource(t, input)
	if !hasCode(bag, diag.SynMismatchedEnd) {
		t.Fatalf("expected mismatched End, got %s", diagnosticsSummary(bag))
	}
	tree := res.Tree
	methods := tree.All(ast.MethodBlock)
	if len(methods) != 2 {
		t.Fatalf("expected both methods to survive, got %d\n%s", len(methods), dump(tree))
	}
	ifs := tree.All(ast.IfBlock)
	if len(ifs) != 1 || tree.Node(ifs[0]).Flags&ast.FlagRecovered == 0 {
		t.Fatalf("unterminated If should be marked recovered\n%s", dump(tree))
	}
	for _, m := range methods {
		if tree.Node(m).Flags&ast.FlagRecovered != 0 {
			t.Fatalf("method %q should be closed normally", tree.Node(m).Name)
		}
	}
}

func TestMethodBodyEndsAtNextDeclaration(t *testing.T) {
	input := `Class C
    Sub A()
        Go()
    Public Sub B()
    End Sub
End Class
`
	res, bag := parseSource(t, input)
	if !hasCode(bag, diag.SynUnterminatedBlock) {
		t.Fatalf("expected unterminated Sub, got %s", diagnosticsSummary(bag))
	}
	if got := len(res.Tree.All(ast.MethodBlock)); got != 2 {
		t.Fatalf("expected 2 methods, got %d\n%s", got, dump(res.Tree))
	}
}

func TestBadExpressionIsWarning(t *testing.T) {
	res, bag := parseSource(t, "x = )\n")
	if res.Errors != 0 {
		t.Fatalf("expression problems must not count as errors: %s", diagnosticsSummary(bag))
	}
	if !hasCode(bag, diag.SynExpectExpression) {
		t.Fatalf("expected a missing-expression warning, got %s", diagnosticsSummary(bag))
	}
	if got := len(res.Tree.All(ast.BadExpression)); got != 1 {
		t.Fatalf("expected one BadExpression, got %d", got)
	}
}

func TestMaxErrorsStopsReporting(t *testing.T) {
	res, bag := parseSourceWithLimit(t, "End If\nEnd If\nEnd If\n", 2)
	if res.Errors != 3 {
		t.Fatalf("all errors should be counted, got %d", res.Errors)
	}
	if bag.Len() != 2 {
		t.Fatalf("expected reporting to stop at 2, got %d", bag.Len())
	}
}

func TestEmptyInput(t *testing.T) {
	tree := parseClean(t, "")
	if tree.Empty() {
		t.Fatal("empty input should still produce a compilation unit")
	}
	if got := len(tree.Children(tree.Root)); got != 0 {
		t.Fatalf("expected no members, got %d", got)
	}
}
