package engine_test

import (
	"bytes"
	"context"
	"testing"

	"codecleanup/internal/ast"
	"codecleanup/internal/diag"
	"codecleanup/internal/engine"
	"codecleanup/internal/lexer"
	"codecleanup/internal/parser"
	"codecleanup/internal/rules"
	"codecleanup/internal/source"
)

func parse(t *testing.T, input string) parser.Result {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.vb", []byte(input)))
	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return parser.ParseFile(context.Background(), file, lx, parser.Options{Reporter: reporter, MaxErrors: 100})
}

func analyze(t *testing.T, eng *engine.Engine, input string) *engine.Report {
	t.Helper()
	rep, err := eng.Analyze(context.Background(), parse(t, input))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	return rep
}

const sample = `Option Strict On
Option Explicit On
Module Program
    Sub Main()
        For i = 0 To 3
            For j = 0 To 3
                Try
                    Cell(i, j)
                Catch ex As Exception
                End Try
            Next
        Next
    End Sub
End Module
`

func TestRenderLayout(t *testing.T) {
	reg := rules.NewRegistry().MustRegister(
		rules.NewEmptyCatch(),
		rules.NewUnloggedGenericCatch(),
		rules.NewNestedLoop(),
		rules.NewEmptyStringLiteral(),
	)
	rep := analyze(t, engine.New(reg, 2), sample)
	if rep.Status != engine.StatusOK {
		t.Fatalf("expected ok, got %s", rep.Status)
	}
	want := `=== Code Analysis Results ===

--- Try-Catch Analysis ---
Line: 9, Warning: Empty catch block detected
Line: 9, Warning: Catch block with generic Exception lacks proper error logging

--- Loop Efficiency Analysis ---
Line: 5, Warning: Nested loop detected. Consider refactoring to improve performance
    Suggestion: Could this be simplified using LINQ or a different data structure?

--- VB.NET Specific Best Practices ---

`
	if got := rep.String(); got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

func TestSectionOrderFollowsRegistry(t *testing.T) {
	rep := analyze(t, engine.New(rules.DefaultRegistry(), 4), sample)
	cats := rules.DefaultRegistry().Categories()
	if len(rep.Sections) != len(cats) {
		t.Fatalf("expected %d sections, got %d", len(cats), len(rep.Sections))
	}
	for i, c := range cats {
		if rep.Sections[i].Name != c.Name {
			t.Fatalf("section %d: expected %q, got %q", i, c.Name, rep.Sections[i].Name)
		}
	}
	for _, f := range rep.Findings() {
		if f.Line < 1 {
			t.Fatalf("finding with line %d: %s", f.Line, f.Primary())
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	eng := engine.New(rules.DefaultRegistry(), 8)
	first := analyze(t, eng, sample).String()
	for i := 0; i < 20; i++ {
		if got := analyze(t, eng, sample).String(); got != first {
			t.Fatalf("run %d differs:\n%s\nfirst:\n%s", i, got, first)
		}
	}
	single := analyze(t, engine.New(rules.DefaultRegistry(), 1), sample).String()
	if single != first {
		t.Fatal("parallel and sequential runs differ")
	}
}

func TestParseFailureRunsNoRules(t *testing.T) {
	rep := analyze(t, engine.New(nil, 0), "Module M\n    Sub F()\n")
	if rep.Status != engine.StatusParseFailed {
		t.Fatalf("expected parse failure, got %s", rep.Status)
	}
	if len(rep.Sections) != 0 || rep.Count() != 0 {
		t.Fatalf("no rule may run on a broken tree, got %d sections", len(rep.Sections))
	}
	if len(rep.Diagnostics) == 0 {
		t.Fatal("parse diagnostics should be carried in the report")
	}
	if got := rep.String(); got != engine.Banner+"\n\n" {
		t.Fatalf("expected banner only, got %q", got)
	}
}

func TestIndexMatchesFindings(t *testing.T) {
	rep := analyze(t, engine.New(rules.DefaultRegistry(), 0), sample)
	idx := rep.Index()
	fs := rep.Findings()
	if len(idx) != len(fs) || len(idx) == 0 {
		t.Fatalf("index has %d entries for %d findings", len(idx), len(fs))
	}
	for i, e := range idx {
		if e.Ordinal != i+1 || e.Line != fs[i].Line {
			t.Fatalf("entry %d: %+v does not match line %d", i, e, fs[i].Line)
		}
	}
}

type panicRule struct{}

func (panicRule) ID() string                    { return "panics" }
func (panicRule) Code() rules.Code              { return 9999 }
func (panicRule) Category() string              { return "Broken" }
func (panicRule) Severity() rules.Severity      { return rules.SevWarning }
func (panicRule) Description() string           { return "always panics" }
func (panicRule) DefaultEnabled() bool          { return true }
func (panicRule) Check(*ast.Tree) []rules.Finding { panic("boom") }

func TestPanickingRuleIsSkipped(t *testing.T) {
	reg := rules.NewRegistry().MustRegister(panicRule{}, rules.NewNestedLoop())
	rep := analyze(t, engine.New(reg, 2), sample)
	if rep.Status != engine.StatusOK || len(rep.Sections) != 2 {
		t.Fatalf("unexpected report %+v", rep)
	}
	if len(rep.Sections[0].Findings) != 0 || len(rep.Sections[1].Findings) != 1 {
		t.Fatalf("expected the other rule to still report\n%s", rep.String())
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := parse(t, sample)
	if _, err := engine.New(nil, 1).Run(ctx, res.Tree); err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}

func TestRenderToWriter(t *testing.T) {
	rep := &engine.Report{Sections: []engine.Section{{Name: "Empty"}}}
	var buf bytes.Buffer
	if err := rep.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "=== Code Analysis Results ===\n\n--- Empty ---\n\n" {
		t.Fatalf("unexpected render %q", buf.String())
	}
}

func TestStatementsAfterMultiVariableNextAreAnalysed(t *testing.T) {
	input := `Module M
    Sub F()
        For i = 0 To 3
            For j = 0 To 3
                total += i * j
            Next j, i
        r = IIf(total > 0, 1, 2)
    End Sub
End Module
`
	reg := rules.NewRegistry().MustRegister(rules.NewTernaryOperatorPreferred())
	rep := analyze(t, engine.New(reg, 1), input)
	if rep.Status != engine.StatusOK || len(rep.Diagnostics) != 0 {
		t.Fatalf("expected a clean parse, got %s with %d diagnostics", rep.Status, len(rep.Diagnostics))
	}
	fs := rep.Findings()
	if len(fs) != 1 || fs[0].Line != 7 {
		t.Fatalf("expected the IIf on line 7 to be reported\n%s", rep.String())
	}
}

func TestNilRegistryLeavesOptInRulesOff(t *testing.T) {
	input := `Select Case code
    Case 1
        A()
End Select
`
	eng := engine.New(nil, 1)
	if eng.Registry().Len() != 30 {
		t.Fatalf("expected 30 default rules, got %d", eng.Registry().Len())
	}
	if _, ok := eng.Registry().Lookup("short-select-case"); ok {
		t.Fatal("short-select-case must be off by default")
	}
	rep := analyze(t, eng, input)
	for _, f := range rep.Findings() {
		if f.RuleID == "short-select-case" {
			t.Fatalf("opt-in rule ran by default\n%s", rep.String())
		}
	}
}
