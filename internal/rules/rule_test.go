package rules_test

import (
	"testing"

	"codecleanup/internal/ast"
	"codecleanup/internal/rules"
)

func TestFindingPrimary(t *testing.T) {
	tests := []struct {
		name string
		f    rules.Finding
		want string
	}{
		{
			name: "message only",
			f:    rules.Finding{Line: 42, Severity: rules.SevWarning, Message: "Empty catch block detected"},
			want: "Line: 42, Warning: Empty catch block detected",
		},
		{
			name: "subject and message",
			f: rules.Finding{
				Line:     7,
				Severity: rules.SevWarning,
				Subject:  []rules.Field{{Label: "Method", Value: "Load"}},
				Message:  "Method lacks try-catch block",
			},
			want: "Line: 7, Method: Load, Warning: Method lacks try-catch block",
		},
		{
			name: "subject without message has no tag",
			f: rules.Finding{
				Line:     3,
				Severity: rules.SevWarning,
				Subject: []rules.Field{
					{Label: "Method", Value: "Run"},
					{Label: "Summary", Value: "****** NEEDS SUMMARY ******"},
				},
			},
			want: "Line: 3, Method: Run, Summary: ****** NEEDS SUMMARY ******",
		},
		{
			name: "suggestion",
			f:    rules.Finding{Line: 1, Severity: rules.SevSuggestion, Message: "x"},
			want: "Line: 1, Suggestion: x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Primary(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCodeID(t *testing.T) {
	if got := rules.Code(1001).ID(); got != "VB1001" {
		t.Fatalf("expected VB1001, got %q", got)
	}
	if got := rules.Code(42).ID(); got != "VB0042" {
		t.Fatalf("expected zero padding, got %q", got)
	}
}

func TestSeverityString(t *testing.T) {
	if rules.SevWarning.String() != "Warning" || rules.SevSuggestion.String() != "Suggestion" {
		t.Fatalf("unexpected severity names %q %q", rules.SevWarning, rules.SevSuggestion)
	}
}

// A tree without a root or positions must not produce findings or panic.
func TestRulesOnEmptyTree(t *testing.T) {
	empty := &ast.Tree{}
	for _, r := range rules.DefaultRegistry().Rules() {
		if fs := r.Check(empty); len(fs) != 0 {
			t.Errorf("%s: expected nothing on an empty tree, got %d findings", r.ID(), len(fs))
		}
	}
}

// Input with no methods, variables or loops: only the file-level option rules may fire.
func TestNoStructuralFindingsWithoutCode(t *testing.T) {
	tree := parse(t, "Imports System.Text\n")
	for _, r := range rules.DefaultRegistry().Rules() {
		fs := r.Check(tree)
		if r.Category() == rules.CategoryOptions {
			if len(fs) != 1 || fs[0].Line != 1 {
				t.Errorf("%s: expected one finding on line 1, got %v", r.ID(), lines(fs))
			}
			continue
		}
		if len(fs) != 0 {
			t.Errorf("%s: expected no findings, got\n%s", r.ID(), primaries(fs))
		}
	}
}

func TestFindingsCarryRuleMetadata(t *testing.T) {
	tree := parse(t, "Try\n    Work()\nCatch ex As Exception\nEnd Try\n")
	r := rules.NewEmptyCatch()
	fs := r.Check(tree)
	if len(fs) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(fs))
	}
	f := fs[0]
	if f.RuleID != "empty-catch" || f.Code != 1202 || f.Category != rules.CategoryTryCatch || f.Severity != rules.SevWarning {
		t.Fatalf("metadata not copied: %+v", f)
	}
}
