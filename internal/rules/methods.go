package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

const (
	CategorySummary = "Method Summary Analysis"
	CategoryMethods = "Method Analysis"
)

// MissingSummary reports Sub/Function blocks whose leading comment text is
// shorter than the configured minimum. Constructors and operators are not
// methods here.
type MissingSummary struct {
	meta
	minLength int
}

func NewMissingSummary(th Thresholds) *MissingSummary {
	return &MissingSummary{
		meta: meta{
			id:       "missing-summary",
			code:     1001,
			category: CategorySummary,
			sev:      SevWarning,
			desc:     "method has no summary comment in front of it",
		},
		minLength: th.orDefault().SummaryMinLength,
	}
}

func (r *MissingSummary) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, m := range tree.All(ast.MethodBlock) {
		summary := strings.TrimSpace(tree.LeadingText(m))
		if utf8.RuneCountInString(summary) >= r.minLength {
			continue
		}
		out = r.emit(out, tree, m, Finding{
			Subject: []Field{
				{Label: "Method", Value: tree.Node(m).Name},
				{Label: "Summary", Value: "****** NEEDS SUMMARY ******"},
			},
		})
	}
	return out
}

// MissingMethodDoc reports methods without ''' documentation lines.
type MissingMethodDoc struct{ meta }

func NewMissingMethodDoc() *MissingMethodDoc {
	return &MissingMethodDoc{meta{
		id:       "missing-method-doc",
		code:     1601,
		category: CategoryMethods,
		sev:      SevSuggestion,
		desc:     "method lacks XML documentation comments",
	}}
}

func (r *MissingMethodDoc) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, m := range tree.All(ast.MethodBlock) {
		if hasTrivia(tree, m, func(tv token.Trivia) bool { return tv.Kind == token.TriviaDocLine }) {
			continue
		}
		out = r.emit(out, tree, m, Finding{
			Message: fmt.Sprintf("Method '%s' should have XML documentation comments", tree.Node(m).Name),
		})
	}
	return out
}

// MissingMethodComment reports methods with no comment of any kind in front of them.
type MissingMethodComment struct{ meta }

func NewMissingMethodComment() *MissingMethodComment {
	return &MissingMethodComment{meta{
		id:       "missing-method-comment",
		code:     1602,
		category: CategoryMethods,
		sev:      SevSuggestion,
		desc:     "method has no comment explaining its purpose",
	}}
}

func (r *MissingMethodComment) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, m := range tree.All(ast.MethodBlock) {
		if hasTrivia(tree, m, token.Trivia.IsComment) {
			continue
		}
		out = r.emit(out, tree, m, Finding{
			Message: fmt.Sprintf("Method '%s' should have comments explaining its purpose", tree.Node(m).Name),
		})
	}
	return out
}

func hasTrivia(tree *ast.Tree, id ast.NodeID, pred func(token.Trivia) bool) bool {
	n := tree.Node(id)
	if n == nil {
		return false
	}
	for _, tv := range n.Leading {
		if pred(tv) {
			return true
		}
	}
	return false
}
