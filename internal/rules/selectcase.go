package rules

import (
	"fmt"

	"codecleanup/internal/ast"
)

const CategorySelectCase = "Select Case Analysis"

// ShortSelectCase suggests If/ElseIf for Select Case blocks with few Case
// blocks. Case Else counts as a block. Off unless enabled explicitly.
type ShortSelectCase struct {
	meta
	min int
}

func NewShortSelectCase(th Thresholds) *ShortSelectCase {
	return &ShortSelectCase{
		meta: meta{
			id:       "short-select-case",
			code:     2201,
			category: CategorySelectCase,
			sev:      SevSuggestion,
			desc:     "Select Case with fewer branches than the configured minimum",
			optIn:    true,
		},
		min: th.orDefault().SelectCaseMinBranches,
	}
}

func (r *ShortSelectCase) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, sel := range tree.All(ast.SelectBlock) {
		n := len(tree.ChildrenOf(sel, ast.CaseBlock))
		if n >= r.min {
			continue
		}
		kids := tree.Children(sel)
		if len(kids) == 0 || tree.Kind(kids[0]) == ast.CaseBlock {
			continue // без селектора
		}
		out = r.emit(out, tree, sel, Finding{
			Message: fmt.Sprintf("Select Case for '%s' has only %d conditions. Consider using If/ElseIf instead for better readability",
				tree.Text(kids[0]), n),
			Extra: []string{fmt.Sprintf("Hint: Select Case is more efficient with %d or more conditions", r.min)},
		})
	}
	return out
}
