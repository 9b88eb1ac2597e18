package rules

import (
	"strings"

	"codecleanup/internal/ast"
)

const CategoryTernary = "Ternary Condition Analysis"

// TernaryCandidate reports single-line If statements of the shape
// "If c Then a = x Else a = y" (or Return in both branches). Only the
// statement shapes are compared; the assignment targets may differ.
type TernaryCandidate struct{ meta }

func NewTernaryCandidate() *TernaryCandidate {
	return &TernaryCandidate{meta{
		id:       "ternary-candidate",
		code:     1101,
		category: CategoryTernary,
		sev:      SevSuggestion,
		desc:     "single-line If/Else that could be an If() expression",
	}}
}

func (r *TernaryCandidate) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, id := range tree.All(ast.SingleLineIf) {
		then, ok := soleStatement(tree, body(tree, id))
		if !ok {
			continue
		}
		els, ok := soleStatement(tree, body(tree, tree.Child(id, ast.ElseClause)))
		if !ok || !ternaryArm(tree.Kind(then)) || !ternaryArm(tree.Kind(els)) {
			continue
		}
		out = r.emit(out, tree, id, Finding{
			Subject: []Field{{Label: "If Statement", Value: strings.TrimSpace(tree.Text(id))}},
			Message: "Can be converted to a ternary expression",
		})
	}
	return out
}

func soleStatement(tree *ast.Tree, block ast.NodeID) (ast.NodeID, bool) {
	kids := tree.Children(block)
	if len(kids) != 1 {
		return ast.NoNodeID, false
	}
	return kids[0], true
}

func ternaryArm(k ast.Kind) bool {
	return k == ast.Assignment || k == ast.ReturnStatement
}
