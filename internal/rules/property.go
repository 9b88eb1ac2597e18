package rules

import (
	"fmt"

	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

// AutoPropertyCandidate reports Get/Set properties that only return and
// assign, without any If inside.
type AutoPropertyCandidate struct{ meta }

func NewAutoPropertyCandidate() *AutoPropertyCandidate {
	return &AutoPropertyCandidate{meta{
		id:       "auto-property-candidate",
		code:     2003,
		category: CategoryNamingProperty,
		sev:      SevSuggestion,
		desc:     "property with trivial accessors could be auto-implemented",
	}}
}

func (r *AutoPropertyCandidate) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, prop := range tree.All(ast.PropertyBlock) {
		getter, setter := accessor(tree, prop, token.KwGet), accessor(tree, prop, token.KwSet)
		if !getter.IsValid() || !setter.IsValid() {
			continue
		}
		if len(tree.Descendants(getter, ast.ReturnStatement)) != 1 ||
			len(tree.Descendants(setter, ast.Assignment)) != 1 {
			continue
		}
		if tree.HasDescendant(getter, ast.IfBlock, ast.SingleLineIf) ||
			tree.HasDescendant(setter, ast.IfBlock, ast.SingleLineIf) {
			continue
		}
		name := tree.Node(prop).Name
		typ := asType(tree, prop)
		if typ == "" {
			typ = "Type"
		}
		out = r.emit(out, tree, prop, Finding{
			Message: fmt.Sprintf("Property '%s' could be converted to an auto-implemented property", name),
			Extra:   []string{fmt.Sprintf("Example: Public Property %s As %s { Get; Set; }", name, typ)},
		})
	}
	return out
}

func accessor(tree *ast.Tree, prop ast.NodeID, kind token.Kind) ast.NodeID {
	for _, a := range tree.ChildrenOf(prop, ast.Accessor) {
		if tree.Node(a).Op == kind {
			return a
		}
	}
	return ast.NoNodeID
}
