package rules

import (
	"fmt"

	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

const CategoryPractices = "VB.NET Specific Best Practices"

// NonShortCircuitLogic reports And/Or where AndAlso/OrElse would short-circuit.
// Bitwise uses such as enum flag masks are reported too.
type NonShortCircuitLogic struct{ meta }

func NewNonShortCircuitLogic() *NonShortCircuitLogic {
	return &NonShortCircuitLogic{meta{
		id:       "non-short-circuit-logic",
		code:     2101,
		category: CategoryPractices,
		sev:      SevWarning,
		desc:     "And/Or used instead of AndAlso/OrElse",
	}}
}

func (r *NonShortCircuitLogic) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, id := range tree.All(ast.BinaryExpression) {
		var msg string
		switch tree.Node(id).Op {
		case token.KwAnd:
			msg = "Use 'AndAlso' instead of 'And' for conditional logic to ensure short-circuit evaluation"
		case token.KwOr:
			msg = "Use 'OrElse' instead of 'Or' for conditional logic to ensure short-circuit evaluation"
		default:
			continue
		}
		out = r.emit(out, tree, id, Finding{Message: msg})
	}
	return out
}

// ExplicitCastStyle suggests DirectCast over CType.
type ExplicitCastStyle struct{ meta }

func NewExplicitCastStyle() *ExplicitCastStyle {
	return &ExplicitCastStyle{meta{
		id:       "explicit-cast-style",
		code:     2102,
		category: CategoryPractices,
		sev:      SevSuggestion,
		desc:     "CType where DirectCast would do",
	}}
}

func (r *ExplicitCastStyle) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, id := range tree.All(ast.CastExpression) {
		if tree.Node(id).Op != token.KwCType {
			continue
		}
		out = r.emit(out, tree, id, Finding{
			Message: "Consider using 'DirectCast' instead of 'CType' when the type is known for better performance",
		})
	}
	return out
}

// NegatedIsComparison fires on every "a Is b". It does not look for a
// surrounding Not, so plain identity checks are reported as well.
type NegatedIsComparison struct{ meta }

func NewNegatedIsComparison() *NegatedIsComparison {
	return &NegatedIsComparison{meta{
		id:       "negated-is-comparison",
		code:     2103,
		category: CategoryPractices,
		sev:      SevSuggestion,
		desc:     "Is comparison that may be written with IsNot",
	}}
}

func (r *NegatedIsComparison) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, id := range tree.All(ast.BinaryExpression) {
		if tree.Node(id).Op != token.KwIs {
			continue
		}
		out = r.emit(out, tree, id, Finding{Message: "Consider using 'IsNot' instead of 'Is Not' for more concise code"})
	}
	return out
}

// RepeatedMemberAccess suggests a With block when one method reaches through
// the same receiver text several times. The finding sits at the first access.
type RepeatedMemberAccess struct {
	meta
	threshold int
}

func NewRepeatedMemberAccess(th Thresholds) *RepeatedMemberAccess {
	return &RepeatedMemberAccess{
		meta: meta{
			id:       "repeated-member-access",
			code:     2104,
			category: CategoryPractices,
			sev:      SevSuggestion,
			desc:     "same receiver accessed repeatedly in one method",
		},
		threshold: th.orDefault().MemberAccessRepeat,
	}
}

func (r *RepeatedMemberAccess) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, m := range tree.All(ast.MethodBlock) {
		type group struct {
			first ast.NodeID
			count int
		}
		var order []string
		groups := make(map[string]*group)
		for _, acc := range tree.Descendants(m, ast.MemberAccess) {
			kids := tree.Children(acc)
			if len(kids) == 0 {
				continue // внутри With
			}
			key := tree.Text(kids[0])
			g, ok := groups[key]
			if !ok {
				g = &group{first: acc}
				groups[key] = g
				order = append(order, key)
			}
			g.count++
		}
		for _, key := range order {
			g := groups[key]
			if g.count < r.threshold {
				continue
			}
			out = r.emit(out, tree, g.first, Finding{
				Message: fmt.Sprintf("Consider using 'With' block for multiple accesses to '%s'", key),
			})
		}
	}
	return out
}

// TernaryOperatorPreferred reports IIf calls.
type TernaryOperatorPreferred struct{ meta }

func NewTernaryOperatorPreferred() *TernaryOperatorPreferred {
	return &TernaryOperatorPreferred{meta{
		id:       "ternary-operator-preferred",
		code:     2105,
		category: CategoryPractices,
		sev:      SevWarning,
		desc:     "IIf() instead of the If() operator",
	}}
}

func (r *TernaryOperatorPreferred) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, inv := range tree.All(ast.Invocation) {
		kids := tree.Children(inv)
		if len(kids) == 0 || tree.Kind(kids[0]) != ast.Identifier || !token.EqualFold(tree.Node(kids[0]).Name, "IIf") {
			continue
		}
		out = r.emit(out, tree, inv, Finding{Message: "Use 'If' operator instead of 'IIf' for short-circuit evaluation"})
	}
	return out
}

// EnumMissingFlags reports enums whose members combine values with Or but
// which carry no <Flags> attribute.
type EnumMissingFlags struct{ meta }

func NewEnumMissingFlags() *EnumMissingFlags {
	return &EnumMissingFlags{meta{
		id:       "enum-missing-flags",
		code:     2106,
		category: CategoryPractices,
		sev:      SevWarning,
		desc:     "enum combines members with Or but lacks <Flags>",
	}}
}

func (r *EnumMissingFlags) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, enum := range tree.All(ast.EnumBlock) {
		if hasFlagsAttribute(tree, enum) {
			continue
		}
		bitwise := false
		for _, member := range tree.ChildrenOf(enum, ast.EnumMember) {
			if anyDescendant(tree, member, ast.BinaryExpression, func(_ ast.NodeID, n *ast.Node) bool {
				return n.Op == token.KwOr
			}) {
				bitwise = true
				break
			}
		}
		if !bitwise {
			continue
		}
		out = r.emit(out, tree, enum, Finding{Message: "Enum uses bitwise 'Or' but lacks <Flags> attribute"})
	}
	return out
}

func hasFlagsAttribute(tree *ast.Tree, enum ast.NodeID) bool {
	for _, list := range tree.ChildrenOf(enum, ast.AttributeList) {
		for _, attr := range tree.ChildrenOf(list, ast.Attribute) {
			name := lastSegment(tree.Node(attr).Name)
			if token.EqualFold(name, "Flags") || token.EqualFold(name, "FlagsAttribute") {
				return true
			}
		}
	}
	return false
}
