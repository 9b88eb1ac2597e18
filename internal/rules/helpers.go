package rules

import (
	"strings"

	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

// Thresholds are the tunable limits used by some rules.
type Thresholds struct {
	// SummaryMinLength is the shortest leading comment text that counts as a summary.
	SummaryMinLength int
	// SelectCaseMinBranches: Select Case with fewer Case blocks is reported.
	SelectCaseMinBranches int
	// MemberAccessRepeat: accesses through one receiver in a method before a With block is suggested.
	MemberAccessRepeat int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SummaryMinLength:      10,
		SelectCaseMinBranches: 5,
		MemberAccessRepeat:    3,
	}
}

// orDefault replaces non-positive values with the defaults.
func (t Thresholds) orDefault() Thresholds {
	def := DefaultThresholds()
	if t.SummaryMinLength <= 0 {
		t.SummaryMinLength = def.SummaryMinLength
	}
	if t.SelectCaseMinBranches <= 0 {
		t.SelectCaseMinBranches = def.SelectCaseMinBranches
	}
	if t.MemberAccessRepeat <= 0 {
		t.MemberAccessRepeat = def.MemberAccessRepeat
	}
	return t
}

// declaredName returns the first name declared by a VariableDeclarator or Parameter.
func declaredName(tree *ast.Tree, id ast.NodeID) string {
	name := tree.Child(id, ast.DeclaredName)
	if n := tree.Node(name); n != nil {
		return n.Name
	}
	return ""
}

// asType returns the type text of the node's As clause, or "".
func asType(tree *ast.Tree, id ast.NodeID) string {
	if n := tree.Node(tree.Child(id, ast.AsClause)); n != nil {
		return n.Value
	}
	return ""
}

// calleeName returns the simple name an invocation calls: Foo for Foo(),
// Bar for x.Bar(). Anything else yields "".
func calleeName(tree *ast.Tree, inv ast.NodeID) string {
	kids := tree.Children(inv)
	if len(kids) == 0 {
		return ""
	}
	switch n := tree.Node(kids[0]); n.Kind {
	case ast.Identifier, ast.MemberAccess, ast.ConditionalAccess:
		return n.Name
	}
	return ""
}

func isGenericException(typ string) bool {
	return token.EqualFold(typ, "Exception") || token.EqualFold(typ, "System.Exception")
}

func isObjectType(typ string) bool {
	return token.EqualFold(typ, "Object") || token.EqualFold(typ, "System.Object")
}

// lastSegment returns the part after the final dot: System.Flags -> Flags.
func lastSegment(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// body returns the Block child of a block construct.
func body(tree *ast.Tree, id ast.NodeID) ast.NodeID {
	return tree.Child(id, ast.Block)
}

// anyDescendant reports whether some descendant of id of the given kind satisfies pred.
func anyDescendant(tree *ast.Tree, id ast.NodeID, kind ast.Kind, pred func(ast.NodeID, *ast.Node) bool) bool {
	for _, d := range tree.Descendants(id, kind) {
		if pred(d, tree.Node(d)) {
			return true
		}
	}
	return false
}
