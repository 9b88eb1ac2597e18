package rules

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

const (
	CategoryNaming         = "Naming Conventions"
	CategoryNamingProperty = "Naming and Property Conventions"
)

var (
	hungarianPrefixes      = []string{"str", "int", "bln"}
	localHungarianPrefixes = []string{"str", "int", "bln", "obj"}
)

// hasAnyPrefix is case-sensitive: "strName" matches, "Strategy" does not.
func hasAnyPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// namedSymbol is a declarator or a parameter together with what to call it in messages.
type namedSymbol struct {
	id   ast.NodeID
	name string
	noun string
}

func namedSymbols(tree *ast.Tree) []namedSymbol {
	var out []namedSymbol
	for _, id := range tree.All(ast.VariableDeclarator, ast.Parameter) {
		name := declaredName(tree, id)
		if name == "" {
			continue
		}
		noun := "Variable"
		if tree.Kind(id) == ast.Parameter {
			noun = "Parameter"
		}
		out = append(out, namedSymbol{id: id, name: name, noun: noun})
	}
	return out
}

// HungarianNotation suggests dropping type prefixes such as strName or intCount.
type HungarianNotation struct{ meta }

func NewHungarianNotation() *HungarianNotation {
	return &HungarianNotation{meta{
		id:       "hungarian-notation",
		code:     1501,
		category: CategoryNaming,
		sev:      SevSuggestion,
		desc:     "variable or parameter name starts with a type prefix",
	}}
}

func (r *HungarianNotation) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, s := range namedSymbols(tree) {
		if !hasAnyPrefix(s.name, hungarianPrefixes) {
			continue
		}
		out = r.emit(out, tree, s.id, Finding{
			Message: fmt.Sprintf("%s '%s' appears to use Hungarian notation. Consider using descriptive names instead", s.noun, s.name),
		})
	}
	return out
}

// ReservedPrefix reports names starting with My in any case; they read like
// the My namespace.
type ReservedPrefix struct{ meta }

func NewReservedPrefix() *ReservedPrefix {
	return &ReservedPrefix{meta{
		id:       "reserved-prefix-conflict",
		code:     1502,
		category: CategoryNaming,
		sev:      SevWarning,
		desc:     "name starts with the My prefix",
	}}
}

func (r *ReservedPrefix) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, s := range namedSymbols(tree) {
		if !token.HasPrefixFold(s.name, "My") {
			continue
		}
		out = r.emit(out, tree, s.id, Finding{
			Message: fmt.Sprintf("%s '%s' should not use 'My' prefix as it conflicts with VB.NET My feature", s.noun, s.name),
		})
	}
	return out
}

// methodLocals returns declarators of Dim/Static/Const statements that sit
// directly in a method body. Locals nested in If, loops and the like are skipped.
func methodLocals(tree *ast.Tree) []ast.NodeID {
	var out []ast.NodeID
	for _, d := range tree.All(ast.VariableDeclarator) {
		decl := tree.Parent(d)
		if tree.Kind(decl) != ast.LocalDeclaration {
			continue
		}
		block := tree.Parent(decl)
		if tree.Kind(block) != ast.Block || tree.Kind(tree.Parent(block)) != ast.MethodBlock {
			continue
		}
		out = append(out, d)
	}
	return out
}

// LocalNamingCase reports method locals that start with an upper-case letter.
type LocalNamingCase struct{ meta }

func NewLocalNamingCase() *LocalNamingCase {
	return &LocalNamingCase{meta{
		id:       "local-naming-case",
		code:     2001,
		category: CategoryNamingProperty,
		sev:      SevWarning,
		desc:     "local variable starts with an upper-case letter",
	}}
}

func (r *LocalNamingCase) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, d := range methodLocals(tree) {
		name := declaredName(tree, d)
		first, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsUpper(first) {
			continue
		}
		out = r.emit(out, tree, d, Finding{
			Message: fmt.Sprintf("Local variable '%s' should start with lowercase letter", name),
		})
	}
	return out
}

// LocalHungarian is the stricter local-only variant that also rejects obj.
type LocalHungarian struct{ meta }

func NewLocalHungarian() *LocalHungarian {
	return &LocalHungarian{meta{
		id:       "local-hungarian-notation",
		code:     2002,
		category: CategoryNamingProperty,
		sev:      SevWarning,
		desc:     "local variable uses a str/int/bln/obj prefix",
	}}
}

func (r *LocalHungarian) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, d := range methodLocals(tree) {
		name := declaredName(tree, d)
		if !hasAnyPrefix(name, localHungarianPrefixes) {
			continue
		}
		out = r.emit(out, tree, d, Finding{
			Message: fmt.Sprintf("Variable '%s' uses Hungarian notation. Use descriptive names instead", name),
		})
	}
	return out
}
