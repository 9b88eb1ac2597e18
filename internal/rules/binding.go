package rules

import (
	"fmt"

	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

const CategoryLateBinding = "Late Binding Analysis"

// LateBoundVariable reports declarations typed As Object.
type LateBoundVariable struct{ meta }

func NewLateBoundVariable() *LateBoundVariable {
	return &LateBoundVariable{meta{
		id:       "late-bound-variable",
		code:     1401,
		category: CategoryLateBinding,
		sev:      SevWarning,
		desc:     "variable declared As Object",
	}}
}

func (r *LateBoundVariable) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, d := range tree.All(ast.VariableDeclarator) {
		if !isObjectType(asType(tree, d)) {
			continue
		}
		out = r.emit(out, tree, d, Finding{
			Message: fmt.Sprintf("Variable '%s' is late-bound (type Object). Consider using early binding for better performance and compile-time checking",
				declaredName(tree, d)),
		})
	}
	return out
}

// DynamicObjectCreation reports calls to CreateObject.
type DynamicObjectCreation struct{ meta }

func NewDynamicObjectCreation() *DynamicObjectCreation {
	return &DynamicObjectCreation{meta{
		id:       "dynamic-object-creation",
		code:     1402,
		category: CategoryLateBinding,
		sev:      SevWarning,
		desc:     "object created by name through CreateObject",
	}}
}

func (r *DynamicObjectCreation) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, inv := range tree.All(ast.Invocation) {
		if !token.EqualFold(calleeName(tree, inv), "CreateObject") {
			continue
		}
		out = r.emit(out, tree, inv, Finding{
			Message: "CreateObject call detected. Consider using early binding with 'New' keyword instead",
		})
	}
	return out
}
