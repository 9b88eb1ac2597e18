package rules

import (
	"strings"

	"codecleanup/internal/ast"
)

const CategoryTryCatch = "Try-Catch Analysis"

// MissingTryCatch reports methods with no Catch clause anywhere in their body.
// Try...Finally alone handles nothing and is reported too.
type MissingTryCatch struct{ meta }

func NewMissingTryCatch() *MissingTryCatch {
	return &MissingTryCatch{meta{
		id:       "missing-try-catch",
		code:     1201,
		category: CategoryTryCatch,
		sev:      SevWarning,
		desc:     "method contains no Try/Catch",
	}}
}

func (r *MissingTryCatch) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, m := range tree.All(ast.MethodBlock) {
		if tree.HasDescendant(m, ast.CatchClause) {
			continue
		}
		out = r.emit(out, tree, m, Finding{
			Subject: []Field{{Label: "Method", Value: tree.Node(m).Name}},
			Message: "Method lacks try-catch block",
		})
	}
	return out
}

// EmptyCatch reports Catch clauses without statements.
type EmptyCatch struct{ meta }

func NewEmptyCatch() *EmptyCatch {
	return &EmptyCatch{meta{
		id:       "empty-catch",
		code:     1202,
		category: CategoryTryCatch,
		sev:      SevWarning,
		desc:     "Catch block has an empty body",
	}}
}

func (r *EmptyCatch) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, c := range tree.All(ast.CatchClause) {
		if len(tree.Children(body(tree, c))) != 0 {
			continue
		}
		out = r.emit(out, tree, c, Finding{Message: "Empty catch block detected"})
	}
	return out
}

// loggingMarkers are looked up as plain substrings of the Catch body text,
// so a variable called "Logical" counts as logging too.
var loggingMarkers = []string{"Log", "Console.Write", "Debug.Write"}

// UnloggedGenericCatch reports "Catch ex As Exception" whose body never
// mentions logging or console/debug output.
type UnloggedGenericCatch struct{ meta }

func NewUnloggedGenericCatch() *UnloggedGenericCatch {
	return &UnloggedGenericCatch{meta{
		id:       "unlogged-generic-catch",
		code:     1203,
		category: CategoryTryCatch,
		sev:      SevWarning,
		desc:     "Catch of System.Exception without logging",
	}}
}

func (r *UnloggedGenericCatch) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, c := range tree.All(ast.CatchClause) {
		if !isGenericException(asType(tree, c)) {
			continue
		}
		if mentionsLogging(tree.Text(body(tree, c))) {
			continue
		}
		out = r.emit(out, tree, c, Finding{Message: "Catch block with generic Exception lacks proper error logging"})
	}
	return out
}

func mentionsLogging(text string) bool {
	for _, m := range loggingMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
