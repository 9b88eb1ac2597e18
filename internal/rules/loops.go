package rules

import (
	"strings"

	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

const (
	CategoryLinq  = "LINQ Opportunities"
	CategoryLoops = "Loop Efficiency Analysis"
)

// declarative reports whether the loop body already uses a query or a
// Where/Select call.
func declarative(tree *ast.Tree, block ast.NodeID) bool {
	if tree.HasDescendant(block, ast.QueryExpression) {
		return true
	}
	return anyDescendant(tree, block, ast.MemberAccess, func(_ ast.NodeID, n *ast.Node) bool {
		return token.EqualFold(n.Name, "Where") || token.EqualFold(n.Name, "Select")
	})
}

// LoopToLinqFilter suggests Where() for counted loops that branch on each element.
type LoopToLinqFilter struct{ meta }

func NewLoopToLinqFilter() *LoopToLinqFilter {
	return &LoopToLinqFilter{meta{
		id:       "loop-to-linq-filter",
		code:     1701,
		category: CategoryLinq,
		sev:      SevSuggestion,
		desc:     "For loop with an If inside could be a Where() query",
	}}
}

func (r *LoopToLinqFilter) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, loop := range tree.All(ast.ForBlock) {
		b := body(tree, loop)
		if declarative(tree, b) || !tree.HasDescendant(b, ast.IfBlock, ast.SingleLineIf) {
			continue
		}
		out = r.emit(out, tree, loop, Finding{
			Message: "Consider using LINQ Where() instead of For loop with If statement",
		})
	}
	return out
}

// LoopToLinqProjection suggests Select() for counted loops that build objects
// or append to a collection (Add, AddRange).
type LoopToLinqProjection struct{ meta }

func NewLoopToLinqProjection() *LoopToLinqProjection {
	return &LoopToLinqProjection{meta{
		id:       "loop-to-linq-projection",
		code:     1702,
		category: CategoryLinq,
		sev:      SevSuggestion,
		desc:     "For loop that builds a collection could be a Select() query",
	}}
}

func (r *LoopToLinqProjection) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, loop := range tree.All(ast.ForBlock) {
		b := body(tree, loop)
		if declarative(tree, b) {
			continue
		}
		builds := tree.HasDescendant(b, ast.ObjectCreation, ast.ArrayCreation) ||
			anyDescendant(tree, b, ast.Invocation, func(id ast.NodeID, _ *ast.Node) bool {
				return token.HasPrefixFold(calleeName(tree, id), "Add")
			})
		if !builds {
			continue
		}
		out = r.emit(out, tree, loop, Finding{
			Message: "Consider using LINQ Select() or other LINQ methods instead of For loop",
		})
	}
	return out
}

// nestedLoop reports loops of kind that contain another loop of the same kind.
// The finding is addressed at the outer loop.
type nestedLoop struct {
	meta
	kind    ast.Kind
	message string
	extra   string
}

func NewNestedLoop() Rule {
	return &nestedLoop{
		meta: meta{
			id:       "nested-loop",
			code:     1901,
			category: CategoryLoops,
			sev:      SevWarning,
			desc:     "For loop nested in another For loop",
		},
		kind:    ast.ForBlock,
		message: "Nested loop detected. Consider refactoring to improve performance",
		extra:   "Suggestion: Could this be simplified using LINQ or a different data structure?",
	}
}

func NewNestedForEach() Rule {
	return &nestedLoop{
		meta: meta{
			id:       "nested-foreach",
			code:     1902,
			category: CategoryLoops,
			sev:      SevWarning,
			desc:     "For Each loop nested in another For Each loop",
		},
		kind:    ast.ForEachBlock,
		message: "Nested ForEach loop detected. Consider using a join or lookup",
		extra:   "Suggestion: Consider using LINQ Join() or GroupBy() instead",
	}
}

func (r *nestedLoop) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, loop := range tree.All(r.kind) {
		if !tree.HasDescendant(loop, r.kind) {
			continue
		}
		out = r.emit(out, tree, loop, Finding{Message: r.message, Extra: []string{r.extra}})
	}
	return out
}

// invocationLoop reports loops of kind containing a call whose source text
// includes one of the markers. Text matching keeps it a heuristic: any call
// mentioning "Length" or "Add" anywhere counts.
type invocationLoop struct {
	meta
	kind    ast.Kind
	markers []string
	message string
	extra   string
}

func NewLengthInLoop() Rule {
	return &invocationLoop{
		meta: meta{
			id:       "length-in-loop",
			code:     1903,
			category: CategoryLoops,
			sev:      SevSuggestion,
			desc:     "length or bounds query evaluated inside a For loop",
		},
		kind:    ast.ForBlock,
		markers: []string{"GetLength", "Length"},
		message: "Array length/bounds check inside loop. Consider moving outside loop",
		extra:   "Performance: Cache the length before the loop starts",
	}
}

func NewMutateDuringIteration() Rule {
	return &invocationLoop{
		meta: meta{
			id:       "mutate-during-iteration",
			code:     1904,
			category: CategoryLoops,
			sev:      SevWarning,
			desc:     "Add/Remove call inside a For Each loop",
		},
		kind:    ast.ForEachBlock,
		markers: []string{"Add", "Remove"},
		message: "Collection modification inside loop detected",
		extra:   "Suggestion: Consider using a temporary collection or different approach",
	}
}

func (r *invocationLoop) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, loop := range tree.All(r.kind) {
		hit := anyDescendant(tree, loop, ast.Invocation, func(id ast.NodeID, _ *ast.Node) bool {
			text := tree.Text(id)
			for _, m := range r.markers {
				if strings.Contains(text, m) {
					return true
				}
			}
			return false
		})
		if !hit {
			continue
		}
		out = r.emit(out, tree, loop, Finding{Message: r.message, Extra: []string{r.extra}})
	}
	return out
}
