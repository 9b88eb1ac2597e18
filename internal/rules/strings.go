package rules

import (
	"strings"

	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

const CategoryInterpolation = "String Interpolation Opportunities"

// StringConcatenation suggests an interpolated string for every & or +
// expression. The rewrite only strips the operators out of the source text,
// so for anything but simple literal/variable chains it is a sketch rather
// than valid code. Nested operands are reported on their own as well.
type StringConcatenation struct{ meta }

func NewStringConcatenation() *StringConcatenation {
	return &StringConcatenation{meta{
		id:       "string-concatenation",
		code:     1801,
		category: CategoryInterpolation,
		sev:      SevSuggestion,
		desc:     "string built with & or + instead of interpolation",
	}}
}

func (r *StringConcatenation) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, id := range tree.All(ast.BinaryExpression) {
		if op := tree.Node(id).Op; op != token.Amp && op != token.Plus {
			continue
		}
		expr := tree.Text(id)
		if !strings.ContainsAny(expr, "&+") {
			continue
		}
		suggested := strings.ReplaceAll(strings.ReplaceAll(expr, " & ", ""), " + ", "")
		out = r.emit(out, tree, id, Finding{
			Message: "Consider using string interpolation instead of concatenation. Example:",
			Extra: []string{
				"Original: " + expr,
				`Suggested: $"` + suggested + `"`,
			},
		})
	}
	return out
}

// EmptyStringLiteral suggests String.Empty over "".
type EmptyStringLiteral struct{ meta }

func NewEmptyStringLiteral() *EmptyStringLiteral {
	return &EmptyStringLiteral{meta{
		id:       "empty-string-literal",
		code:     2107,
		category: CategoryPractices,
		sev:      SevSuggestion,
		desc:     `"" literal instead of String.Empty`,
	}}
}

func (r *EmptyStringLiteral) Check(tree *ast.Tree) []Finding {
	var out []Finding
	for _, id := range tree.All(ast.Literal) {
		n := tree.Node(id)
		if n.Op != token.StringLit || n.Value != `""` {
			continue
		}
		out = r.emit(out, tree, id, Finding{Message: `Use String.Empty instead of "" for better readability`})
	}
	return out
}
