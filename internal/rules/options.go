package rules

import (
	"codecleanup/internal/ast"
	"codecleanup/internal/token"
)

const CategoryOptions = "Option Settings"

// MissingOption reports a compilation unit that never switches the named
// option on. The finding is always addressed at line 1.
type MissingOption struct {
	meta
	option  string
	message string
}

func NewMissingOptionStrict() *MissingOption {
	return &MissingOption{
		meta: meta{
			id:       "missing-option-strict",
			code:     1301,
			category: CategoryOptions,
			sev:      SevWarning,
			desc:     "file does not set Option Strict On",
		},
		option:  "Strict",
		message: "'Option Strict On' is not set. This allows late binding which can cause runtime errors and performance issues",
	}
}

func NewMissingOptionExplicit() *MissingOption {
	return &MissingOption{
		meta: meta{
			id:       "missing-option-explicit",
			code:     1302,
			category: CategoryOptions,
			sev:      SevWarning,
			desc:     "file does not set Option Explicit On",
		},
		option:  "Explicit",
		message: "'Option Explicit On' is not set. Variables should be explicitly declared",
	}
}

func (r *MissingOption) Check(tree *ast.Tree) []Finding {
	// без корня нет и файла; пустой разобранный файл корень имеет и предупреждается
	if tree.Empty() {
		return nil
	}
	for _, id := range tree.All(ast.OptionStatement) {
		n := tree.Node(id)
		if !token.EqualFold(n.Name, r.option) {
			continue
		}
		// "Option Strict" без значения означает On
		if n.Value == "" || token.EqualFold(n.Value, "On") {
			return nil
		}
	}
	return r.emitLine(nil, 1, Finding{Message: r.message})
}
