// Package rules holds the diagnostic rules run over a parsed Visual Basic
// compilation unit and the registry that fixes their report order.
//
// Each rule is a small read-only traversal of an *ast.Tree returning
// Findings. Several rules are text heuristics (logging detection, the
// interpolation rewrite, Length/Add markers in loops) and are documented
// as such on their types.
package rules
