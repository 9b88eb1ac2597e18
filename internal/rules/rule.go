package rules

import (
	"fmt"
	"strconv"
	"strings"

	"codecleanup/internal/ast"
)

// Severity of a finding. Only two levels exist; the report prints them as tags.
type Severity uint8

const (
	SevWarning Severity = iota
	SevSuggestion
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "Warning"
	case SevSuggestion:
		return "Suggestion"
	default:
		return "Severity(" + strconv.Itoa(int(s)) + ")"
	}
}

// Code is the stable numeric identifier of a rule, printed as VBxxxx.
type Code uint16

func (c Code) ID() string {
	return fmt.Sprintf("VB%04d", uint16(c))
}

// Field is one "Label: Value" pair printed between the line number and the message.
type Field struct {
	Label string
	Value string
}

// Finding is one reported issue. Findings are values: rules create them and
// nothing mutates them afterwards.
type Finding struct {
	Line     int
	Category string
	RuleID   string
	Code     Code
	Severity Severity
	Subject  []Field
	// Message may be empty when the subject fields already say everything.
	Message string
	Extra   []string
}

// Primary renders the first report line of the finding:
//
//	Line: 12, Method: Load, Warning: Method lacks try-catch block
func (f Finding) Primary() string {
	var sb strings.Builder
	sb.WriteString("Line: ")
	sb.WriteString(strconv.Itoa(f.Line))
	for _, fl := range f.Subject {
		sb.WriteString(", ")
		sb.WriteString(fl.Label)
		sb.WriteString(": ")
		sb.WriteString(fl.Value)
	}
	if f.Message != "" {
		sb.WriteString(", ")
		sb.WriteString(f.Severity.String())
		sb.WriteString(": ")
		sb.WriteString(f.Message)
	}
	return sb.String()
}

// Rule inspects one pattern class. Check must only read the tree: rules
// share no state and may run concurrently on the same tree.
type Rule interface {
	ID() string
	Code() Code
	Category() string
	Severity() Severity
	Description() string
	DefaultEnabled() bool
	Check(tree *ast.Tree) []Finding
}

// meta carries the static description shared by every rule type.
type meta struct {
	id       string
	code     Code
	category string
	sev      Severity
	desc     string
	optIn    bool
}

func (m meta) ID() string           { return m.id }
func (m meta) Code() Code           { return m.code }
func (m meta) Category() string     { return m.category }
func (m meta) Severity() Severity   { return m.sev }
func (m meta) Description() string  { return m.desc }
func (m meta) DefaultEnabled() bool { return !m.optIn }

// emit appends f addressed at the start line of node. Nodes without a
// resolvable position are skipped silently.
func (m meta) emit(out []Finding, tree *ast.Tree, node ast.NodeID, f Finding) []Finding {
	line, ok := tree.Line(node)
	if !ok {
		return out
	}
	return m.emitLine(out, line, f)
}

func (m meta) emitLine(out []Finding, line int, f Finding) []Finding {
	if line < 1 {
		return out
	}
	f.Line = line
	f.RuleID = m.id
	f.Code = m.code
	f.Category = m.category
	f.Severity = m.sev
	return append(out, f)
}
