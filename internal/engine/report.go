package engine

import (
	"bufio"
	"io"
	"strings"

	"codecleanup/internal/diag"
	"codecleanup/internal/rules"
)

// Status says whether rules ran over the input.
type Status uint8

const (
	StatusOK Status = iota
	// StatusParseFailed: the parser reported errors, no rule ran.
	StatusParseFailed
	// StatusUnsupported: the input is not Visual Basic, no rule ran.
	StatusUnsupported
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusParseFailed:
		return "parse failed"
	case StatusUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

const (
	Banner = "=== Code Analysis Results ==="
	indent = "    "
)

// Section is one category of the report with its findings in rule order.
type Section struct {
	Name     string
	Findings []rules.Finding
}

// Report is the outcome of one analysis run. It is built once and not
// modified afterwards.
type Report struct {
	Path        string
	Status      Status
	Sections    []Section
	Diagnostics []diag.Diagnostic
}

// IndexEntry maps the n-th finding of a rendered report to its source line.
type IndexEntry struct {
	Ordinal int
	Line    int
}

// Findings returns every finding in report order.
func (r *Report) Findings() []rules.Finding {
	var out []rules.Finding
	for _, s := range r.Sections {
		out = append(out, s.Findings...)
	}
	return out
}

// Count is the number of findings.
func (r *Report) Count() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Findings)
	}
	return n
}

// Index numbers findings from 1 in report order. It is computed from the
// sections on every call, so it always agrees with Render.
func (r *Report) Index() []IndexEntry {
	out := make([]IndexEntry, 0, r.Count())
	for _, f := range r.Findings() {
		out = append(out, IndexEntry{Ordinal: len(out) + 1, Line: f.Line})
	}
	return out
}

// Render writes the canonical text report:
//
//	=== Code Analysis Results ===
//
//	--- Try-Catch Analysis ---
//	Line: 3, Warning: Empty catch block detected
//
// Reports that did not run rules print only the banner.
func (r *Report) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(Banner)
	bw.WriteString("\n\n")
	for _, s := range r.Sections {
		bw.WriteString("--- ")
		bw.WriteString(s.Name)
		bw.WriteString(" ---\n")
		for _, f := range s.Findings {
			bw.WriteString(f.Primary())
			bw.WriteByte('\n')
			for _, extra := range f.Extra {
				bw.WriteString(indent)
				bw.WriteString(extra)
				bw.WriteByte('\n')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String is Render into a string.
func (r *Report) String() string {
	var sb strings.Builder
	_ = r.Render(&sb)
	return sb.String()
}
