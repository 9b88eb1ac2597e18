// Package nav turns a clicked report line into a source position.
//
// Every finding line starts with "Line: N, ", and that number is the only
// addressing used: nothing else is consulted when navigating.
package nav

import (
	"strconv"
	"strings"
)

const prefix = "Line: "

// ParseLine extracts N from a report line of the form "Line: N, ...".
// Extra lines (indented), headers, the banner and anything malformed report false.
func ParseLine(text string) (int, bool) {
	rest, ok := strings.CutPrefix(text, prefix)
	if !ok {
		return 0, false
	}
	num, _, _ := strings.Cut(rest, ",")
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Viewer is the source pane a report is shown next to. Lines are 1-based.
type Viewer interface {
	ScrollToLine(line int)
	SelectLine(line int)
}

// Navigate moves v to the line named by text. It returns false and leaves
// v untouched when text carries no line number.
func Navigate(v Viewer, text string) bool {
	line, ok := ParseLine(text)
	if !ok || v == nil {
		return false
	}
	v.ScrollToLine(line)
	v.SelectLine(line)
	return true
}
