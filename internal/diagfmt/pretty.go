package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"codecleanup/internal/diag"
	"codecleanup/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   3 | End Sub
//	     | ^~~~~~~
//
// затем Notes в том же формате. Items are printed in the given order.
func Pretty(w io.Writer, items []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	bw := bufio.NewWriter(w)
	p := newPalette(opts.Color)
	for _, d := range items {
		loc := location(fs, d.Primary, opts.PathMode)
		fmt.Fprintf(bw, "%s: %s %s: %s\n",
			loc,
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message,
		)
		snippet(bw, fs, d.Primary, p)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(bw, "  %s %s: %s\n", p.note.Sprint("note:"), location(fs, n.Span, opts.PathMode), n.Msg)
		}
	}
	return bw.Flush()
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	if fs == nil {
		return "<unknown>"
	}
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>"
	}
	pos := f.Position(sp.Start)
	if !pos.Valid() {
		return formatPath(f, fs, mode)
	}
	return fmt.Sprintf("%s:%d:%d", formatPath(f, fs, mode), pos.Line, pos.Col)
}

// snippet печатает строку исходника и подчёркивание под span.
func snippet(w io.Writer, fs *source.FileSet, sp source.Span, p palette) {
	if fs == nil {
		return
	}
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := f.Position(sp.Start), f.Position(sp.End)
	if !start.Valid() {
		return
	}
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	num := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), line)

	col := min(int(start.Col)-1, len(line))
	width := 1
	if end.Valid() && end.Line == start.Line && end.Col > start.Col {
		stop := min(int(end.Col)-1, len(line))
		width = max(runewidth.StringWidth(line[col:stop]), 1)
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, " %s %s %s%s\n", pad, p.gutter.Sprint("|"), indentFor(line[:col]), p.caret.Sprint(marker))
}

// indentFor keeps tabs so the caret lines up with what the terminal shows.
func indentFor(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
