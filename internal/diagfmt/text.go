package diagfmt

import (
	"bufio"
	"io"
	"strconv"

	"github.com/fatih/color"

	"codecleanup/internal/engine"
	"codecleanup/internal/rules"
)

// Text writes reports in the canonical layout. Without colour the bytes are
// exactly those of engine.Report.Render.
func Text(w io.Writer, reports []*engine.Report, opts TextOpts) error {
	headers := opts.Headers && len(reports) > 1
	for i, rep := range reports {
		if headers {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "==> "+rep.Path+" <==\n"); err != nil {
				return err
			}
		}
		var err error
		if opts.Color {
			err = coloredReport(w, rep)
		} else {
			err = rep.Render(w)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func coloredReport(w io.Writer, rep *engine.Report) error {
	banner := color.New(color.Bold)
	header := color.New(color.FgCyan, color.Bold)
	lineNo := color.New(color.Faint)
	warn := color.New(color.FgYellow, color.Bold)
	hint := color.New(color.FgGreen)
	for _, c := range []*color.Color{banner, header, lineNo, warn, hint} {
		c.EnableColor()
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(banner.Sprint(engine.Banner))
	bw.WriteString("\n\n")
	for _, s := range rep.Sections {
		bw.WriteString(header.Sprint("--- " + s.Name + " ---"))
		bw.WriteByte('\n')
		for _, f := range s.Findings {
			bw.WriteString(lineNo.Sprint("Line: " + strconv.Itoa(f.Line)))
			for _, fl := range f.Subject {
				bw.WriteString(", " + fl.Label + ": " + fl.Value)
			}
			if f.Message != "" {
				tag := hint
				if f.Severity == rules.SevWarning {
					tag = warn
				}
				bw.WriteString(", " + tag.Sprint(f.Severity.String()) + ": " + f.Message)
			}
			bw.WriteByte('\n')
			for _, extra := range f.Extra {
				bw.WriteString("    " + extra + "\n")
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
