package diagfmt

import (
	"encoding/json"
	"io"

	"codecleanup/internal/diag"
	"codecleanup/internal/engine"
	"codecleanup/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON is a front-end (lexer/parser) diagnostic.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type FieldJSON struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FindingJSON carries both the structured finding and its rendered text.
// Ordinal is the 1-based position of the finding in the text report.
type FindingJSON struct {
	Ordinal  int         `json:"ordinal"`
	Line     int         `json:"line"`
	Rule     string      `json:"rule"`
	Code     string      `json:"code"`
	Severity string      `json:"severity"`
	Subject  []FieldJSON `json:"subject,omitempty"`
	Message  string      `json:"message,omitempty"`
	Extra    []string    `json:"extra,omitempty"`
	Text     string      `json:"text"`
}

type SectionJSON struct {
	Name     string        `json:"name"`
	Findings []FindingJSON `json:"findings"`
}

type ReportJSON struct {
	Path        string           `json:"path"`
	Status      string           `json:"status"`
	Count       int              `json:"count"`
	Sections    []SectionJSON    `json:"sections"`
	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty"`
}

// Output представляет корневую структуру JSON вывода
type Output struct {
	Reports []ReportJSON `json:"reports"`
	Count   int          `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, mode PathMode) LocationJSON {
	loc := LocationJSON{StartByte: span.Start, EndByte: span.End}
	if fs == nil {
		return loc
	}
	f := fs.Get(span.File)
	if f == nil {
		return loc
	}
	loc.File = formatPath(f, fs, mode)
	start, end := fs.Resolve(span)
	loc.StartLine, loc.StartCol = start.Line, start.Col
	loc.EndLine, loc.EndCol = end.Line, end.Col
	return loc
}

// BuildOutput формирует структуру JSON-вывода без сериализации.
func BuildOutput(reports []*engine.Report, fs *source.FileSet, opts JSONOpts) Output {
	out := Output{Reports: make([]ReportJSON, 0, len(reports))}
	for _, rep := range reports {
		rj := ReportJSON{
			Path:     rep.Path,
			Status:   rep.Status.String(),
			Count:    rep.Count(),
			Sections: make([]SectionJSON, 0, len(rep.Sections)),
		}
		ordinal := 0
		for _, s := range rep.Sections {
			sj := SectionJSON{Name: s.Name, Findings: make([]FindingJSON, 0, len(s.Findings))}
			for _, f := range s.Findings {
				ordinal++
				fj := FindingJSON{
					Ordinal:  ordinal,
					Line:     f.Line,
					Rule:     f.RuleID,
					Code:     f.Code.ID(),
					Severity: f.Severity.String(),
					Message:  f.Message,
					Extra:    f.Extra,
					Text:     f.Primary(),
				}
				for _, fl := range f.Subject {
					fj.Subject = append(fj.Subject, FieldJSON(fl))
				}
				sj.Findings = append(sj.Findings, fj)
			}
			rj.Sections = append(rj.Sections, sj)
		}
		if opts.IncludeDiagnostics {
			rj.Diagnostics = diagnosticsJSON(rep.Diagnostics, fs, opts.PathMode)
		}
		out.Count += rj.Count
		out.Reports = append(out.Reports, rj)
	}
	return out
}

func diagnosticsJSON(items []diag.Diagnostic, fs *source.FileSet, mode PathMode) []DiagnosticJSON {
	if len(items) == 0 {
		return nil
	}
	out := make([]DiagnosticJSON, 0, len(items))
	for _, d := range items {
		out = append(out, DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, mode),
		})
	}
	return out
}

// JSON выводит отчёты в JSON с отступами.
func JSON(w io.Writer, reports []*engine.Report, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildOutput(reports, fs, opts))
}
