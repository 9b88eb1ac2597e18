package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"codecleanup/internal/engine"
)

func TestTextMatchesRender(t *testing.T) {
	rep, _ := analyze(t, "Main.vb", sample)
	var buf bytes.Buffer
	if err := Text(&buf, []*engine.Report{rep}, TextOpts{Headers: true}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != rep.String() {
		t.Fatalf("plain text must equal Render:\n%s\nvs\n%s", buf.String(), rep.String())
	}
}

func TestTextHeadersForSeveralReports(t *testing.T) {
	a, _ := analyze(t, "A.vb", sample)
	b, _ := analyze(t, "B.vb", "Dim s = \"\"\n")
	var buf bytes.Buffer
	if err := Text(&buf, []*engine.Report{a, b}, TextOpts{Headers: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "==> A.vb <==\n"+engine.Banner) || !strings.Contains(out, "\n==> B.vb <==\n") {
		t.Fatalf("missing per-file headers:\n%s", out)
	}
}

func TestTextColor(t *testing.T) {
	rep, _ := analyze(t, "Main.vb", sample)
	var buf bytes.Buffer
	if err := Text(&buf, []*engine.Report{rep}, TextOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") || !strings.Contains(out, "Empty catch block detected") {
		t.Fatalf("expected coloured report, got:\n%q", out)
	}
}

func TestJSONOrdinals(t *testing.T) {
	rep, fs := analyze(t, "Main.vb", sample)
	var buf bytes.Buffer
	if err := JSON(&buf, []*engine.Report{rep}, fs, JSONOpts{IncludeDiagnostics: true}); err != nil {
		t.Fatal(err)
	}
	var out Output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Reports) != 1 {
		t.Fatalf("unexpected totals: %+v", out)
	}
	r := out.Reports[0]
	if r.Status != "ok" || r.Path != "Main.vb" {
		t.Fatalf("unexpected report header %+v", r)
	}
	// Try-Catch is the only section with findings; the other section is empty.
	fs0 := r.Sections[0].Findings
	if len(fs0) != 2 || fs0[0].Ordinal != 1 || fs0[1].Ordinal != 2 {
		t.Fatalf("unexpected ordinals %+v", fs0)
	}
	if fs0[0].Line != 7 || fs0[0].Code != "VB1202" || fs0[0].Text != "Line: 7, Warning: Empty catch block detected" {
		t.Fatalf("unexpected finding %+v", fs0[0])
	}
	if len(r.Sections[1].Findings) != 0 {
		t.Fatalf("expected an empty practices section, got %+v", r.Sections[1])
	}
}

func TestJSONParseFailureDiagnostics(t *testing.T) {
	rep, fs := analyze(t, "Bad.vb", "Module M\n    Sub F()\n")
	if rep.Status != engine.StatusParseFailed {
		t.Fatalf("expected parse failure, got %s", rep.Status)
	}
	out := BuildOutput([]*engine.Report{rep}, fs, JSONOpts{IncludeDiagnostics: true})
	r := out.Reports[0]
	if r.Status != "parse failed" || len(r.Sections) != 0 || len(r.Diagnostics) == 0 {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.Diagnostics[0].Severity != "ERROR" || r.Diagnostics[0].Location.File != "Bad.vb" {
		t.Fatalf("unexpected diagnostic %+v", r.Diagnostics[0])
	}
}
