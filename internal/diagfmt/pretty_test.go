package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"codecleanup/internal/diag"
	"codecleanup/internal/source"
)

func unterminated(t *testing.T) ([]diag.Diagnostic, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("/home/user/project/src/Main.vb", []byte("Dim s = \"open\n"))
	return []diag.Diagnostic{{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "Unterminated string literal",
		Primary:  source.Span{File: id, Start: 8, End: 13},
		Notes:    []diag.Note{{Span: source.Span{File: id, Start: 0, End: 3}, Msg: "statement starts here"}},
	}}, fs
}

func TestPrettyLayout(t *testing.T) {
	items, fs := unterminated(t)
	var buf bytes.Buffer
	if err := Pretty(&buf, items, fs, PrettyOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	want := "Main.vb:1:9: ERROR LEX1002: Unterminated string literal\n" +
		" 1 | Dim s = \"open\n" +
		"   |         ^~~~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrettyNotesAndColor(t *testing.T) {
	items, fs := unterminated(t)
	var buf bytes.Buffer
	if err := Pretty(&buf, items, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, Color: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "statement starts here") || !strings.Contains(out, "Main.vb:1:1") {
		t.Fatalf("expected the note with its location, got:\n%s", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI sequences with colour on, got:\n%q", out)
	}
}

func TestPrettyPathModes(t *testing.T) {
	items, fs := unterminated(t)
	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/Main.vb:1:9"},
		{PathModeBasename, "Main.vb:1:9"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Pretty(&buf, items, fs, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(buf.String(), tt.want) {
				t.Fatalf("expected prefix %q, got:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestPrettyUnknownFile(t *testing.T) {
	var buf bytes.Buffer
	items := []diag.Diagnostic{{Severity: diag.SevWarning, Code: diag.IOLoadFileError, Message: "gone"}}
	if err := Pretty(&buf, items, nil, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "<unknown>: WARNING IO4001: gone\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestParsePathMode(t *testing.T) {
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename} {
		if got := ParsePathMode(m.String()); got != m {
			t.Errorf("ParsePathMode(%q) = %v", m.String(), got)
		}
	}
}
