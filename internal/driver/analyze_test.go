package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"codecleanup/internal/diag"
	"codecleanup/internal/engine"
	"codecleanup/internal/observ"
	"codecleanup/internal/rules"
)

const program = `Option Strict On
Option Explicit On
Module Program
    Sub Main()
        Try
            Work()
        Catch ex As Exception
        End Try
    End Sub
End Module
`

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestExpandInputs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"b.vb":       program,
		"a.VB":       program,
		"sub/c.vb":   program,
		"x.cs":       "class X {}",
		"bin/d.vb":   program,
		".git/e.vb":  program,
		"notes.txt":  "hello",
		"obj/gen.vb": program,
	})
	got, err := ExpandInputs([]string{root})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(root, "a.VB"),
		filepath.Join(root, "b.vb"),
		filepath.Join(root, "sub", "c.vb"),
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %v, got %v", want, got)
	}

	explicit, err := ExpandInputs([]string{filepath.Join(root, "notes.txt"), StdinPath})
	if err != nil || len(explicit) != 2 {
		t.Fatalf("explicit files must be kept as given: %v %v", explicit, err)
	}

	if _, err := ExpandInputs([]string{t.TempDir()}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type recorder struct {
	mu   sync.Mutex
	last map[string]Status
}

func (r *recorder) OnEvent(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		r.last = make(map[string]Status)
	}
	r.last[ev.File] = ev.Status
}

func TestAnalyzeKeepsInputOrder(t *testing.T) {
	root := t.TempDir()
	var paths []string
	files := map[string]string{}
	for _, name := range []string{"e.vb", "d.vb", "c.vb", "b.vb", "a.vb"} {
		files[name] = program
		paths = append(paths, filepath.Join(root, name))
	}
	writeFiles(t, root, files)

	eng := engine.New(rules.DefaultRegistry(), 2)
	rec := &recorder{}
	timer := observ.NewTimer()
	sess, err := Analyze(context.Background(), eng, paths, Options{Jobs: 4, Progress: rec, Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	if len(sess.Results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(sess.Results))
	}
	first := sess.Results[0].Report.String()
	for i, r := range sess.Results {
		if r.Path != paths[i] {
			t.Fatalf("result %d is %s, want %s", i, r.Path, paths[i])
		}
		if r.Report.Status != engine.StatusOK {
			t.Fatalf("%s: status %s", r.Path, r.Report.Status)
		}
		if r.Report.String() != first {
			t.Fatalf("identical inputs must render identically")
		}
		if rec.last[r.Path] != StatusDone {
			t.Errorf("%s: last progress status %q", r.Path, rec.last[r.Path])
		}
	}
	if sess.Failed() {
		t.Fatal("no input failed to parse")
	}
	if !strings.Contains(timer.Summary(), "analyze") {
		t.Fatalf("expected analyze timings, got\n%s", timer.Summary())
	}
}

func TestAnalyzeUnreadableAndBroken(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"broken.vb": "Module M\n    Sub F()\n"})
	paths := []string{filepath.Join(root, "missing.vb"), filepath.Join(root, "broken.vb")}

	sess, err := Analyze(context.Background(), engine.New(nil, 1), paths, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !sess.Failed() {
		t.Fatal("expected the batch to report a failure")
	}
	missing := sess.Results[0].Report
	if missing.Status != engine.StatusParseFailed || len(missing.Diagnostics) != 1 || missing.Diagnostics[0].Code != diag.IOLoadFileError {
		t.Fatalf("unexpected report for a missing file: %+v", missing)
	}
	if f := sess.FileSet.Get(missing.Diagnostics[0].Primary.File); f == nil || !strings.HasSuffix(f.Path, "missing.vb") {
		t.Fatalf("load diagnostic must point at its own file entry")
	}
	broken := sess.Results[1].Report
	if broken.Status != engine.StatusParseFailed || len(broken.Sections) != 0 {
		t.Fatalf("unexpected report for a broken file: %+v", broken)
	}
	if broken.String() != engine.Banner+"\n\n" {
		t.Fatalf("a broken file renders only the banner, got %q", broken.String())
	}
}

func TestAnalyzeForeignSources(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"Program.cs": "class Program { }\n"})
	stdin := strings.NewReader("public void Run() { foreach (var x in xs) { if (x == null) return; } }\n")
	paths := []string{filepath.Join(root, "Program.cs"), StdinPath}

	sess, err := Analyze(context.Background(), engine.New(nil, 1), paths, Options{Stdin: stdin})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range sess.Results {
		if r.Report.Status != engine.StatusUnsupported {
			t.Fatalf("%s: expected unsupported, got %s", r.Path, r.Report.Status)
		}
		if len(r.Report.Diagnostics) != 1 || r.Report.Diagnostics[0].Code != diag.AlnLanguageMismatch {
			t.Fatalf("%s: expected a language mismatch diagnostic, got %+v", r.Path, r.Report.Diagnostics)
		}
	}
	if sess.Failed() {
		t.Fatal("unsupported input is not a parse failure")
	}
}

func TestAnalyzeUsesDiskCache(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.vb": program})
	paths := []string{filepath.Join(root, "a.vb")}

	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	eng := engine.New(nil, 1)
	opts := Options{Cache: cache, CacheSalt: "t"}

	cold, err := Analyze(context.Background(), eng, paths, opts)
	if err != nil {
		t.Fatal(err)
	}
	warm, err := Analyze(context.Background(), eng, paths, opts)
	if err != nil {
		t.Fatal(err)
	}
	if cold.Results[0].Cached || !warm.Results[0].Cached {
		t.Fatalf("expected a miss then a hit, got %v then %v", cold.Results[0].Cached, warm.Results[0].Cached)
	}
	if cold.Results[0].Report.String() != warm.Results[0].Report.String() {
		t.Fatalf("cached report differs:\n%s\nvs\n%s", cold.Results[0].Report, warm.Results[0].Report)
	}

	other, err := Analyze(context.Background(), eng, paths, Options{Cache: cache, CacheSalt: "other"})
	if err != nil {
		t.Fatal(err)
	}
	if other.Results[0].Cached {
		t.Fatal("a different salt must miss")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	again, err := Analyze(context.Background(), eng, paths, opts)
	if err != nil {
		t.Fatal(err)
	}
	if again.Results[0].Cached {
		t.Fatal("DropAll must empty the cache")
	}
}

func TestAnalyzeCancelled(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.vb": program})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Analyze(ctx, engine.New(nil, 1), []string{filepath.Join(root, "a.vb")}, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
