package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withBuild(t *testing.T, v, commit, date string) {
	t.Helper()
	origV, origC, origD := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() { Version, GitCommit, BuildDate = origV, origC, origD })
}

func TestFingerprint(t *testing.T) {
	withBuild(t, "1.2.3", "abc123", "2024-01-15")
	if got, want := Fingerprint(), "codecleanup 1.2.3 (abc123) built 2024-01-15"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	withBuild(t, "1.2.3", "", "")
	if got := Fingerprint(); got != "codecleanup 1.2.3" {
		t.Fatalf("optional parts should be omitted, got %q", got)
	}
}

func TestColorizedWithoutColor(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	withBuild(t, "0.3.0-dev", "", "")
	if got := Colorized(); got != "0.3.0-dev" {
		t.Fatalf("expected plain version, got %q", got)
	}
	withBuild(t, "nightly", "", "")
	if got := Colorized(); got != "nightly" {
		t.Fatalf("non-semver versions pass through, got %q", got)
	}
}

func TestPrint(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	withBuild(t, "1.0.0", "deadbeef", "")
	var buf bytes.Buffer
	if err := Print(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "codecleanup 1.0.0") || !strings.Contains(buf.String(), "commit: deadbeef") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
