package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"codecleanup/internal/rules"
)

func TestParseFull(t *testing.T) {
	cfg, err := Parse(`
[rules]
enable = ["short-select-case"]
disable = ["VB1801"]

[thresholds]
select_case_min_branches = 3

[output]
format = "sarif"
color = "off"

[engine]
jobs = 4
cache = false
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != "sarif" || cfg.Engine.Jobs != 4 || cfg.CacheEnabled() {
		t.Fatalf("unexpected config %+v", cfg)
	}
	th := cfg.RuleThresholds()
	if th.SelectCaseMinBranches != 3 || th.SummaryMinLength != 0 {
		t.Fatalf("unexpected thresholds %+v", th)
	}

	reg, err := cfg.Registry(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reg.Lookup("short-select-case"); !ok {
		t.Fatal("short-select-case should be enabled")
	}
	if _, ok := reg.Lookup("string-concatenation"); ok {
		t.Fatal("VB1801 should be disabled")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown key", "[rules]\nenabled = []\n", ErrUnknownKey},
		{"unknown section", "[server]\nport = 1\n", ErrUnknownKey},
		{"unknown rule", "[rules]\ndisable = [\"no-such-rule\"]\n", rules.ErrUnknownRule},
		{"bad format", "[output]\nformat = \"xml\"\n", ErrInvalidValue},
		{"bad color", "[output]\ncolor = \"sometimes\"\n", ErrInvalidValue},
		{"negative jobs", "[engine]\njobs = -1\n", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
	if _, err := Parse("[rules\n"); err == nil {
		t.Fatal("expected a TOML syntax error")
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	if !cfg.CacheEnabled() {
		t.Fatal("cache should default to on")
	}
	reg, err := cfg.Registry(nil, []string{"nested-loop"})
	if err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 29 {
		t.Fatalf("expected 29 rules without the opt-in and nested-loop, got %d", reg.Len())
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "forms")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("[engine]\njobs = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(nested, "Main.vb")
	if err := os.WriteFile(file, []byte("Module M\nEnd Module\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.Jobs != 2 || cfg.Path != filepath.Join(root, FileName) {
		t.Fatalf("expected the root config, got %+v", cfg)
	}
}
