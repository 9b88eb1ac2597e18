package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"codecleanup/internal/nav"
	"codecleanup/internal/rules"
)

func TestReadUIMode(t *testing.T) {
	tests := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"auto", uiModeAuto, false},
		{" ON ", uiModeOn, false},
		{"off", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		got, err := readUIMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("readUIMode(%q): unexpected error state %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("readUIMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLineCursorFollowsReportLine(t *testing.T) {
	c := &lineCursor{}
	if !nav.Navigate(c, "Line: 47, Warning: Empty catch block detected") || c.line != 47 {
		t.Fatalf("expected line 47, got %d", c.line)
	}
	if nav.Navigate(c, "=== Code Analysis Results ===") {
		t.Fatal("banner must not navigate")
	}
	if c.line != 47 {
		t.Fatalf("cursor moved on a non-navigable line: %d", c.line)
	}
}

func TestRuleRowsMarkEnabled(t *testing.T) {
	full := rules.DefaultRegistry()
	active, err := full.Filter(rules.Selection{Disable: []string{"nested-loop"}})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	rows := ruleRows(full, active)
	if len(rows) != 31 {
		t.Fatalf("expected 31 rows, got %d", len(rows))
	}
	state := map[string]bool{}
	for _, r := range rows {
		state[r.ID] = r.Enabled
	}
	if state["nested-loop"] || state["short-select-case"] {
		t.Fatalf("disabled and opt-in rules should be off: %+v", state)
	}
	if !state["empty-catch"] {
		t.Fatal("empty-catch should be on")
	}
}

func TestPrintRuleTable(t *testing.T) {
	rows := ruleRows(rules.DefaultRegistry(), rules.DefaultRegistry())
	var buf bytes.Buffer
	if err := printRuleTable(&buf, rows, false); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Method Summary Analysis\n") {
		t.Fatalf("expected the first category header, got:\n%s", out)
	}
	if !strings.Contains(out, "VB1901") || !strings.Contains(out, "nested-loop") {
		t.Fatalf("expected nested-loop in the table:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("uncolored table must not contain escape codes")
	}
}

func TestVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, false, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Tool != "codecleanup" || payload.Version == "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.GitCommit != "" || payload.BuildDate != "" {
		t.Fatalf("hash and date should be omitted: %+v", payload)
	}
}
