package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		err  bool
	}{
		{"off", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{" detail ", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"verbose", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	if !LevelPhase.ShouldEmit(ScopePass) || LevelPhase.ShouldEmit(ScopeRule) {
		t.Fatal("phase level should stop at passes")
	}
	if !LevelDetail.ShouldEmit(ScopeRule) {
		t.Fatal("detail level should include rules")
	}
	if LevelError.ShouldEmit(ScopeDriver) {
		t.Fatal("error level streams nothing")
	}
}

func TestStreamTracerWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)

	root := Begin(FromContext(ctx), ScopeDriver, "analyze", 0)
	ctx = root.Context(ctx)
	rule := Begin(FromContext(ctx), ScopeRule, "rule:nested-loop", CurrentSpan(ctx).SpanID)
	rule.End("")
	root.WithExtra("files", "2").End("ok")

	out := buf.String()
	if strings.Contains(out, "nested-loop") {
		t.Fatalf("rule span leaked at phase level:\n%s", out)
	}
	if !strings.Contains(out, "→ analyze") || !strings.Contains(out, "← analyze (ok) {files=2}") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestNDJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	Begin(tr, ScopeRule, "rule:empty-catch", 7).End("3 findings")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected begin and end lines, got %d", len(lines))
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ev["kind"] != "end" || ev["scope"] != "rule" || ev["detail"] != "3 findings" || ev["parent_id"] != float64(7) {
		t.Fatalf("unexpected event %v", ev)
	}
}

func TestRingKeepsLastEvents(t *testing.T) {
	r := NewRingTracer(3, LevelError)
	for i := 0; i < 5; i++ {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopeRule, Name: string(rune('a' + i))})
	}
	snap := r.Snapshot()
	if len(snap) != 3 || snap[0].Name != "c" || snap[2].Name != "e" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	multi := NewMultiTracer(LevelError, Nop, r)
	if got, ok := Ring(multi); !ok || got != r {
		t.Fatal("Ring should find the buffer inside a multi tracer")
	}
}

func TestNopSpanIsSafe(t *testing.T) {
	s := Begin(nil, ScopePass, "x", 0)
	if s.End("") != 0 || s.ID() != 0 {
		t.Fatal("nop span should do nothing")
	}
	ctx := s.Context(context.Background())
	if CurrentSpan(ctx).SpanID != 0 {
		t.Fatal("nop span must not become current")
	}
	var h *Heartbeat
	h.Stop()
	if StartHeartbeat(Nop, 0) != nil {
		t.Fatal("heartbeat should not start for a disabled tracer")
	}
}
