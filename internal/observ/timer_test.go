package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "3 files")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Name != "parse" || r.Phases[0].Note != "3 files" {
		t.Fatalf("unexpected report %+v", r)
	}
	if !strings.Contains(tm.Summary(), "// 3 files") {
		t.Fatalf("summary lost the note:\n%s", tm.Summary())
	}
}

func TestTimerAddIsConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("analyze", time.Millisecond)
		}()
	}
	wg.Wait()

	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Count != 8 {
		t.Fatalf("expected one phase folded 8 times, got %+v", r.Phases)
	}
	if r.Phases[0].DurationMS < 8 {
		t.Fatalf("expected at least 8ms, got %.2f", r.Phases[0].DurationMS)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("expected empty report, got %+v", r)
	}
}
