package nav

import "testing"

type recorder struct {
	scrolled []int
	selected []int
}

func (r *recorder) ScrollToLine(line int) { r.scrolled = append(r.scrolled, line) }
func (r *recorder) SelectLine(line int)   { r.selected = append(r.selected, line) }

func TestParseLine(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"Line: 42, Warning: Empty catch block detected", 42, true},
		{"Line: 1, Method: Run, Summary: ****** NEEDS SUMMARY ******", 1, true},
		{"Line: 7", 7, true},
		{"--- Try-Catch Analysis ---", 0, false},
		{"=== Code Analysis Results ===", 0, false},
		{"    Suggestion: Consider using LINQ Join() or GroupBy() instead", 0, false},
		{"Line: 0, Warning: x", 0, false},
		{"Line: -3, Warning: x", 0, false},
		{"Line: abc, Warning: x", 0, false},
		{"line: 5, Warning: x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLine(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLine(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNavigateSelectsLine(t *testing.T) {
	v := &recorder{}
	if !Navigate(v, "Line: 42, Warning: Use 'AndAlso' instead of 'And'") {
		t.Fatal("expected navigation")
	}
	if len(v.scrolled) != 1 || v.scrolled[0] != 42 || len(v.selected) != 1 || v.selected[0] != 42 {
		t.Fatalf("expected scroll and select to 42, got %v %v", v.scrolled, v.selected)
	}
}

func TestNavigateHeaderIsNoop(t *testing.T) {
	v := &recorder{}
	if Navigate(v, "--- Loop Efficiency Analysis ---") {
		t.Fatal("header must not navigate")
	}
	if len(v.scrolled) != 0 || len(v.selected) != 0 {
		t.Fatalf("viewer state changed: %v %v", v.scrolled, v.selected)
	}
	if Navigate(nil, "Line: 3, Warning: x") {
		t.Fatal("nil viewer must not navigate")
	}
}
