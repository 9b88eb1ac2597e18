package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{1, 10, 20}, Span{1, 30, 40}, Span{1, 10, 40}},
		{"nested", Span{1, 10, 40}, Span{1, 15, 20}, Span{1, 10, 40}},
		{"other file", Span{1, 10, 20}, Span{2, 0, 50}, Span{1, 10, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanContainsAndLen(t *testing.T) {
	outer := Span{File: 0, Start: 5, End: 50}
	if !outer.Contains(Span{File: 0, Start: 5, End: 10}) {
		t.Errorf("expected containment")
	}
	if outer.Contains(Span{File: 1, Start: 6, End: 7}) {
		t.Errorf("spans from other files must not be contained")
	}
	if (Span{Start: 9, End: 3}).Len() != 0 {
		t.Errorf("inverted span must have zero length")
	}
	if !(Span{Start: 4, End: 4}).Empty() {
		t.Errorf("expected empty span")
	}
}
