package desktop

import "testing"

func TestRepeating(t *testing.T) {
	tests := []struct {
		ticks int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{29, false},
		{30, true},
		{31, false},
		{34, true},
		{38, true},
	}
	for _, tt := range tests {
		if got := repeating(tt.ticks); got != tt.want {
			t.Errorf("repeating(%d) = %v, want %v", tt.ticks, got, tt.want)
		}
	}
}

func TestTextScale(t *testing.T) {
	if got := textScale(26); got != 2 {
		t.Fatalf("textScale(26) = %v, want 2", got)
	}
	if got := textScale(glyphHeight); got != 1 {
		t.Fatalf("textScale(%d) = %v, want 1", glyphHeight, got)
	}
}
