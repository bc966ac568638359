package scoring

import "testing"

func TestPronunciation(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name       string
		confidence float64
		text       string
		want       float64
	}{
		{"plain confidence scaling", 0.9, "ok", 90},
		{"empty text", 0.75, "", 75},
		{"garbled short words", 0.9, "a b c d", 0.9 * 100 * 0.8},
		{"repeated character run", 0.9, "aaaaaaaaaa", 0.9 * 100 * 0.9},
		{"both penalties", 1, "a a aaaa a", 100 * 0.8 * 0.9},
		{"clamped above", 2, "solid words here", 100},
		{"clamped below", -1, "solid words here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Pronunciation(tt.confidence, tt.text); !approx(got, tt.want) {
				t.Errorf("Pronunciation(%v, %q) = %v, want %v", tt.confidence, tt.text, got, tt.want)
			}
		})
	}
}

func TestHasRepeatedRun(t *testing.T) {
	tests := []struct {
		text string
		min  int
		want bool
	}{
		{"abcd", 4, false},
		{"aabbccdd", 4, false},
		{"aaab", 4, false},
		{"aaaa", 4, true},
		{"xaaaax", 4, true},
		{"ééééé", 4, true},
		{"", 4, false},
	}

	for _, tt := range tests {
		if got := hasRepeatedRun(tt.text, tt.min); got != tt.want {
			t.Errorf("hasRepeatedRun(%q, %d) = %v, want %v", tt.text, tt.min, got, tt.want)
		}
	}
}
