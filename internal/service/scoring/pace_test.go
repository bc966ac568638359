package scoring

import (
	"strings"
	"testing"
)

func TestPace(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		durationSeconds float64
		want            float64
	}{
		{"empty text", "", 10, 0},
		{"zero duration", "one two three", 0, 0},
		{"negative duration", "one two three", -5, 0},
		{"one word per second", strings.Repeat("word ", 60), 60, 60},
		{"ideal pace", strings.Repeat("word ", 14), 6, 140},
		{"fractional duration", "one two", 0.5, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pace(tt.text, tt.durationSeconds); !approx(got, tt.want) {
				t.Errorf("Pace(%q, %v) = %v, want %v", tt.text, tt.durationSeconds, got, tt.want)
			}
		})
	}
}
