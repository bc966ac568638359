package scoring

import "testing"

func TestCountFillers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"no fillers", "the team finished the migration", 0},
		{"single filler", "um, I think that works", 1},
		{"case insensitive", "UM, I think. LIKE that.", 2},
		{"repeated filler", "um um um", 3},
		{"phrase filler", "it was, you know, difficult", 1},
		{"mixed fillers", "So, um, I was like, you know, basically done.", 5},
		{"no match inside words", "unlike assorted uhmm", 0},
		{"filler with punctuation", "well... okay.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountFillers(tt.text); got != tt.want {
				t.Errorf("CountFillers(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountFillers_NeverNegative(t *testing.T) {
	for _, text := range []string{"", "   ", "!!!", "normal words only"} {
		if got := CountFillers(text); got < 0 {
			t.Errorf("CountFillers(%q) = %d, want >= 0", text, got)
		}
	}
}
