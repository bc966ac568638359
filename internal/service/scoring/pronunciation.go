package scoring

import (
	"strings"
	"unicode/utf8"
)

// Pronunciation estimates pronunciation quality on a 0-100 scale from the
// transcription confidence plus surface-text heuristics. This is explicitly
// an estimate, not acoustic analysis: a very short mean word length suggests
// garbled output, and a long run of one repeated character suggests a
// transcription artifact. Both penalties are independent scalar multipliers.
func (a *Analyzer) Pronunciation(confidence float64, text string) float64 {
	score := confidence * 100

	words := strings.Fields(text)
	if len(words) > 0 {
		lenSum := 0
		for _, w := range words {
			lenSum += utf8.RuneCountInString(w)
		}
		if float64(lenSum)/float64(len(words)) < a.cfg.GarbledWordLength {
			score *= a.cfg.GarbledPenalty
		}
		if hasRepeatedRun(text, a.cfg.RepeatRunLength) {
			score *= a.cfg.RepeatRunPenalty
		}
	}

	return clamp(score, 0, 100)
}

// hasRepeatedRun reports whether text contains minRun or more identical
// consecutive characters.
func hasRepeatedRun(text string, minRun int) bool {
	if minRun <= 1 {
		return text != ""
	}
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= minRun {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
