package scoring

import "strings"

// Pace returns the speaking rate in words per minute, counting
// whitespace-delimited tokens. A non-positive duration is a degenerate input,
// not an error; it yields 0. The result is unbounded above.
func Pace(text string, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return 0.0
	}
	wordCount := len(strings.Fields(text))
	return (float64(wordCount) / durationSeconds) * 60
}
