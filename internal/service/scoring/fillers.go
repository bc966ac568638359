package scoring

import "strings"

// CountFillers counts whole-word occurrences of every filler lexicon entry in
// text, summed across entries. Matching is case-insensitive; partial-word
// hits (for example "so" inside "sofa") do not count. Empty text yields 0.
func CountFillers(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, pattern := range fillerPatterns {
		count += len(pattern.FindAllStringIndex(lower, -1))
	}
	return count
}
