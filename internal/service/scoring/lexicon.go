package scoring

import "regexp"

// fillerLexicon is the fixed set of filler words and short phrases counted by
// CountFillers. Matching is case-insensitive and on whole-word boundaries.
// Initialized once at process start, never mutated; safe for concurrent reads.
var fillerLexicon = []string{
	"um", "uh", "like", "you know", "so", "basically", "actually",
	"literally", "right", "okay", "well", "i mean", "sort of",
	"kind of", "you see", "er", "ah", "hmm", "mhm",
}

// fillerPatterns holds one compiled whole-word pattern per lexicon entry.
var fillerPatterns = compileFillerPatterns()

func compileFillerPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(fillerLexicon))
	for _, filler := range fillerLexicon {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(filler)+`\b`))
	}
	return patterns
}

// domainVocabulary is the fixed set of professional vocabulary used by the
// vocabulary sophistication scorer. Same lifecycle as the filler lexicon.
var domainVocabulary = map[string]struct{}{
	"experience": {}, "project": {}, "team": {}, "managed": {}, "developed": {},
	"implemented": {}, "solution": {}, "problem": {}, "challenge": {}, "opportunity": {},
	"leadership": {}, "collaboration": {}, "communication": {}, "technical": {},
	"strategic": {}, "initiative": {}, "objective": {}, "achievement": {}, "result": {},
	"skill": {}, "capability": {}, "responsibility": {}, "deadline": {}, "priority": {},
	"stakeholder": {}, "requirement": {}, "specification": {}, "documentation": {},
	"methodology": {}, "framework": {}, "architecture": {}, "design": {}, "analysis": {},
	"optimization": {}, "performance": {}, "quality": {}, "efficiency": {}, "productivity": {},
}
