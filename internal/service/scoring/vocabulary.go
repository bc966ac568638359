package scoring

import (
	"unicode"
	"unicode/utf8"
)

// VocabularyScore rates vocabulary sophistication on a 0-100 scale from
// three normalized sub-metrics: unique-word ratio, domain-vocabulary ratio,
// and mean alphabetic word length. Texts with fewer than MinVocabTokens
// tokens, tokenizer failures, and texts with no alphabetic tokens all yield
// the neutral fallback.
func (a *Analyzer) VocabularyScore(text string) Score {
	words, err := a.words.Words(text)
	if err != nil || len(words) < a.cfg.MinVocabTokens {
		return neutral(a.cfg.NeutralScore)
	}

	distinct := make(map[string]struct{}, len(words))
	domainCount := 0
	alphaCount := 0
	alphaLenSum := 0
	for _, w := range words {
		distinct[w] = struct{}{}
		if _, ok := domainVocabulary[w]; ok {
			domainCount++
		}
		if isAlphabetic(w) {
			alphaCount++
			alphaLenSum += utf8.RuneCountInString(w)
		}
	}
	if alphaCount == 0 {
		return neutral(a.cfg.NeutralScore)
	}

	total := float64(len(words))
	uniqueRatio := float64(len(distinct)) / total
	domainRatio := float64(domainCount) / total

	meanWordLen := float64(alphaLenSum) / float64(alphaCount)
	lengthScore := meanWordLen / a.cfg.WordLengthNorm
	if lengthScore > 1.0 {
		lengthScore = 1.0
	}

	weighted := uniqueRatio*a.cfg.UniqueWordWeight +
		domainRatio*a.cfg.DomainWordWeight +
		lengthScore*a.cfg.WordLengthWeight

	score := weighted * 100 / a.cfg.VocabNormDivisor
	return computed(clamp(score, 0, 100))
}

func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
