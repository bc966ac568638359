package scoring

import (
	"math"
	"strings"
)

// Clarity scores overall speech clarity on a 0-100 scale. Text under
// MinScorableChars trimmed characters is too little signal and scores 0.
// Otherwise the result is the unweighted mean of the collected components:
// reference similarity (when a usable reference is supplied), vocabulary
// sophistication, sentence coherence, and a filler-density penalty.
//
// The component list is variable-length, so clarity without a reference is
// implicitly reweighted relative to clarity with one. Known inconsistency,
// kept deliberately; see DESIGN.md.
func (a *Analyzer) Clarity(text, referenceText string) Score {
	return a.clarityWith(text, referenceText, CountFillers(text))
}

// clarityWith is Clarity with a precomputed filler count, so the orchestrator
// counts fillers exactly once per analysis.
func (a *Analyzer) clarityWith(text, referenceText string, fillerCount int) Score {
	return a.clarityFrom(text, referenceText, fillerCount,
		a.VocabularyScore(text), a.CoherenceScore(text))
}

// clarityFrom assembles clarity from already-computed vocabulary and
// coherence components, so the orchestrator can surface them without
// scoring the text twice.
func (a *Analyzer) clarityFrom(text, referenceText string, fillerCount int, vocab, coherence Score) Score {
	if trimmedLen(text) < a.cfg.MinScorableChars {
		return computed(0.0)
	}

	var scores []float64

	if trimmedLen(text) > a.cfg.MinScorableChars && trimmedLen(referenceText) > a.cfg.MinScorableChars {
		scores = append(scores, a.ReferenceSimilarity(text, referenceText).Value*100)
	}

	scores = append(scores, vocab.Value)
	scores = append(scores, coherence.Value)

	if wordCount := len(strings.Fields(text)); wordCount > 0 {
		density := float64(fillerCount) / float64(wordCount)
		scores = append(scores, math.Max(0, 100-density*a.cfg.ClarityFillerPenalty))
	}

	if len(scores) == 0 {
		return neutral(a.cfg.NeutralScore)
	}
	return computed(clamp(mean(scores), 0, 100))
}

// ReferenceSimilarity delegates to the similarity capability and reports the
// result on a 0-1 scale. Any capability failure (including a missing scorer)
// is absorbed into the neutral similarity fallback.
func (a *Analyzer) ReferenceSimilarity(text, referenceText string) Score {
	if a.similarity == nil {
		return neutral(a.cfg.NeutralSimilarity)
	}
	sim, err := a.similarity.Similarity(text, referenceText)
	if err != nil {
		return neutral(a.cfg.NeutralSimilarity)
	}
	return computed(clamp(sim, 0, 1))
}
