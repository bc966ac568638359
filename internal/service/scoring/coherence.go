package scoring

import (
	"math"
	"strings"
)

// CoherenceScore rates sentence structure on a 0-100 scale. It blends a
// mean-sentence-length score with a length-variety score derived from the
// standard deviation of per-sentence word counts. Tokenizer failures and
// sentence-free text yield the neutral fallback; a single sentence gets a
// neutral variety component because variety is undefined for one sample.
func (a *Analyzer) CoherenceScore(text string) Score {
	sentences, err := a.sentences.Sentences(text)
	if err != nil || len(sentences) == 0 {
		return neutral(a.cfg.NeutralScore)
	}

	lengths := make([]float64, len(sentences))
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
	}
	meanLen := mean(lengths)

	var lengthScore float64
	switch {
	case meanLen >= a.cfg.IdealSentenceMin && meanLen <= a.cfg.IdealSentenceMax:
		lengthScore = 100
	case meanLen < a.cfg.IdealSentenceMin:
		lengthScore = (meanLen / a.cfg.IdealSentenceMin) * 100
	default:
		lengthScore = math.Max(0, 100-(meanLen-a.cfg.IdealSentenceMax)*a.cfg.LongSentencePenalty)
	}

	varietyScore := a.cfg.NeutralScore
	if len(lengths) > 1 {
		varietyScore = math.Min(stddev(lengths)*a.cfg.VarietyScale, 100)
	}

	final := lengthScore*a.cfg.LengthBlendWeight + varietyScore*a.cfg.VarietyBlendWeight
	return computed(clamp(final, 0, 100))
}

// stddev is the population standard deviation.
func stddev(values []float64) float64 {
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
