package models

import "math"

// ScoreReport is the result of one speech delivery analysis. It is created
// once per analysis and not mutated afterwards; persistence is the caller's
// concern, not this service's.
//
// ClarityScore, FluencyScore, and PronunciationScore are in [0, 100] and
// Confidence is in [0, 1]; all four are clamped before assembly. PaceWPM has
// no upper bound.
type ScoreReport struct {
	TranscribedText    string  `json:"transcribedText"`
	ClarityScore       float64 `json:"clarityScore"`
	FluencyScore       float64 `json:"fluencyScore"`
	PaceWPM            float64 `json:"paceWpm"`
	FillerWordsCount   int     `json:"fillerWordsCount"`
	Confidence         float64 `json:"confidence"`
	PronunciationScore float64 `json:"pronunciationScore"`
}

// Rounded returns a copy with presentation rounding applied: scores and
// confidence to two decimals, pace to one. Raw values stay available on the
// original for ranking use cases where rounding would lose ordering.
func (r ScoreReport) Rounded() ScoreReport {
	r.ClarityScore = round(r.ClarityScore, 2)
	r.FluencyScore = round(r.FluencyScore, 2)
	r.PaceWPM = round(r.PaceWPM, 1)
	r.Confidence = round(r.Confidence, 2)
	r.PronunciationScore = round(r.PronunciationScore, 2)
	return r
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
