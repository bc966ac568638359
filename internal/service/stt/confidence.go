package stt

import "math"

// DefaultConfidence is assumed when the provider reports no segments: an
// explicit neutral value, not a measurement.
const DefaultConfidence = 0.5

// Segment carries per-segment metadata from providers that expose log
// probabilities (Whisper-style engines).
type Segment struct {
	// AvgLogProb is the mean log probability of the tokens in this segment.
	AvgLogProb float64
}

// Confidence derives a 0-1 confidence from per-segment average log
// probabilities: exp of their mean, clamped to [0, 1]. An empty segment list
// yields DefaultConfidence.
func Confidence(segments []Segment) float64 {
	if len(segments) == 0 {
		return DefaultConfidence
	}
	sum := 0.0
	for _, s := range segments {
		sum += s.AvgLogProb
	}
	c := math.Exp(sum / float64(len(segments)))
	return math.Min(math.Max(c, 0.0), 1.0)
}
