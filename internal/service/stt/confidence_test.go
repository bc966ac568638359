package stt

import (
	"math"
	"testing"
)

func TestConfidence_NoSegments(t *testing.T) {
	if got := Confidence(nil); got != DefaultConfidence {
		t.Errorf("expected default confidence %v, got %v", DefaultConfidence, got)
	}
	if got := Confidence([]Segment{}); got != DefaultConfidence {
		t.Errorf("expected default confidence %v, got %v", DefaultConfidence, got)
	}
}

func TestConfidence_FromLogProbs(t *testing.T) {
	// exp(mean(-0.1, -0.3)) = exp(-0.2)
	segments := []Segment{{AvgLogProb: -0.1}, {AvgLogProb: -0.3}}

	want := math.Exp(-0.2)
	if got := Confidence(segments); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestConfidence_Clamped(t *testing.T) {
	// Positive log probs would exceed 1; clamp.
	if got := Confidence([]Segment{{AvgLogProb: 2}}); got != 1 {
		t.Errorf("expected clamp to 1, got %v", got)
	}

	// Extremely negative log probs round to 0, never below.
	if got := Confidence([]Segment{{AvgLogProb: -1000}}); got < 0 {
		t.Errorf("expected non-negative confidence, got %v", got)
	}
}
