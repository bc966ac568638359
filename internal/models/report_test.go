package models

import (
	"encoding/json"
	"testing"
)

func TestScoreReport_Rounded(t *testing.T) {
	r := ScoreReport{
		ClarityScore:       93.333333,
		FluencyScore:       66.666666,
		PaceWPM:            140.5555,
		FillerWordsCount:   3,
		Confidence:         0.866666,
		PronunciationScore: 81.8181,
	}

	got := r.Rounded()

	if got.ClarityScore != 93.33 {
		t.Errorf("clarity: expected 93.33, got %v", got.ClarityScore)
	}
	if got.FluencyScore != 66.67 {
		t.Errorf("fluency: expected 66.67, got %v", got.FluencyScore)
	}
	if got.PaceWPM != 140.6 {
		t.Errorf("pace: expected 140.6, got %v", got.PaceWPM)
	}
	if got.Confidence != 0.87 {
		t.Errorf("confidence: expected 0.87, got %v", got.Confidence)
	}
	if got.PronunciationScore != 81.82 {
		t.Errorf("pronunciation: expected 81.82, got %v", got.PronunciationScore)
	}
	if got.FillerWordsCount != 3 {
		t.Errorf("filler count must be untouched, got %d", got.FillerWordsCount)
	}

	// Original is not mutated.
	if r.ClarityScore != 93.333333 {
		t.Errorf("Rounded must copy, original clarity changed to %v", r.ClarityScore)
	}
}

func TestScoreReport_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(ScoreReport{TranscribedText: "hello"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{
		"transcribedText", "clarityScore", "fluencyScore",
		"paceWpm", "fillerWordsCount", "confidence", "pronunciationScore",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected JSON field %q", key)
		}
	}
}
