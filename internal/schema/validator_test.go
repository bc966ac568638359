package schema

import (
	"testing"

	"speech-scoring-service/internal/models"
)

func validScored() models.SpeechScored {
	return models.SpeechScored{
		EventType:     models.EventSpeechScored,
		InteractionID: "int-123",
		Report: models.ScoreReport{
			ClarityScore:       80,
			FluencyScore:       75,
			PronunciationScore: 90,
			Confidence:         0.9,
			PaceWPM:            140,
		},
	}
}

func validTranscript() models.TranscriptFinal {
	return models.TranscriptFinal{
		EventType:       models.EventTranscriptFinal,
		InteractionID:   "int-123",
		Text:            "hello world",
		Confidence:      0.9,
		DurationSeconds: 5,
	}
}

func TestValidate_ValidEvents(t *testing.T) {
	v := New()

	if err := v.Validate(validScored()); err != nil {
		t.Errorf("valid scored event rejected: %v", err)
	}
	if err := v.Validate(validTranscript()); err != nil {
		t.Errorf("valid transcript event rejected: %v", err)
	}

	// Pointers validate the same as values.
	ev := validScored()
	if err := v.Validate(&ev); err != nil {
		t.Errorf("valid scored pointer rejected: %v", err)
	}
}

func TestValidate_UnknownType(t *testing.T) {
	v := New()

	if err := v.Validate("not an event"); err == nil {
		t.Error("expected error for unknown event type")
	}
}

func TestValidate_ScoredRejections(t *testing.T) {
	v := New()

	tests := []struct {
		name   string
		mutate func(*models.SpeechScored)
	}{
		{"wrong event type", func(e *models.SpeechScored) { e.EventType = "something.else" }},
		{"missing interaction", func(e *models.SpeechScored) { e.InteractionID = "" }},
		{"clarity above bounds", func(e *models.SpeechScored) { e.Report.ClarityScore = 101 }},
		{"fluency below bounds", func(e *models.SpeechScored) { e.Report.FluencyScore = -1 }},
		{"confidence above bounds", func(e *models.SpeechScored) { e.Report.Confidence = 1.5 }},
		{"negative pace", func(e *models.SpeechScored) { e.Report.PaceWPM = -10 }},
		{"negative filler count", func(e *models.SpeechScored) { e.Report.FillerWordsCount = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := validScored()
			tt.mutate(&ev)
			if err := v.Validate(ev); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidate_TranscriptRejections(t *testing.T) {
	v := New()

	tests := []struct {
		name   string
		mutate func(*models.TranscriptFinal)
	}{
		{"wrong event type", func(e *models.TranscriptFinal) { e.EventType = "other" }},
		{"missing interaction", func(e *models.TranscriptFinal) { e.InteractionID = "" }},
		{"negative duration", func(e *models.TranscriptFinal) { e.DurationSeconds = -1 }},
		{"confidence out of range", func(e *models.TranscriptFinal) { e.Confidence = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := validTranscript()
			tt.mutate(&ev)
			if err := v.Validate(ev); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
