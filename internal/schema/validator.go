// Package schema validates event payloads before they are published.
package schema

import (
	"fmt"

	"speech-scoring-service/internal/models"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate checks that an event carries the fields its consumers rely on.
func (v *Validator) Validate(event any) error {
	switch e := event.(type) {
	case models.TranscriptFinal:
		return validateTranscriptFinal(e)
	case *models.TranscriptFinal:
		return validateTranscriptFinal(*e)
	case models.SpeechScored:
		return validateSpeechScored(e)
	case *models.SpeechScored:
		return validateSpeechScored(*e)
	default:
		return fmt.Errorf("unknown event type %T", event)
	}
}

func validateTranscriptFinal(e models.TranscriptFinal) error {
	if e.EventType != models.EventTranscriptFinal {
		return fmt.Errorf("eventType must be %q, got %q", models.EventTranscriptFinal, e.EventType)
	}
	if e.InteractionID == "" {
		return fmt.Errorf("interactionId is required")
	}
	if e.DurationSeconds < 0 {
		return fmt.Errorf("durationSeconds must not be negative, got %v", e.DurationSeconds)
	}
	if e.Confidence < 0 || e.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %v", e.Confidence)
	}
	return nil
}

func validateSpeechScored(e models.SpeechScored) error {
	if e.EventType != models.EventSpeechScored {
		return fmt.Errorf("eventType must be %q, got %q", models.EventSpeechScored, e.EventType)
	}
	if e.InteractionID == "" {
		return fmt.Errorf("interactionId is required")
	}
	return validateReport(e.Report)
}

func validateReport(r models.ScoreReport) error {
	scores := map[string]float64{
		"clarityScore":       r.ClarityScore,
		"fluencyScore":       r.FluencyScore,
		"pronunciationScore": r.PronunciationScore,
	}
	for name, v := range scores {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s must be in [0,100], got %v", name, v)
		}
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %v", r.Confidence)
	}
	if r.PaceWPM < 0 {
		return fmt.Errorf("paceWpm must not be negative, got %v", r.PaceWPM)
	}
	if r.FillerWordsCount < 0 {
		return fmt.Errorf("fillerWordsCount must not be negative, got %d", r.FillerWordsCount)
	}
	return nil
}
