// Package models defines the data structures for transcript and scoring
// events.
package models

// Event type identifiers.
const (
	EventTranscriptFinal = "interaction.transcript.final"
	EventSpeechScored    = "interaction.speech.scored"
)

// TranscriptFinal is the final transcript event consumed from the ingress
// pipeline. Confidence is the upstream engine's 0-1 estimate;
// DurationSeconds is the length of the scored utterance's audio.
type TranscriptFinal struct {
	EventType       string  `json:"eventType"`
	InteractionID   string  `json:"interactionId"`
	TenantID        string  `json:"tenantId"`
	Timestamp       int64   `json:"timestamp"`
	SegmentID       string  `json:"segmentId"`
	Text            string  `json:"text"`
	Confidence      float64 `json:"confidence"`
	DurationSeconds float64 `json:"durationSeconds"`
	AudioOffsetMs   int64   `json:"audioOffsetMs"`
	// ReferenceText is the expected answer for this utterance, when the
	// caller supplied one (e.g. a scripted interview question).
	ReferenceText string `json:"referenceText,omitempty"`
}

// SpeechScored is the event published once an utterance has been scored.
type SpeechScored struct {
	EventType     string      `json:"eventType"`
	InteractionID string      `json:"interactionId"`
	TenantID      string      `json:"tenantId"`
	Timestamp     int64       `json:"timestamp"`
	SegmentID     string      `json:"segmentId"`
	Report        ScoreReport `json:"report"`
}
