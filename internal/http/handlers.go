package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-audio/wav"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"speech-scoring-service/internal/models"
	"speech-scoring-service/internal/observability/logging"
	"speech-scoring-service/internal/observability/metrics"
	"speech-scoring-service/internal/schema"
	"speech-scoring-service/internal/service/audio"
	"speech-scoring-service/internal/service/scoring"
	"speech-scoring-service/internal/service/segment"
	"speech-scoring-service/internal/service/stt"
)

// fallbackDurationSeconds is assumed when audio duration cannot be read
// from the WAV header.
const fallbackDurationSeconds = 30

// transcriptWait bounds how long an audio request waits for a final
// transcript after the audio has been fully sent.
const transcriptWait = 15 * time.Second

// ScoredPublisher publishes scored events downstream.
type ScoredPublisher interface {
	PublishScored(ctx context.Context, key string, event any) error
}

// AdapterFactory opens a new STT session per audio request.
type AdapterFactory func(ctx context.Context) (stt.Adapter, error)

// API implements the REST handlers for the service.
type API struct {
	analyzer   *scoring.Analyzer
	publisher  ScoredPublisher
	validator  *schema.Validator
	metrics    *metrics.Metrics
	newAdapter AdapterFactory
	limits     audio.Limits
	segments   *segment.Generator
}

// NewAPI constructs the API with its collaborators.
func NewAPI(analyzer *scoring.Analyzer, publisher ScoredPublisher, validator *schema.Validator, m *metrics.Metrics, newAdapter AdapterFactory, limits audio.Limits) *API {
	return &API{
		analyzer:   analyzer,
		publisher:  publisher,
		validator:  validator,
		metrics:    m,
		newAdapter: newAdapter,
		limits:     limits,
		segments:   segment.New(),
	}
}

// AnalyzeRequest is the body of POST /v1/analyses.
type AnalyzeRequest struct {
	Text            string   `json:"text"`
	Confidence      *float64 `json:"confidence,omitempty"`
	DurationSeconds float64  `json:"durationSeconds"`
	ReferenceText   string   `json:"referenceText,omitempty"`
}

// AnalyzeResponse is returned by both analysis endpoints.
type AnalyzeResponse struct {
	InteractionID string             `json:"interactionId"`
	Report        models.ScoreReport `json:"report"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleAnalyze scores an already-transcribed text.
func (api *API) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.DurationSeconds <= 0 {
		writeError(w, http.StatusBadRequest, "durationSeconds must be positive")
		return
	}

	confidence := stt.DefaultConfidence
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	api.respondWithReport(w, r, "http", req.Text, confidence, req.DurationSeconds, req.ReferenceText)
}

// handleAudio transcribes a posted WAV recording and scores the transcript.
func (api *API) handleAudio(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, api.limits.MaxAudioBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "audio exceeds size limit")
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "empty audio body")
		return
	}

	api.metrics.RecordAudioSession()

	durationSeconds, ok := wavDurationSeconds(body)
	if !ok {
		durationSeconds = fallbackDurationSeconds
	}

	adapter, err := api.newAdapter(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to open STT session")
		writeError(w, http.StatusServiceUnavailable, "transcription unavailable")
		return
	}

	handler := audio.NewHandler(adapter, api.limits)
	if err := handler.Start(r.Context()); err != nil {
		log.Error().Err(err).Msg("Failed to start STT session")
		writeError(w, http.StatusServiceUnavailable, "transcription unavailable")
		return
	}
	defer handler.Close()

	for off := 0; off < len(body); off += audioChunkBytes {
		end := off + audioChunkBytes
		if end > len(body) {
			end = len(body)
		}
		if err := handler.SendAudio(r.Context(), body[off:end]); err != nil {
			log.Error().Err(err).Msg("Failed to send audio to STT")
			writeError(w, http.StatusServiceUnavailable, "transcription failed")
			return
		}
	}
	if err := handler.Close(); err != nil {
		log.Warn().Err(err).Msg("STT session close failed")
	}

	text, confidence, err := handler.Wait(r.Context(), transcriptWait)
	if err != nil {
		if errors.Is(err, audio.ErrNoTranscript) {
			writeError(w, http.StatusUnprocessableEntity, "no transcript produced")
			return
		}
		log.Error().Err(err).Msg("Transcription failed")
		writeError(w, http.StatusServiceUnavailable, "transcription failed")
		return
	}

	api.respondWithReport(w, r, "audio", text, confidence, durationSeconds, "")
}

const audioChunkBytes = 32 * 1024

// respondWithReport runs the analyzer, publishes the scored event and
// writes the response.
func (api *API) respondWithReport(w http.ResponseWriter, r *http.Request, source, text string, confidence, durationSeconds float64, referenceText string) {
	start := time.Now()
	result := api.analyzer.AnalyzeDetailed(text, confidence, durationSeconds, referenceText)
	report := result.Report.Rounded()
	api.metrics.RecordAnalysis(source, time.Since(start).Seconds(),
		report.ClarityScore, report.FluencyScore, report.PronunciationScore,
		report.PaceWPM, report.FillerWordsCount)
	for _, component := range result.Fallbacks() {
		api.metrics.RecordScoreFallback(component)
	}

	interactionID := r.Header.Get("X-Interaction-Id")
	if interactionID == "" {
		interactionID = uuid.NewString()
	}

	api.publishScored(r.Context(), interactionID, report)

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		InteractionID: interactionID,
		Report:        report,
	})
}

// publishScored emits the scored event; failures are logged, never
// surfaced to the caller.
func (api *API) publishScored(ctx context.Context, interactionID string, report models.ScoreReport) {
	if api.publisher == nil {
		return
	}

	event := models.SpeechScored{
		EventType:     models.EventSpeechScored,
		InteractionID: interactionID,
		Timestamp:     time.Now().UnixMilli(),
		SegmentID:     api.segments.Next(interactionID),
		Report:        report,
	}
	logger := logging.WithAnalysis(interactionID, event.SegmentID)
	if err := api.validator.Validate(event); err != nil {
		logger.Error().Err(err).Msg("Scored event failed validation")
		return
	}
	if err := api.publisher.PublishScored(ctx, interactionID, event); err != nil {
		logger.Warn().Err(err).Msg("Failed to publish scored event")
	}
}

// wavDurationSeconds reads the duration from a WAV header.
func wavDurationSeconds(data []byte) (float64, bool) {
	d := wav.NewDecoder(bytes.NewReader(data))
	dur, err := d.Duration()
	if err != nil || dur <= 0 {
		return 0, false
	}
	return dur.Seconds(), true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("Failed to write response body")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
