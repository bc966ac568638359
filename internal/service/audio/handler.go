// Package audio coordinates between the STT adapter and the scoring
// pipeline: it feeds audio bytes to the adapter, collects partial and final
// transcripts, and hands back one scoreable transcript per session.
package audio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"speech-scoring-service/internal/observability/metrics"
	"speech-scoring-service/internal/service/stt"
)

// Limits defines safety guardrails for a transcription session. These
// prevent unbounded resource usage from oversized uploads.
type Limits struct {
	MaxAudioBytes int64         // Max audio bytes per session
	MaxDuration   time.Duration // Max wall-clock session duration
}

// DefaultLimits returns sensible default limits.
func DefaultLimits() Limits {
	return Limits{
		MaxAudioBytes: 10 * 1024 * 1024, // 10MB (~320 seconds at 16kHz 16-bit mono)
		MaxDuration:   2 * time.Minute,
	}
}

// ErrNoTranscript is returned by Wait when the session produced no final
// transcript before the deadline.
var ErrNoTranscript = errors.New("audio: no final transcript received")

// Handler manages one transcription session. It implements stt.Callback:
// partials are kept for observability, finals accumulate into the session
// transcript. Sessions are single-use; create a new Handler per upload.
type Handler struct {
	adapter stt.Adapter
	limits  Limits

	mu          sync.Mutex
	startTime   time.Time
	audioBytes  int64
	partials    []string
	finalTexts  []string
	confidences []float64
	err         error

	firstFinal chan struct{}
	finalOnce  sync.Once
}

// NewHandler creates a handler for a single transcription session.
func NewHandler(adapter stt.Adapter, limits Limits) *Handler {
	return &Handler{
		adapter:    adapter,
		limits:     limits,
		startTime:  time.Now(),
		firstFinal: make(chan struct{}),
	}
}

// Start begins the STT session with this handler as the callback receiver.
func (h *Handler) Start(ctx context.Context) error {
	return h.adapter.Start(ctx, h)
}

// SendAudio forwards audio bytes to the STT adapter, enforcing session
// limits.
func (h *Handler) SendAudio(ctx context.Context, audio []byte) error {
	h.mu.Lock()
	h.audioBytes += int64(len(audio))
	currentBytes := h.audioBytes
	startTime := h.startTime
	h.mu.Unlock()

	metrics.DefaultMetrics.RecordAudioReceived(len(audio))

	if h.limits.MaxAudioBytes > 0 && currentBytes > h.limits.MaxAudioBytes {
		return fmt.Errorf("session limit exceeded: max audio bytes: %d > %d", currentBytes, h.limits.MaxAudioBytes)
	}
	if h.limits.MaxDuration > 0 && time.Since(startTime) > h.limits.MaxDuration {
		return fmt.Errorf("session limit exceeded: max duration: %v > %v", time.Since(startTime), h.limits.MaxDuration)
	}

	return h.adapter.SendAudio(ctx, audio)
}

// Close ends the STT session. Providers that buffer a pending final flush it
// on close, so call Wait after Close.
func (h *Handler) Close() error {
	return h.adapter.Close()
}

// Wait blocks until the session has produced at least one final transcript,
// the context ends, or the timeout elapses. On success it returns the joined
// final text and the mean confidence across finals.
func (h *Handler) Wait(ctx context.Context, timeout time.Duration) (string, float64, error) {
	select {
	case <-h.firstFinal:
	case <-ctx.Done():
		return "", 0, ctx.Err()
	case <-time.After(timeout):
		h.mu.Lock()
		err := h.err
		h.mu.Unlock()
		if err != nil {
			return "", 0, err
		}
		return "", 0, ErrNoTranscript
	}
	text, confidence := h.Transcript()
	return text, confidence, nil
}

// Transcript returns the accumulated final text and mean confidence so far.
func (h *Handler) Transcript() (string, float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	text := strings.TrimSpace(strings.Join(h.finalTexts, " "))
	if len(h.confidences) == 0 {
		return text, stt.DefaultConfidence
	}
	sum := 0.0
	for _, c := range h.confidences {
		sum += c
	}
	return text, sum / float64(len(h.confidences))
}

// Partials returns the partial transcripts received so far.
func (h *Handler) Partials() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string{}, h.partials...)
}

// AudioBytes returns the number of audio bytes sent this session.
func (h *Handler) AudioBytes() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.audioBytes
}

// --- stt.Callback implementation ---

// OnPartial records an interim transcript.
func (h *Handler) OnPartial(text string) {
	h.mu.Lock()
	h.partials = append(h.partials, text)
	h.mu.Unlock()

	metrics.DefaultMetrics.RecordPartialTranscript()
}

// OnFinal appends a final transcript and its confidence to the session.
func (h *Handler) OnFinal(text string, confidence float64) {
	h.mu.Lock()
	h.finalTexts = append(h.finalTexts, text)
	h.confidences = append(h.confidences, confidence)
	h.mu.Unlock()

	metrics.DefaultMetrics.RecordFinalTranscript()
	h.finalOnce.Do(func() { close(h.firstFinal) })
}

// OnError records an STT error. Finals received before the error still
// count; a session with no finals surfaces the error from Wait.
func (h *Handler) OnError(err error) {
	h.mu.Lock()
	h.err = err
	h.mu.Unlock()

	log.Warn().Err(err).Msg("STT session error")
}
