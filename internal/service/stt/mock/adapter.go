// Package mock provides a mock STT adapter for running the scoring pipeline
// without cloud credentials. It simulates realistic speech-to-text behavior:
// progressive partial transcripts while audio arrives, then exactly one final
// transcript whose confidence is derived from simulated per-segment log
// probabilities, the same way a Whisper-style engine reports it.
package mock

import (
	"context"
	"sync"
	"time"

	"speech-scoring-service/internal/service/stt"
)

// SimulatedUtterance is a scripted utterance with progressive transcripts.
type SimulatedUtterance struct {
	Partials []string      // Progressive partial transcripts
	Final    string        // Final transcript text
	Segments []stt.Segment // Per-segment avg log probs backing the confidence
}

// DefaultUtterances provides sample interview answers for simulation.
var DefaultUtterances = []SimulatedUtterance{
	{
		Partials: []string{"In my previous", "In my previous role I"},
		Final:    "In my previous role I managed a team of five developers on a performance optimization project.",
		Segments: []stt.Segment{{AvgLogProb: -0.09}, {AvgLogProb: -0.14}},
	},
	{
		Partials: []string{"The main challenge", "The main challenge was"},
		Final:    "The main challenge was improving database performance while keeping the architecture maintainable.",
		Segments: []stt.Segment{{AvgLogProb: -0.06}, {AvgLogProb: -0.11}},
	},
	{
		Partials: []string{"Um so", "Um so basically I"},
		Final:    "Um so basically I kind of worked on, you know, the technical design and documentation.",
		Segments: []stt.Segment{{AvgLogProb: -0.31}, {AvgLogProb: -0.42}, {AvgLogProb: -0.27}},
	},
	{
		Partials: []string{"I led the"},
		Final:    "I led the stakeholder communication and owned the requirement specification for the initiative.",
		Segments: []stt.Segment{{AvgLogProb: -0.05}},
	},
}

// Adapter implements stt.Adapter with scripted responses:
// one partial per audio frame, then a single final once partials are
// exhausted. If the stream closes before that, the final is sent from Close.
type Adapter struct {
	cb           stt.Callback
	mu           sync.Mutex
	utterance    SimulatedUtterance
	partialIndex int
	finalSent    bool
	closed       bool
}

// utteranceCounter cycles through DefaultUtterances across adapters.
var (
	utteranceCounter int
	counterMu        sync.Mutex
)

// New creates a new mock STT adapter.
func New() *Adapter {
	counterMu.Lock()
	idx := utteranceCounter % len(DefaultUtterances)
	utteranceCounter++
	counterMu.Unlock()

	return NewWithUtterance(DefaultUtterances[idx])
}

// NewWithUtterance creates a mock adapter that plays back a specific
// utterance. Useful in tests that need deterministic transcripts.
func NewWithUtterance(u SimulatedUtterance) *Adapter {
	return &Adapter{utterance: u}
}

// Start begins a mock transcription session.
func (a *Adapter) Start(ctx context.Context, cb stt.Callback) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cb = cb
	return nil
}

// SendAudio simulates receiving audio. Each frame advances the scripted
// partials; the frame after the last partial triggers the final transcript,
// mimicking silence detection ending the utterance.
func (a *Adapter) SendAudio(ctx context.Context, audio []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || a.cb == nil {
		return nil
	}

	if a.partialIndex < len(a.utterance.Partials) {
		partial := a.utterance.Partials[a.partialIndex]
		a.partialIndex++

		go func(text string) {
			time.Sleep(20 * time.Millisecond)
			a.mu.Lock()
			cb := a.cb
			closed := a.closed
			a.mu.Unlock()
			if !closed && cb != nil {
				cb.OnPartial(text)
			}
		}(partial)
		return nil
	}

	if !a.finalSent {
		a.finalSent = true
		a.deliverFinal()
	}
	return nil
}

// Close ends the mock session. If the final was not sent via SendAudio (the
// stream ended early), it is sent now so every session produces a scoreable
// transcript.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	if !a.finalSent && a.cb != nil {
		a.finalSent = true
		a.deliverFinal()
	}
	return nil
}

// deliverFinal sends the final transcript asynchronously. Caller must hold mu.
func (a *Adapter) deliverFinal() {
	cb := a.cb
	utt := a.utterance
	go func() {
		time.Sleep(40 * time.Millisecond)
		cb.OnFinal(utt.Final, stt.Confidence(utt.Segments))
	}()
}
