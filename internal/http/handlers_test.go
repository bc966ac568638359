package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"speech-scoring-service/internal/models"
	"speech-scoring-service/internal/observability/metrics"
	"speech-scoring-service/internal/schema"
	"speech-scoring-service/internal/service/audio"
	"speech-scoring-service/internal/service/scoring"
	"speech-scoring-service/internal/service/stt"
	"speech-scoring-service/internal/service/stt/mock"
)

type stubWords struct{}

func (stubWords) Words(text string) ([]string, error) {
	return strings.Fields(strings.ToLower(text)), nil
}

type stubSentences struct{}

func (stubSentences) Sentences(text string) ([]string, error) {
	var out []string
	for _, s := range strings.Split(text, ".") {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t+".")
		}
	}
	return out, nil
}

type stubSimilarity struct{ score float64 }

func (s stubSimilarity) Similarity(a, b string) (float64, error) {
	return s.score, nil
}

type capturePublisher struct {
	events []models.SpeechScored
}

func (p *capturePublisher) PublishScored(ctx context.Context, key string, event any) error {
	p.events = append(p.events, event.(models.SpeechScored))
	return nil
}

func newTestAPI(t *testing.T, factory AdapterFactory) (*API, *capturePublisher) {
	t.Helper()
	analyzer := scoring.NewAnalyzer(scoring.DefaultConfig(), stubWords{}, stubSentences{}, stubSimilarity{score: 0.8})
	pub := &capturePublisher{}
	api := NewAPI(analyzer, pub, schema.New(), metrics.DefaultMetrics, factory, audio.DefaultLimits())
	return api, pub
}

func TestHandleAnalyze_OK(t *testing.T) {
	api, pub := newTestAPI(t, nil)

	body := `{"text":"I led the migration project and we shipped it on time.","confidence":0.9,"durationSeconds":5}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyses", strings.NewReader(body))
	rec := httptest.NewRecorder()

	api.handleAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.InteractionID == "" {
		t.Error("expected generated interaction ID")
	}
	if resp.Report.ClarityScore < 0 || resp.Report.ClarityScore > 100 {
		t.Errorf("clarity score out of bounds: %v", resp.Report.ClarityScore)
	}
	if resp.Report.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", resp.Report.Confidence)
	}
	if resp.Report.PaceWPM <= 0 {
		t.Errorf("expected positive pace, got %v", resp.Report.PaceWPM)
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.EventType != models.EventSpeechScored {
		t.Errorf("unexpected event type %s", ev.EventType)
	}
	if ev.InteractionID != resp.InteractionID {
		t.Errorf("event interaction ID %s does not match response %s", ev.InteractionID, resp.InteractionID)
	}
	if ev.SegmentID == "" {
		t.Error("expected a generated segment ID on the event")
	}
}

func TestHandleAnalyze_DefaultConfidence(t *testing.T) {
	api, _ := newTestAPI(t, nil)

	body := `{"text":"Short answer about the project.","durationSeconds":3}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyses", strings.NewReader(body))
	rec := httptest.NewRecorder()

	api.handleAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Report.Confidence != stt.DefaultConfidence {
		t.Errorf("expected default confidence %v, got %v", stt.DefaultConfidence, resp.Report.Confidence)
	}
}

func TestHandleAnalyze_HonorsInteractionHeader(t *testing.T) {
	api, _ := newTestAPI(t, nil)

	body := `{"text":"Answer.","durationSeconds":2}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyses", strings.NewReader(body))
	req.Header.Set("X-Interaction-Id", "interaction-42")
	rec := httptest.NewRecorder()

	api.handleAnalyze(rec, req)

	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.InteractionID != "interaction-42" {
		t.Errorf("expected interaction-42, got %s", resp.InteractionID)
	}
}

func TestHandleAnalyze_InvalidJSON(t *testing.T) {
	api, _ := newTestAPI(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyses", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	api.handleAnalyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleAnalyze_NonPositiveDuration(t *testing.T) {
	api, _ := newTestAPI(t, nil)

	for _, body := range []string{
		`{"text":"hello","durationSeconds":0}`,
		`{"text":"hello","durationSeconds":-3}`,
		`{"text":"hello"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/v1/analyses", strings.NewReader(body))
		rec := httptest.NewRecorder()

		api.handleAnalyze(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestHandleAudio_MockTranscription(t *testing.T) {
	utterance := mock.SimulatedUtterance{
		Partials: []string{"I believe"},
		Final:    "I believe my experience fits this role well.",
		Segments: []stt.Segment{{AvgLogProb: -0.1}},
	}
	factory := func(ctx context.Context) (stt.Adapter, error) {
		return mock.NewWithUtterance(utterance), nil
	}
	api, pub := newTestAPI(t, factory)

	req := httptest.NewRequest(http.MethodPost, "/v1/audio", bytes.NewReader(make([]byte, 4096)))
	rec := httptest.NewRecorder()

	api.handleAudio(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Report.TranscribedText != utterance.Final {
		t.Errorf("expected transcript %q, got %q", utterance.Final, resp.Report.TranscribedText)
	}
	if resp.Report.Confidence <= 0 || resp.Report.Confidence > 1 {
		t.Errorf("derived confidence out of bounds: %v", resp.Report.Confidence)
	}
	if len(pub.events) != 1 {
		t.Errorf("expected 1 published event, got %d", len(pub.events))
	}
}

func TestHandleAudio_EmptyBody(t *testing.T) {
	api, _ := newTestAPI(t, func(ctx context.Context) (stt.Adapter, error) {
		return mock.New(), nil
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/audio", bytes.NewReader(nil))
	rec := httptest.NewRecorder()

	api.handleAudio(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestWavDurationSeconds_InvalidData(t *testing.T) {
	if _, ok := wavDurationSeconds([]byte("not a wav file")); ok {
		t.Error("expected failure for invalid WAV data")
	}
}
