// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "speech_scoring"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Analysis metrics
	AnalysesTotal     *prometheus.CounterVec
	AnalysisDuration  prometheus.Histogram
	ScoreDistribution *prometheus.HistogramVec
	ScoreFallbacks    *prometheus.CounterVec
	FillerWords       prometheus.Histogram
	PaceWPM           prometheus.Histogram

	// Audio metrics
	AudioBytesReceived prometheus.Counter
	AudioSessionsTotal prometheus.Counter

	// Transcript metrics
	TranscriptsPartial prometheus.Counter
	TranscriptsFinal   prometheus.Counter

	// Kafka metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
	KafkaConsumeTotal   *prometheus.CounterVec
	KafkaConsumeErrors  *prometheus.CounterVec

	// STT metrics
	STTErrors *prometheus.CounterVec

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		// Analysis metrics
		AnalysesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of speech analyses performed",
		}, []string{"source"}),
		AnalysisDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Duration of one analysis in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ScoreDistribution: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score_distribution",
			Help:      "Distribution of produced scores by component (0-100)",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}, []string{"component"}),
		ScoreFallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_fallbacks_total",
			Help:      "Score components that resolved to their neutral fallback value",
		}, []string{"component"}),
		FillerWords: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filler_words",
			Help:      "Filler words detected per analysis",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		PaceWPM: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pace_wpm",
			Help:      "Speaking pace per analysis in words per minute",
			Buckets:   []float64{60, 80, 100, 120, 140, 160, 180, 200, 250},
		}),

		// Audio metrics
		AudioBytesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_bytes_received_total",
			Help:      "Total audio bytes received for transcription",
		}),
		AudioSessionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_sessions_total",
			Help:      "Total transcription sessions started",
		}),

		// Transcript metrics
		TranscriptsPartial: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcripts_partial_total",
			Help:      "Total number of partial transcripts received",
		}),
		TranscriptsFinal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcripts_final_total",
			Help:      "Total number of final transcripts received",
		}),

		// Kafka metrics
		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
		KafkaConsumeTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_consume_total",
			Help:      "Total number of Kafka messages consumed",
		}, []string{"topic"}),
		KafkaConsumeErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_consume_errors_total",
			Help:      "Total number of Kafka consume/handler errors",
		}, []string{"topic"}),

		// STT metrics
		STTErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stt_errors_total",
			Help:      "Total number of STT errors",
		}, []string{"provider"}),

		// HTTP metrics
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route and status code",
		}, []string{"route", "code"}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route"}),
	}
}

// RecordAnalysis records one completed analysis and its report values.
func (m *Metrics) RecordAnalysis(source string, durationSeconds, clarity, fluency, pronunciation, pace float64, fillerCount int) {
	m.AnalysesTotal.WithLabelValues(source).Inc()
	m.AnalysisDuration.Observe(durationSeconds)
	m.ScoreDistribution.WithLabelValues("clarity").Observe(clarity)
	m.ScoreDistribution.WithLabelValues("fluency").Observe(fluency)
	m.ScoreDistribution.WithLabelValues("pronunciation").Observe(pronunciation)
	m.FillerWords.Observe(float64(fillerCount))
	m.PaceWPM.Observe(pace)
}

// RecordScoreFallback records a score component that fell back to its neutral value.
func (m *Metrics) RecordScoreFallback(component string) {
	m.ScoreFallbacks.WithLabelValues(component).Inc()
}

// RecordAudioSession records a new transcription session starting.
func (m *Metrics) RecordAudioSession() {
	m.AudioSessionsTotal.Inc()
}

// RecordAudioReceived records audio bytes received.
func (m *Metrics) RecordAudioReceived(bytes int) {
	m.AudioBytesReceived.Add(float64(bytes))
}

// RecordPartialTranscript records a partial transcript received.
func (m *Metrics) RecordPartialTranscript() {
	m.TranscriptsPartial.Inc()
}

// RecordFinalTranscript records a final transcript received.
func (m *Metrics) RecordFinalTranscript() {
	m.TranscriptsFinal.Inc()
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}

// RecordKafkaConsume records a consumed message and whether handling failed.
func (m *Metrics) RecordKafkaConsume(topic string, err error) {
	m.KafkaConsumeTotal.WithLabelValues(topic).Inc()
	if err != nil {
		m.KafkaConsumeErrors.WithLabelValues(topic).Inc()
	}
}

// RecordSTTError records an STT error.
func (m *Metrics) RecordSTTError(provider string) {
	m.STTErrors.WithLabelValues(provider).Inc()
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(route, code string, durationSeconds float64) {
	m.HTTPRequests.WithLabelValues(route, code).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(durationSeconds)
}
