// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"speech-scoring-service/internal/service/scoring"
)

// Configuration holds all runtime configuration for the service.
type Configuration struct {
	Service       ServiceConfig
	STT           STTConfig
	Scoring       ScoringConfig
	Audio         AudioConfig
	Kafka         KafkaConfig
	Observability ObservabilityConfig
}

// ServiceConfig identifies the service and its listen ports.
type ServiceConfig struct {
	Principal   string `default:"svc-speech-scoring"`
	HTTPPort    string `envconfig:"HTTP_PORT" default:"8080"`
	GRPCPort    string `envconfig:"GRPC_PORT" default:"50051"`
	MetricsPort string `envconfig:"METRICS_PORT" default:"9090"`
}

// STTConfig selects and configures the speech-to-text provider.
type STTConfig struct {
	Provider       string `default:"mock"`
	LanguageCode   string `envconfig:"LANGUAGE_CODE" default:"en-US"`
	SampleRateHz   int32  `envconfig:"SAMPLE_RATE_HZ" default:"16000"`
	InterimResults bool   `envconfig:"INTERIM_RESULTS" default:"true"`
	AudioEncoding  string `envconfig:"AUDIO_ENCODING" default:"LINEAR16"`
}

// ScoringConfig exposes the tunable subset of the scoring parameters.
type ScoringConfig struct {
	MinScorableChars     int     `envconfig:"MIN_SCORABLE_CHARS" default:"5"`
	IdealPaceMin         float64 `envconfig:"IDEAL_PACE_MIN" default:"120"`
	IdealPaceMax         float64 `envconfig:"IDEAL_PACE_MAX" default:"160"`
	ClarityFillerPenalty float64 `envconfig:"CLARITY_FILLER_PENALTY" default:"500"`
	FluencyFillerPenalty float64 `envconfig:"FLUENCY_FILLER_PENALTY" default:"400"`
}

// Apply overlays the tunable parameters onto a scoring config.
func (s ScoringConfig) Apply(cfg scoring.Config) scoring.Config {
	cfg.MinScorableChars = s.MinScorableChars
	cfg.IdealPaceMin = s.IdealPaceMin
	cfg.IdealPaceMax = s.IdealPaceMax
	cfg.ClarityFillerPenalty = s.ClarityFillerPenalty
	cfg.FluencyFillerPenalty = s.FluencyFillerPenalty
	return cfg
}

// AudioConfig limits accepted audio submissions.
type AudioConfig struct {
	MaxBytes    int64         `envconfig:"MAX_BYTES" default:"10485760"`
	MaxDuration time.Duration `envconfig:"MAX_DURATION" default:"2m"`
}

// KafkaConfig configures event publishing and consumption.
type KafkaConfig struct {
	Enabled          bool     `default:"false"`
	ConsumerEnabled  bool     `envconfig:"CONSUMER_ENABLED" default:"false"`
	Brokers          []string `default:"localhost:9092"`
	TopicTranscripts string   `envconfig:"TOPIC_TRANSCRIPTS" default:"interaction.transcript.final"`
	TopicScored      string   `envconfig:"TOPIC_SCORED" default:"interaction.speech.scored"`
	GroupID          string   `envconfig:"GROUP_ID" default:"speech-scoring"`
	Principal        string
}

// ObservabilityConfig configures logging output.
type ObservabilityConfig struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads configuration from the environment.
func Load() (*Configuration, error) {
	var cfg Configuration
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}

	// Kafka messages carry the publishing principal; default to the
	// service identity unless overridden.
	if cfg.Kafka.Principal == "" {
		cfg.Kafka.Principal = cfg.Service.Principal
	}

	return &cfg, nil
}
