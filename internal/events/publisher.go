// Package events provides Kafka publishing and consumption for the scoring
// service: it consumes final transcript events and publishes speech-scored
// events.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"speech-scoring-service/internal/observability/metrics"
)

// Publisher publishes scored-speech events. When Kafka is disabled it runs
// in log-only mode so the HTTP path works without a broker.
type Publisher struct {
	writerScored *kafka.Writer
	principal    string
	topicScored  string
	enabled      bool
	metrics      *metrics.Metrics
}

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers     []string
	TopicScored string
	Principal   string
	Enabled     bool
}

// New creates a new Kafka event publisher for scored-speech events.
func New(cfg *Config) *Publisher {
	m := metrics.DefaultMetrics

	// Handle nil config case
	if cfg == nil {
		log.Info().Msg("Kafka disabled (nil config), using log-only mode")
		return &Publisher{
			enabled: false,
			metrics: m,
		}
	}

	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, using log-only mode")
		return &Publisher{
			principal:   cfg.Principal,
			topicScored: cfg.TopicScored,
			enabled:     false,
			metrics:     m,
		}
	}

	// Custom dialer with longer timeouts for DNS resolution in Kubernetes
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	transport := &kafka.Transport{
		Dial: dialer.DialFunc,
	}

	writerScored := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicScored,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topicScored", cfg.TopicScored).
		Str("principal", cfg.Principal).
		Msg("Kafka publisher initialized")

	return &Publisher{
		writerScored: writerScored,
		principal:    cfg.Principal,
		topicScored:  cfg.TopicScored,
		enabled:      true,
		metrics:      m,
	}
}

// PublishScored publishes a speech-scored event.
func (p *Publisher) PublishScored(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerScored, p.topicScored, "scored", key, event)
}

// publish is the internal method that writes to a specific Kafka writer.
func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, topic, eventType, key string, event any) error {
	start := time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to marshal event")
		return err
	}

	log.Debug().
		Str("principal", p.principal).
		Str("topic", topic).
		Str("key", key).
		RawJSON("payload", payload).
		Msg("Publishing event")

	// If Kafka is disabled, just log
	if !p.enabled || writer == nil {
		p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(eventType)},
			{Key: "principal", Value: []byte(p.principal)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("Failed to write to Kafka")
		p.metrics.RecordKafkaPublish(topic, eventType, err, time.Since(start).Seconds())
		return err
	}

	p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
	return nil
}

// Close closes the Kafka writer.
func (p *Publisher) Close() error {
	if p.writerScored != nil {
		if err := p.writerScored.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing scored writer")
			return err
		}
	}
	return nil
}
