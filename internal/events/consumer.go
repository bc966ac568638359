package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"speech-scoring-service/internal/models"
	"speech-scoring-service/internal/observability/logging"
	"speech-scoring-service/internal/observability/metrics"
)

// TranscriptHandler processes one final transcript event. A returned error
// marks the message as failed; the consumer retries it with backoff before
// giving up and committing anyway (a poison message must not wedge the
// partition).
type TranscriptHandler func(ctx context.Context, ev models.TranscriptFinal) error

// ConsumerConfig holds Kafka consumer configuration.
type ConsumerConfig struct {
	Brokers          []string
	TopicTranscripts string
	GroupID          string
	Enabled          bool
}

// Consumer reads final transcript events from Kafka and feeds them to the
// scoring handler.
type Consumer struct {
	reader  *kafka.Reader
	handler TranscriptHandler
	enabled bool
	metrics *metrics.Metrics
}

// NewConsumer creates a Kafka consumer for final transcript events. With
// Kafka disabled it is inert: Run just waits for ctx cancellation.
func NewConsumer(cfg *ConsumerConfig, handler TranscriptHandler) *Consumer {
	m := metrics.DefaultMetrics

	if cfg == nil || !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka consumer disabled")
		return &Consumer{enabled: false, metrics: m}
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.TopicTranscripts,
		MinBytes:       1,
		MaxBytes:       10 * 1024 * 1024,
		CommitInterval: 0, // explicit commits
	})

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.TopicTranscripts).
		Str("groupId", cfg.GroupID).
		Msg("Kafka consumer initialized")

	return &Consumer{
		reader:  reader,
		handler: handler,
		enabled: true,
		metrics: m,
	}
}

// Run consumes transcript events until ctx is cancelled. It always returns
// a non-nil error; context.Canceled means a clean shutdown.
func (c *Consumer) Run(ctx context.Context) error {
	if !c.enabled {
		<-ctx.Done()
		return ctx.Err()
	}

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			log.Error().Err(err).Msg("Failed to fetch Kafka message")
			c.metrics.RecordKafkaConsume(c.reader.Config().Topic, err)
			continue
		}

		c.handleMessage(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			log.Error().Err(err).Msg("Failed to commit Kafka message")
		}
	}
}

// handleMessage decodes and scores one message, retrying transient handler
// failures with exponential backoff.
func (c *Consumer) handleMessage(ctx context.Context, msg kafka.Message) {
	topic := c.reader.Config().Topic

	var ev models.TranscriptFinal
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", string(msg.Key)).
			Msg("Failed to decode transcript event, skipping")
		c.metrics.RecordKafkaConsume(topic, err)
		return
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	err := backoff.Retry(func() error {
		return c.handler(ctx, ev)
	}, backoff.WithContext(bo, ctx))

	c.metrics.RecordKafkaConsume(topic, err)
	if err != nil {
		evLogger := logging.WithInteraction(ev.InteractionID, ev.TenantID)
		evLogger.Error().
			Err(err).
			Str("segmentId", ev.SegmentID).
			Msg("Transcript handler failed after retries, skipping message")
	}
}

// Close closes the underlying Kafka reader.
func (c *Consumer) Close() error {
	if c.reader != nil {
		return c.reader.Close()
	}
	return nil
}
