package main

import (
	"context"
	"errors"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"speech-scoring-service/internal/app"
	"speech-scoring-service/internal/config"
	"speech-scoring-service/internal/events"
	"speech-scoring-service/internal/http"
	"speech-scoring-service/internal/models"
	"speech-scoring-service/internal/observability"
	"speech-scoring-service/internal/observability/logging"
	"speech-scoring-service/internal/observability/metrics"
	"speech-scoring-service/internal/schema"
	"speech-scoring-service/internal/service/audio"
	"speech-scoring-service/internal/service/scoring"
	"speech-scoring-service/internal/service/similarity"
	"speech-scoring-service/internal/service/stt"
	"speech-scoring-service/internal/service/stt/google"
	"speech-scoring-service/internal/service/stt/mock"
	"speech-scoring-service/internal/service/tokenize"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Local development overrides; absent in deployed environments.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application := app.New(cfg)
	if err := application.Start(); err != nil {
		application.Logger.Fatal().Err(err).Msg("Application startup failed")
	}
	logger := application.Logger

	// Scoring pipeline
	tokenizer, err := tokenize.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize tokenizer")
	}
	analyzer := scoring.NewAnalyzer(
		cfg.Scoring.Apply(scoring.DefaultConfig()),
		tokenizer, tokenizer,
		similarity.NewTFIDF(),
	)
	validator := schema.New()

	// Kafka publisher for scored events
	publisher := events.New(&events.Config{
		Enabled:     cfg.Kafka.Enabled,
		Brokers:     cfg.Kafka.Brokers,
		TopicScored: cfg.Kafka.TopicScored,
		Principal:   cfg.Kafka.Principal,
	})
	defer publisher.Close()

	// Kafka consumer scoring incoming final transcripts
	consumer := events.NewConsumer(&events.ConsumerConfig{
		Enabled:          cfg.Kafka.ConsumerEnabled,
		Brokers:          cfg.Kafka.Brokers,
		TopicTranscripts: cfg.Kafka.TopicTranscripts,
		GroupID:          cfg.Kafka.GroupID,
	}, scoreTranscript(analyzer, validator, publisher))
	defer consumer.Close()

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := consumer.Run(rootCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Transcript consumer stopped")
		}
	}()

	// REST API
	api := http.NewAPI(analyzer, publisher, validator, metrics.DefaultMetrics,
		adapterFactory(cfg), audio.Limits{
			MaxAudioBytes: cfg.Audio.MaxBytes,
			MaxDuration:   cfg.Audio.MaxDuration,
		})
	httpServer := &nethttp.Server{
		Addr:         ":" + cfg.Service.HTTPPort,
		Handler:      http.NewRouter(application, api, metrics.DefaultMetrics),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("HTTP server started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP serve failed")
		}
	}()

	// Metrics server
	obsServer := observability.NewServer(":" + cfg.Service.MetricsPort)
	obsServer.Start()

	// gRPC health endpoint for platform probes
	lis, err := net.Listen("tcp", ":"+cfg.Service.GRPCPort)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to listen on gRPC port")
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("speech.scoring.ScoringService", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	go func() {
		logger.Info().Str("addr", lis.Addr().String()).Msg("gRPC health server started")
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal().Err(err).Msg("gRPC serve failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info().Msg("Shutdown signal received")
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP shutdown failed")
	}
	if err := obsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Metrics server shutdown failed")
	}
	grpcServer.GracefulStop()
	application.Shutdown()
}

// scoreTranscript builds the consumer handler that scores a final
// transcript and republishes the result.
func scoreTranscript(analyzer *scoring.Analyzer, validator *schema.Validator, publisher *events.Publisher) events.TranscriptHandler {
	return func(ctx context.Context, t models.TranscriptFinal) error {
		confidence := t.Confidence
		if confidence <= 0 {
			confidence = stt.DefaultConfidence
		}

		start := time.Now()
		result := analyzer.AnalyzeDetailed(t.Text, confidence, t.DurationSeconds, t.ReferenceText)
		report := result.Report.Rounded()
		metrics.DefaultMetrics.RecordAnalysis("kafka", time.Since(start).Seconds(),
			report.ClarityScore, report.FluencyScore, report.PronunciationScore,
			report.PaceWPM, report.FillerWordsCount)
		for _, component := range result.Fallbacks() {
			metrics.DefaultMetrics.RecordScoreFallback(component)
		}
		scoreLogger := logging.WithAnalysis(t.InteractionID, t.SegmentID)
		scoreLogger.Info().
			Float64("clarity", report.ClarityScore).
			Float64("fluency", report.FluencyScore).
			Float64("paceWpm", report.PaceWPM).
			Msg("Transcript scored")

		event := models.SpeechScored{
			EventType:     models.EventSpeechScored,
			InteractionID: t.InteractionID,
			TenantID:      t.TenantID,
			Timestamp:     time.Now().UnixMilli(),
			SegmentID:     t.SegmentID,
			Report:        report,
		}
		if err := validator.Validate(event); err != nil {
			return err
		}
		return publisher.PublishScored(ctx, t.InteractionID, event)
	}
}

// adapterFactory returns the STT session factory for the configured
// provider.
func adapterFactory(cfg *config.Configuration) http.AdapterFactory {
	switch cfg.STT.Provider {
	case "google":
		return func(ctx context.Context) (stt.Adapter, error) {
			return google.New(ctx, google.Config{
				LanguageCode:   cfg.STT.LanguageCode,
				SampleRateHz:   cfg.STT.SampleRateHz,
				InterimResults: cfg.STT.InterimResults,
				AudioEncoding:  cfg.STT.AudioEncoding,
			})
		}
	default:
		return func(ctx context.Context) (stt.Adapter, error) {
			return mock.New(), nil
		}
	}
}
