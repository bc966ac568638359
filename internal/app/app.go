package app

import (
	"os"
	"strings"
	"time"

	"speech-scoring-service/internal/config"
	"speech-scoring-service/internal/observability/logging"

	"github.com/rs/zerolog"
)

// Application holds process-wide state for the service.
type Application struct {
	StartupTime time.Time
	Logger      zerolog.Logger
	Cfg         *config.Configuration
}

// New constructs a new Application from the provided configuration.
func New(cfg *config.Configuration) *Application {
	a := &Application{
		Cfg: cfg,
	}
	a.setupLogger()

	appLogger := a.Logger.With().
		Str("component", "application").
		Str("method", "New").
		Logger()

	appLogger.Info().Msg("Speech scoring service application created")
	return a
}

// setupLogger configures the global zerolog logger and derives the
// application logger from it.
func (a *Application) setupLogger() {
	logCfg := logging.DefaultConfig()
	logCfg.Level = strings.ToLower(a.Cfg.Observability.LogLevel)
	if a.Cfg.Observability.LogFormat == "console" || os.Getenv("ENV") == "dev" {
		logCfg.Format = "console"
	}
	logging.Init(logCfg)

	base := logging.Logger()
	a.Logger = base.With().
		Str("service", "speech-scoring-service").
		Str("component", "application").
		Logger()

	a.Logger.Info().
		Str("logLevel", zerolog.GlobalLevel().String()).
		Str("environment", os.Getenv("ENV")).
		Msg("Logger setup completed")
}

// Start performs any startup work required before serving traffic.
func (a *Application) Start() error {
	startLogger := a.Logger.With().
		Str("method", "Start").
		Logger()

	a.StartupTime = time.Now().UTC()
	startLogger.Info().
		Time("startupTime", a.StartupTime).
		Msg("Speech scoring service starting")

	return nil
}

// Shutdown performs a best-effort cleanup before process exit.
func (a *Application) Shutdown() {
	shutdownLogger := a.Logger.With().
		Str("method", "Shutdown").
		Logger()

	shutdownLogger.Info().Msg("Speech scoring service shutting down")
}
