package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// captureOutput redirects the global logger to a buffer for one test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	origLogger := log.Logger
	origLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})
	return &buf
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	origLogger := log.Logger
	origLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})

	cfg := DefaultConfig()
	cfg.Level = "chatty"
	Init(cfg)

	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("expected info level fallback, got %s", zerolog.GlobalLevel())
	}
}

func TestWithAnalysis_CarriesIDs(t *testing.T) {
	buf := captureOutput(t)

	logger := WithAnalysis("interview-7", "interview-7-seg-1")
	logger.Info().Msg("scored")

	out := buf.String()
	for _, want := range []string{
		`"interactionId":"interview-7"`,
		`"segmentId":"interview-7-seg-1"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestWithInteraction_CarriesTenant(t *testing.T) {
	buf := captureOutput(t)

	logger := WithInteraction("interview-7", "tenant-1")
	logger.Warn().Msg("handler failed")

	out := buf.String()
	if !strings.Contains(out, `"tenantId":"tenant-1"`) {
		t.Errorf("log output missing tenant ID: %s", out)
	}
}

func TestWithSTT_CarriesProvider(t *testing.T) {
	buf := captureOutput(t)

	logger := WithSTT("google")
	logger.Warn().Msg("stream failed")

	if !strings.Contains(buf.String(), `"sttProvider":"google"`) {
		t.Errorf("log output missing provider: %s", buf.String())
	}
}

func TestWithComponent_CarriesTag(t *testing.T) {
	buf := captureOutput(t)

	logger := WithComponent("http")
	logger.Info().Msg("request")

	if !strings.Contains(buf.String(), `"component":"http"`) {
		t.Errorf("log output missing component: %s", buf.String())
	}
}
