// Package observability provides the metrics endpoint, probe endpoints, and
// HTTP middleware for the scoring service.
package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Server exposes Prometheus metrics and platform probes on a port separate
// from the scoring API, so scrapes and probes never contend with analysis
// traffic.
type Server struct {
	server *http.Server
	addr   string
}

// NewServer builds the observability server for the given listen address.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	return &Server{
		addr: addr,
		server: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	go func() {
		log.Info().Str("addr", s.addr).Msg("Metrics server started")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Metrics server error")
		}
	}()
}

// Shutdown stops the server, honoring the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Metrics server shutting down")
	return s.server.Shutdown(ctx)
}
