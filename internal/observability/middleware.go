package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"speech-scoring-service/internal/observability/logging"
	"speech-scoring-service/internal/observability/metrics"
)

// Middleware returns HTTP middleware recording request metrics and logging.
func Middleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			route := routePattern(r)
			code := strconv.Itoa(ww.Status())

			m.RecordHTTPRequest(route, code, duration.Seconds())

			httpLogger := logging.WithComponent("http")
			httpLogger.Info().
				Str("method", r.Method).
				Str("route", route).
				Str("code", code).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", duration).
				Msg("HTTP request")
		})
	}
}

// routePattern returns the chi route pattern, falling back to the raw path
// for requests that did not match a route.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
