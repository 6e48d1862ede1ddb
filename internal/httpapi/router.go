package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chatstream/internal/metrics"
)

// traceIDCtxKey is the context key for the per-request correlation id
// assigned below, distinct from any component id minted by IdGen.
type traceIDCtxKey struct{}

// TraceID returns the correlation id assigned to r by traceIDMiddleware,
// or the empty string if none was ever attached.
func TraceID(r *http.Request) string {
	id, _ := r.Context().Value(traceIDCtxKey{}).(string)
	return id
}

// traceIDMiddleware stamps every request with a uuid-based correlation id
// for cross-log-line tracing. Stateless: the id lives only for the request,
// there is no persisted session to attach it to.
func traceIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Trace-Id", id)
		ctx := context.WithValue(r.Context(), traceIDCtxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// chiLogger is a lightweight slog + prometheus adapter for the chi
// middleware chain.
func chiLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t0 := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(t0)
		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, routePattern, fmt.Sprint(http.StatusOK)).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, routePattern).Observe(duration.Seconds())
		slog.Info("http", "method", r.Method, "path", r.URL.Path, "route", routePattern,
			"duration", duration, "trace_id", TraceID(r))
	})
}

// corsMiddleware is a permissive CORS policy for local development origins,
// without naming a specific origin allowlist.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRouter builds the full chi router: /chat, /health, /metrics, with a
// standard middleware chain (RequestID, RealIP, Recoverer) plus the
// trace-id and CORS middleware this domain adds.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(traceIDMiddleware)
	r.Use(corsMiddleware)
	r.Use(chiLogger)
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/health", Health)
	r.Post("/chat", ChatHandler(deps))

	return r
}
