// Package httpapi wires the streaming chat endpoint, health check, and
// metrics route into an http.Handler.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"chatstream/internal/config"
	"chatstream/internal/dispatch"
	"chatstream/internal/idgen"
	"chatstream/internal/metrics"
	"chatstream/internal/planner"
	"chatstream/internal/registry"
)

// chatRequest is the one-field JSON body POST /chat accepts. Message is a
// pointer so a body that omits the field entirely can be rejected, while
// an explicit empty message still streams the default text reply.
type chatRequest struct {
	Message *string `json:"message"`
}

// Deps bundles everything a ChatHandler needs per call; one Deps is built
// once at startup and shared by every request (its own fields are either
// immutable or already concurrency-safe, e.g. the planner cache).
type Deps struct {
	Limits  config.Limits
	Gen     *idgen.Generator
	Planner *planner.Planner
}

// Health reports a minimal JSON status body for liveness checks.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// ChatHandler implements POST /chat: decode the request, classify it, and
// stream the matching emitter's output as the response body.
func ChatHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "malformed JSON body")
			return
		}
		if req.Message == nil {
			writeBadRequest(w, "missing message field")
			return
		}
		message := *req.Message

		pattern := dispatch.Classify(message)
		metrics.PatternSelected.WithLabelValues(pattern.String()).Inc()

		sink, ok := newStreamSink(w)
		if !ok {
			http.Error(w, `{"error":"streaming unsupported"}`, http.StatusInternalServerError)
			return
		}

		reg := registry.New()
		ctx := r.Context()

		if err := route(ctx, sink, reg, deps, pattern, message); err != nil {
			// Once headers are sent there is no client-visible error
			// channel; a truncated stream reads as "done" on the client.
			// A cancelled context is the client hanging up, which is not
			// worth a log line.
			if !errors.Is(err, context.Canceled) {
				slog.Warn("chat stream aborted", "pattern", pattern.String(), "err", err, "trace_id", TraceID(r))
			}
			return
		}
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
