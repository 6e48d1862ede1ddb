package httpapi

import (
	"context"
	"net/http"
	"time"

	"chatstream/internal/emit"
	"chatstream/internal/metrics"
	"chatstream/internal/wire"
)

// streamSink writes to an http.ResponseWriter, flushing after every write
// so each frame reaches the client immediately rather than waiting on
// Go's default buffering.
type streamSink struct {
	w http.ResponseWriter
	f http.Flusher
}

// newStreamSink sets the streaming response headers and wraps w. It
// reports false if the underlying ResponseWriter cannot be flushed
// incrementally, which the protocol requires.
func newStreamSink(w http.ResponseWriter) (*streamSink, bool) {
	f, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}

	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	h.Set("Content-Encoding", "identity")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	f.Flush()

	return &streamSink{w: w, f: f}, true
}

func (s *streamSink) Text(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.w.Write([]byte(text)); err != nil {
		return err
	}
	s.f.Flush()
	return nil
}

func (s *streamSink) Envelope(ctx context.Context, env wire.Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := wire.Encode(env)
	if err != nil {
		return err
	}
	if _, err := s.w.Write(body); err != nil {
		return err
	}
	s.f.Flush()
	metrics.FramesEmitted.WithLabelValues(string(env.Type)).Inc()
	return nil
}

func (s *streamSink) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

var _ emit.Sink = (*streamSink)(nil)
