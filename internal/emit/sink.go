// Package emit drives the three progressive component emitters (card,
// table, chart) plus the plain-text default response. Each emitter is a
// cooperative task that writes prose and envelopes into a Sink and
// suspends at explicit sleeps, as a sequence of ctx-aware calls rather
// than a native generator.
package emit

import (
	"context"
	"log/slog"
	"time"

	"chatstream/internal/registry"
	"chatstream/internal/wire"
)

// Sink is the destination for one streaming response: raw prose bytes,
// framed component envelopes, and cooperative suspension. Implementations
// must be safe to use from a single goroutine only; one Sink serves
// exactly one request.
type Sink interface {
	// Text writes s verbatim, outside any delimiter pair.
	Text(ctx context.Context, s string) error
	// Envelope frames and writes one component snapshot.
	Envelope(ctx context.Context, env wire.Envelope) error
	// Sleep suspends the task for d, or returns ctx.Err() if the request
	// is cancelled first (client disconnect).
	Sleep(ctx context.Context, d time.Duration) error
}

// introduceFrame registers id and writes its first envelope. A registry
// rejection (duplicate id) is a programming error: the frame is logged at
// WARN and dropped, and the rest of the stream continues.
func introduceFrame(ctx context.Context, sink Sink, reg *registry.Registry, kind wire.Kind, id string, data map[string]any) error {
	if err := reg.Introduce(id, kind, data); err != nil {
		slog.Warn("dropping component frame", "id", id, "err", err)
		return nil
	}
	return sink.Envelope(ctx, wire.Envelope{Type: kind, ID: id, Data: data})
}

// updateFrame applies patch to id's registry entry and writes the update
// envelope, with the same log-and-drop handling on rejection.
func updateFrame(ctx context.Context, sink Sink, reg *registry.Registry, kind wire.Kind, id string, patch map[string]any) error {
	if err := reg.Update(id, patch); err != nil {
		slog.Warn("dropping component frame", "id", id, "err", err)
		return nil
	}
	return sink.Envelope(ctx, wire.Envelope{Type: kind, ID: id, Data: patch})
}

// typeProse writes s to the sink one rune at a time, pausing wordDelay after each
// space and charDelay after each other rune, reproducing the "typing"
// texture of the card/table/chart narration. It is not used for the short
// fixed completion sentences, which are written as a single Text call.
func typeProse(ctx context.Context, sink Sink, s string, charDelay, wordDelay time.Duration) error {
	for _, r := range s {
		if err := sink.Text(ctx, string(r)); err != nil {
			return err
		}
		if r == ' ' {
			if err := sink.Sleep(ctx, wordDelay); err != nil {
				return err
			}
			continue
		}
		if err := sink.Sleep(ctx, charDelay); err != nil {
			return err
		}
	}
	return nil
}

// sentenceDone is the fixed completion line shared by every card sub-mode.
const sentenceDone = "All set!"
