package emit

import (
	"context"
	"time"

	"chatstream/internal/wire"
)

// fakeSink is an in-memory Sink with a no-op Sleep so emitter tests run
// instantly while still recording what durations were requested, enough
// to assert the protocol's hard 3s/5s waits without actually waiting.
type fakeSink struct {
	texts     []string
	envelopes []wire.Envelope
	sleeps    []time.Duration
}

func (f *fakeSink) Text(_ context.Context, s string) error {
	f.texts = append(f.texts, s)
	return nil
}

func (f *fakeSink) Envelope(_ context.Context, env wire.Envelope) error {
	f.envelopes = append(f.envelopes, env)
	return nil
}

func (f *fakeSink) Sleep(_ context.Context, d time.Duration) error {
	f.sleeps = append(f.sleeps, d)
	return nil
}

func (f *fakeSink) envelopesForID(id string) []wire.Envelope {
	var out []wire.Envelope
	for _, e := range f.envelopes {
		if e.ID == id {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeSink) hasSleep(d time.Duration) bool {
	for _, s := range f.sleeps {
		if s == d {
			return true
		}
	}
	return false
}

var _ Sink = (*fakeSink)(nil)
