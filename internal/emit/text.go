package emit

import "context"

// DefaultText writes a short plain-text reply with no components at all,
// for messages that match no pattern keyword.
func DefaultText(ctx context.Context, sink Sink) error {
	return sink.Text(ctx, "I'm not sure which view you want. Try asking for a card, table, or chart.")
}
