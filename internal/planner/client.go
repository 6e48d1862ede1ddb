package planner

import "context"

// Client is the remote chat-completion collaborator contract: given a
// prompt, return the model's raw text response. Everything else (auth,
// region, model id, transport) lives in the concrete implementation and
// is out of scope for this package.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
