// Package llm provides chat-completion clients for the supported hosted
// providers and selects one at startup from environment credentials.
package llm

import (
	"context"
)

// Client sends a single chat-style prompt to a hosted model and returns
// the completion text. No streaming, no multi-turn history.
type Client interface {
	Name() string
	Model() string
	Complete(ctx context.Context, prompt string) (string, error)
}
