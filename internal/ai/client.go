package ai

import (
	"context"
	"errors"
)

// Message is one entry of a chat-style request to the language-model backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ErrBackendUnreachable wraps connectivity failures (connection refused,
// DNS, timeouts) so callers can log "is the model server running?" hints
// separately from malformed-response failures. Both collapse to the same
// fallback result in the analyzer.
var ErrBackendUnreachable = errors.New("ai backend unreachable")

// Client is the interface for language-model backends. Implementations issue
// exactly one request per call; retry budgets belong to the caller.
type Client interface {
	//Chat sends a message list and returns the raw completion text
	Chat(ctx context.Context, messages []Message) (string, error)
}
