package qa

import (
	"context"
	"errors"
)

// Client abstracts the external question-answering provider. Answer returns
// a generated answer for the question given the full document text as context.
type Client interface {
	Answer(ctx context.Context, question string, contextText string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("qa client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Answer returns ErrNotConfigured.
func (PlaceholderClient) Answer(ctx context.Context, question string, contextText string) (string, error) {
	_ = ctx
	_ = question
	_ = contextText
	return "", ErrNotConfigured
}
