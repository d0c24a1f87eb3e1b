package domain

import (
	"context"
	"errors"
)

// ModelGateway sends one prompt to a chat-completion model and returns the
// raw reply text. Implementations do not retry.
type ModelGateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyCompletion is returned when the provider answered without content.
var ErrEmptyCompletion = errors.New("model returned no content")

// ErrGatewayNotConfigured is returned when no credential is available.
var ErrGatewayNotConfigured = errors.New("model gateway credential is not configured")
