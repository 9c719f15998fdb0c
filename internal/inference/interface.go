// Package inference defines the provider-neutral contract for text generation.
package inference

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// ErrUnavailable reports that the generation provider could not be reached or
// returned a non-success status. Callers may retry the whole request; the
// client itself never retries because repeated calls cost money and the output
// is non-deterministic.
var ErrUnavailable = errors.New("generation provider unavailable")

// Client sends one completion request to a text-generation provider and
// returns the raw response text.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest holds the prompt and sampling parameters for a single call.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}
