package llm

import "context"

// Client is the interface the generation pipeline depends on.
type Client interface {
	// Complete sends one completion request and returns the generated text.
	// Failures are returned as *GenerationError.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Ping checks whether the provider is reachable with the configured key.
	Ping(ctx context.Context) error
}
