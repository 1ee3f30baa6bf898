// Package llm provides the text-generation client.
package llm

import (
	"fmt"
	"log/slog"
)

// LevelTrace is below Debug, used for wire-level payload logging.
const LevelTrace = slog.Level(-8)

// Message represents a chat message sent to the generation API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest holds everything for one generation call: the
// system/user message pair plus fixed sampling parameters. Every call is
// a fresh request; the client performs no caching and no retries.
type CompletionRequest struct {
	System      string
	User        string
	Model       string
	Temperature float64
	MaxTokens   int
}

// GenerationError reports a failed call to the generation service.
// Transport errors, auth failures, rate limits, and malformed responses
// all map here so callers can tell "service failed" apart from
// "generation succeeded but produced unusable content".
type GenerationError struct {
	// Cause is the human-readable underlying failure.
	Cause string
	// Err is the wrapped source error, when one exists.
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %s", e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// generationErr wraps err as a *GenerationError carrying its message.
func generationErr(err error) *GenerationError {
	return &GenerationError{Cause: err.Error(), Err: err}
}
