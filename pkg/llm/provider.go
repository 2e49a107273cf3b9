// Package llm defines the contract for the generative-text backend behind
// the assistant's free-form mode.
package llm

import (
	"context"
)

// Provider is the passthrough contract for any generative backend:
// one prompt in, one completion out. No retries, no streaming.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
