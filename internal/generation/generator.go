package generation

import "context"

// TextGenerator defines the boundary to an external text-generation
// provider. Implementations send one prompt and return the raw response
// text; they do not retry and do not interpret the payload.
type TextGenerator interface {
	// Generate sends the prompt to the provider and returns the raw
	// response text. Transport failures are returned as errors; the caller
	// decides whether to retry.
	Generate(ctx context.Context, prompt string) (string, error)
}
