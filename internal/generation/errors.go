package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrTransport is returned when the text-generation provider is
	// unreachable or rate-limits the request.
	ErrTransport = errors.New("text generation provider unreachable")

	// ErrMalformedResponse is returned when the provider's response contains
	// no decodable JSON object.
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrSchemaViolation is returned when the response decodes but deviates
	// from the required question-set shape. Wrapped errors carry the
	// sub-reason and, for per-question failures, the offending tier and index.
	ErrSchemaViolation = errors.New("response violates question schema")

	// ErrExhaustedRetries is the terminal error after all generation
	// attempts for one album have failed. It wraps the last attempt's error.
	ErrExhaustedRetries = errors.New("exhausted generation attempts")

	// ErrInvalidConfig is returned when the generation configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generation configuration")
)
