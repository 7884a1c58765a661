package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when Generate is called with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrEmptyResponse is returned when the API answers without any text.
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrNilLogger is returned when the constructor receives a nil logger.
	ErrNilLogger = errors.New("logger cannot be nil")
)
