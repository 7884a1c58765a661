package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/dcschmid/music-trivia-generator/internal/config"
	"github.com/dcschmid/music-trivia-generator/internal/generation"
)

// defaultTemperature keeps answers factual while leaving the model room
// to vary question phrasing between albums.
const defaultTemperature float32 = 0.7

// Generator implements generation.TextGenerator using the Gemini API.
type Generator struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// NewGenerator creates a Generator from the generation configuration.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.GenerationConfig) (*Generator, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger,
		client: client,
		model:  cfg.Model,
	}, nil
}

// Generate sends the prompt to the model and returns its raw text answer.
// The caller validates the answer; transport problems and empty answers
// are the only failures reported here.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr(defaultTemperature),
		})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	g.logger.Debug("gemini response received",
		"model", g.model,
		"response_bytes", len(text))

	return text, nil
}
