package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dcschmid/music-trivia-generator/internal/domain"
)

// Orchestrator dependency errors
var (
	ErrNilTextGenerator = errors.New("text generator cannot be nil")
	ErrNilPromptBuilder = errors.New("prompt builder cannot be nil")
	ErrNilSelector      = errors.New("category selector cannot be nil")
	ErrNilTracker       = errors.New("coverage tracker cannot be nil")
	ErrNilLogger        = errors.New("logger cannot be nil")
)

// SleepFunc waits for the given duration or until the context is done.
// Tests inject a recording implementation to observe backoff without
// real delays.
type SleepFunc func(ctx context.Context, d time.Duration) error

// sleepWithContext is the production SleepFunc.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Result carries a successfully generated question set together with the
// attempt bookkeeping the pipeline records.
type Result struct {
	Set      *domain.QuestionSet
	Attempts int
}

// Retries reports how many attempts beyond the first were needed.
func (r Result) Retries() int {
	if r.Attempts <= 1 {
		return 0
	}
	return r.Attempts - 1
}

// Orchestrator drives the generation of one album's question set:
// select categories, build the prompt, call the provider, validate, and
// retry with exponential backoff on any failure. Per attempt it moves
// through requesting and validating; the terminal states are success or,
// after maxAttempts failures, an error wrapping ErrExhaustedRetries.
type Orchestrator struct {
	boundary TextGenerator
	prompts  *PromptBuilder
	selector *CategorySelector
	tracker  *CoverageTracker
	logger   *slog.Logger

	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
	sleep       SleepFunc
}

// OrchestratorConfig carries the retry policy of an Orchestrator.
type OrchestratorConfig struct {
	// MaxAttempts is the total number of provider calls per album,
	// including the first one.
	MaxAttempts int

	// BaseDelay is the wait before the second attempt; it doubles per
	// retry up to MaxDelay.
	BaseDelay time.Duration

	// MaxDelay caps the backoff.
	MaxDelay time.Duration
}

// NewOrchestrator creates an Orchestrator with the given dependencies.
func NewOrchestrator(
	boundary TextGenerator,
	prompts *PromptBuilder,
	selector *CategorySelector,
	tracker *CoverageTracker,
	logger *slog.Logger,
	cfg OrchestratorConfig,
) (*Orchestrator, error) {
	if boundary == nil {
		return nil, ErrNilTextGenerator
	}
	if prompts == nil {
		return nil, ErrNilPromptBuilder
	}
	if selector == nil {
		return nil, ErrNilSelector
	}
	if tracker == nil {
		return nil, ErrNilTracker
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("%w: max attempts must be at least 1", ErrInvalidConfig)
	}
	if cfg.BaseDelay <= 0 {
		return nil, fmt.Errorf("%w: base delay must be positive", ErrInvalidConfig)
	}
	if cfg.MaxDelay < cfg.BaseDelay {
		return nil, fmt.Errorf("%w: max delay must not be below base delay", ErrInvalidConfig)
	}

	return &Orchestrator{
		boundary:    boundary,
		prompts:     prompts,
		selector:    selector,
		tracker:     tracker,
		logger:      logger,
		maxAttempts: cfg.MaxAttempts,
		baseDelay:   cfg.BaseDelay,
		maxDelay:    cfg.MaxDelay,
		sleep:       sleepWithContext,
	}, nil
}

// WithSleep replaces the backoff sleep. Intended for tests.
func (o *Orchestrator) WithSleep(sleep SleepFunc) *Orchestrator {
	o.sleep = sleep
	return o
}

// Generate produces the validated question set for one album.
//
// Categories are selected once per album so that coverage tracking counts
// each album exactly once per tier; the same categories steer every retry.
// Any transport or validation failure is retryable: the provider may
// produce a well-formed answer on the next attempt. Once validation
// succeeds the set is final: schema validity is the trust boundary, not
// factual accuracy.
func (o *Orchestrator) Generate(
	ctx context.Context,
	album domain.Album,
	language string,
) (Result, error) {
	categories := make(map[domain.Difficulty][]domain.Category, len(domain.Difficulties()))
	for _, d := range domain.Difficulties() {
		categories[d] = o.selector.Select(d, domain.QuestionsPerTier, o.tracker)
	}

	prompt, err := o.prompts.Build(album, language, categories)
	if err != nil {
		return Result{}, err
	}

	logger := o.logger.With("artist", album.Artist, "album", album.Title, "language", language)

	var lastErr error
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("generation cancelled: %w", err)
		}

		logger.Info("requesting question set",
			"attempt", attempt,
			"max_attempts", o.maxAttempts)

		raw, err := o.boundary.Generate(ctx, prompt)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrTransport, err)
		} else {
			set, validateErr := ValidateResponse(raw)
			if validateErr == nil {
				logger.Info("question set validated",
					"attempt", attempt,
					"retries", attempt-1)
				return Result{Set: set, Attempts: attempt}, nil
			}
			lastErr = validateErr
		}

		logger.Warn("generation attempt failed",
			"attempt", attempt,
			"error", lastErr)

		if attempt == o.maxAttempts {
			break
		}

		delay := o.backoff(attempt)
		logger.Info("retrying after backoff",
			"attempt", attempt,
			"delay", delay)

		if err := o.sleep(ctx, delay); err != nil {
			return Result{}, fmt.Errorf("generation cancelled during backoff: %w", err)
		}
	}

	logger.Error("generation failed",
		"attempts", o.maxAttempts,
		"error", lastErr)

	return Result{Attempts: o.maxAttempts}, fmt.Errorf("%w after %d attempts: %w",
		ErrExhaustedRetries, o.maxAttempts, lastErr)
}

// backoff computes the delay before the attempt following the given one:
// the base delay doubled per completed attempt, capped at maxDelay.
func (o *Orchestrator) backoff(attempt int) time.Duration {
	delay := o.baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= o.maxDelay {
			return o.maxDelay
		}
	}
	if delay > o.maxDelay {
		return o.maxDelay
	}
	return delay
}
