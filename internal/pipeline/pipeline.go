package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dcschmid/music-trivia-generator/internal/coverart"
	"github.com/dcschmid/music-trivia-generator/internal/domain"
	"github.com/dcschmid/music-trivia-generator/internal/generation"
)

// Pipeline dependency errors
var (
	ErrNilOrchestrator = errors.New("orchestrator cannot be nil")
	ErrNilResolver     = errors.New("cover art resolver cannot be nil")
	ErrNilMissingLog   = errors.New("missing-cover log cannot be nil")
	ErrNilLogger       = errors.New("logger cannot be nil")
)

// MissingLogger records albums without resolvable cover art.
type MissingLogger interface {
	Append(a domain.Album) error
}

// AlbumPipeline turns one album into one AlbumRecord. Generation and
// cover-art resolution are independent: a failed cover lookup never
// blocks a question set, and exhausted generation still produces a
// record carrying the failure marker so the album counts as processed.
type AlbumPipeline struct {
	orchestrator *generation.Orchestrator
	resolver     *coverart.Resolver
	missing      MissingLogger
	logger       *slog.Logger
}

// NewAlbumPipeline creates an AlbumPipeline with the given dependencies.
func NewAlbumPipeline(
	orchestrator *generation.Orchestrator,
	resolver *coverart.Resolver,
	missing MissingLogger,
	logger *slog.Logger,
) (*AlbumPipeline, error) {
	if orchestrator == nil {
		return nil, ErrNilOrchestrator
	}
	if resolver == nil {
		return nil, ErrNilResolver
	}
	if missing == nil {
		return nil, ErrNilMissingLog
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &AlbumPipeline{
		orchestrator: orchestrator,
		resolver:     resolver,
		missing:      missing,
		logger:       logger,
	}, nil
}

// Process runs one album through generation and cover-art resolution and
// always returns exactly one record. The error return is reserved for
// cancellation and bookkeeping failures; exhausted generation is not an
// error here, it becomes a failure record.
func (p *AlbumPipeline) Process(
	ctx context.Context,
	album domain.Album,
	language string,
) (domain.AlbumRecord, error) {
	if err := album.Validate(); err != nil {
		return domain.AlbumRecord{}, fmt.Errorf("invalid album: %w", err)
	}

	logger := p.logger.With(
		"run_id", uuid.NewString(),
		"artist", album.Artist,
		"album", album.Title,
		"year", album.Year,
		"language", language,
	)

	record := domain.AlbumRecord{Album: album}

	cover := p.resolver.Resolve(ctx, album.Artist, album.Title)
	if cover.Found {
		record.CoverSrc = cover.URL
	} else {
		if err := p.missing.Append(album); err != nil {
			return domain.AlbumRecord{}, fmt.Errorf("record missing cover: %w", err)
		}
		logger.Info("album recorded in missing-cover log")
	}

	result, err := p.orchestrator.Generate(ctx, album, language)
	switch {
	case err == nil:
		record.Questions = result.Set
		logger.Info("album processed",
			"attempts", result.Attempts,
			"cover_found", cover.Found)
	case errors.Is(err, generation.ErrExhaustedRetries):
		record.Failure = &domain.GenerationFailure{
			Error:               err.Error(),
			FailedAfterAttempts: result.Attempts,
		}
		logger.Warn("album recorded as generation failure",
			"attempts", result.Attempts)
	default:
		return domain.AlbumRecord{}, fmt.Errorf("process album: %w", err)
	}

	return record, nil
}
