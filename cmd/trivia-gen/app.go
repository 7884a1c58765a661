package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"path/filepath"
	"time"

	"github.com/dcschmid/music-trivia-generator/internal/config"
	"github.com/dcschmid/music-trivia-generator/internal/coverart"
	"github.com/dcschmid/music-trivia-generator/internal/domain"
	"github.com/dcschmid/music-trivia-generator/internal/generation"
	"github.com/dcschmid/music-trivia-generator/internal/ingest"
	"github.com/dcschmid/music-trivia-generator/internal/pipeline"
	"github.com/dcschmid/music-trivia-generator/internal/platform/gemini"
	"github.com/dcschmid/music-trivia-generator/internal/platform/logger"
	"github.com/dcschmid/music-trivia-generator/internal/store"
)

// application bundles the wired components of one run.
type application struct {
	cfg      *config.Config
	logger   *slog.Logger
	pipeline *pipeline.AlbumPipeline
}

// initializeApp loads configuration and wires the application components.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.App)

	appLogger.Info("configuration loaded",
		"input_dir", cfg.App.InputDir,
		"output_dir", cfg.App.OutputDir,
		"languages", cfg.App.Languages,
		"model", cfg.Generation.Model,
		"max_attempts", cfg.Generation.MaxAttempts)

	boundary, err := gemini.NewGenerator(ctx, appLogger, cfg.Generation)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	prompts, err := generation.NewPromptBuilder("")
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt template: %w", err)
	}

	orchestrator, err := generation.NewOrchestrator(
		boundary,
		prompts,
		generation.NewCategorySelector(rand.New(rand.NewSource(time.Now().UnixNano()))),
		generation.NewCoverageTracker(),
		appLogger,
		generation.OrchestratorConfig{
			MaxAttempts: cfg.Generation.MaxAttempts,
			BaseDelay:   cfg.Generation.BaseDelay,
			MaxDelay:    cfg.Generation.MaxDelay,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}

	resolver, err := coverart.NewResolver(appLogger, buildCoverProviders(ctx, appLogger, cfg.CoverArt)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cover art resolver: %w", err)
	}

	missing := store.NewMissingCoverLog(cfg.App.MissingCoverLog)

	albumPipeline, err := pipeline.NewAlbumPipeline(orchestrator, resolver, missing, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	return &application{
		cfg:      cfg,
		logger:   appLogger,
		pipeline: albumPipeline,
	}, nil
}

// buildCoverProviders assembles the cover art chain in priority order.
// Providers without credentials are left out rather than failing startup;
// an empty chain simply means every album lands in the missing-cover log.
func buildCoverProviders(ctx context.Context, log *slog.Logger, cfg config.CoverArtConfig) []coverart.Provider {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	var providers []coverart.Provider
	if cfg.LastFMAPIKey != "" {
		providers = append(providers, coverart.NewLastFMProvider(httpClient, "", cfg.LastFMAPIKey))
	}
	if cfg.SpotifyClientID != "" && cfg.SpotifyClientSecret != "" {
		providers = append(providers, coverart.NewSpotifyProvider(ctx, cfg.SpotifyClientID, cfg.SpotifyClientSecret, "", ""))
	}
	if cfg.DiscogsToken != "" {
		providers = append(providers, coverart.NewDiscogsProvider(httpClient, "", cfg.DiscogsToken, "music-trivia-generator/1.0"))
	}
	if cfg.AudioDBAPIKey != "" {
		providers = append(providers, coverart.NewAudioDBProvider(httpClient, "", cfg.AudioDBAPIKey))
	}

	if len(providers) == 0 {
		log.Warn("no cover art providers configured, all albums will be logged as missing covers")
	}

	return providers
}

// Run processes every input file for every configured language. A file is
// moved to the finished directory only after all its languages completed;
// cancellation stops cleanly between albums, leaving the file in place so
// the next run resumes where this one stopped.
func (a *application) Run(ctx context.Context) error {
	files, err := ingest.ListInputFiles(a.cfg.App.InputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		a.logger.Info("no input files found", "input_dir", a.cfg.App.InputDir)
		return nil
	}

	for _, file := range files {
		if err := a.processFile(ctx, file); err != nil {
			return err
		}
	}

	return nil
}

func (a *application) processFile(ctx context.Context, file string) error {
	genre := ingest.GenreFromFilename(file)
	log := a.logger.With("file", filepath.Base(file), "genre", genre)

	albums, err := ingest.ReadAlbumFile(file, a.logger)
	if err != nil {
		return err
	}
	log.Info("processing input file", "albums", len(albums))

	for _, language := range a.cfg.App.Languages {
		if err := a.processLanguage(ctx, genre, language, albums); err != nil {
			return err
		}
	}

	if err := ingest.MoveToFinished(file, a.cfg.App.FinishedDir); err != nil {
		return err
	}
	log.Info("input file finished")

	return nil
}

func (a *application) processLanguage(
	ctx context.Context,
	genre, language string,
	albums []domain.Album,
) error {
	outPath := filepath.Join(a.cfg.App.OutputDir, language, genre+".json")
	albumStore, err := store.OpenAlbumStore(outPath)
	if err != nil {
		return err
	}

	log := a.logger.With("genre", genre, "language", language)

	var processed, skipped, failed int
	for _, album := range albums {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run cancelled: %w", err)
		}

		if albumStore.Contains(album) {
			skipped++
			continue
		}

		record, err := a.pipeline.Process(ctx, album, language)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("run cancelled: %w", err)
			}
			log.Error("album skipped after pipeline error",
				"artist", album.Artist,
				"album", album.Title,
				"error", err)
			continue
		}

		if err := albumStore.Append(record); err != nil {
			return err
		}

		if record.Succeeded() {
			processed++
		} else {
			failed++
		}
	}

	log.Info("language finished",
		"processed", processed,
		"skipped", skipped,
		"failed", failed,
		"output", outPath)

	return nil
}
