package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcschmid/music-trivia-generator/internal/config"
)

func testCoverArtConfig() config.CoverArtConfig {
	return config.CoverArtConfig{Timeout: time.Second}
}

func TestBuildCoverProvidersOrder(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := testCoverArtConfig()
	cfg.LastFMAPIKey = "lfm"
	cfg.SpotifyClientID = "id"
	cfg.SpotifyClientSecret = "secret"
	cfg.DiscogsToken = "token"
	cfg.AudioDBAPIKey = "adb"

	providers := buildCoverProviders(context.Background(), log, cfg)

	require.Len(t, providers, 4)
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	assert.Equal(t, []string{"lastfm", "spotify", "discogs", "audiodb"}, names)
}

func TestBuildCoverProvidersSkipsUnconfigured(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := testCoverArtConfig()
	cfg.LastFMAPIKey = "lfm"
	// Spotify needs both credentials.
	cfg.SpotifyClientID = "id"

	providers := buildCoverProviders(context.Background(), log, cfg)

	require.Len(t, providers, 1)
	assert.Equal(t, "lastfm", providers[0].Name())
}

func TestBuildCoverProvidersEmptyChain(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	providers := buildCoverProviders(context.Background(), log, testCoverArtConfig())
	assert.Empty(t, providers)
}

func TestInitializeAppRequiresAPIKey(t *testing.T) {
	t.Setenv("TRIVIA_GENERATION_GEMINI_API_KEY", "")

	_, err := initializeApp(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
