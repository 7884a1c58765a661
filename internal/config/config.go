package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
	CoverArt   CoverArtConfig   `mapstructure:"coverart"`
}

// AppConfig contains the file-handling and logging settings.
type AppConfig struct {
	// InputDir holds the album list files to process.
	InputDir string `mapstructure:"input_dir" validate:"required"`

	// OutputDir receives one JSON file per genre and language.
	OutputDir string `mapstructure:"output_dir" validate:"required"`

	// FinishedDir receives fully processed input files.
	FinishedDir string `mapstructure:"finished_dir" validate:"required"`

	// MissingCoverLog is the append-only log of unresolved covers.
	MissingCoverLog string `mapstructure:"missing_cover_log" validate:"required"`

	// Languages lists the languages to generate question sets in.
	Languages []string `mapstructure:"languages" validate:"required,min=1,dive,required"`

	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// GenerationConfig contains the text-provider settings and retry policy.
type GenerationConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	Model        string `mapstructure:"model" validate:"required"`

	// MaxAttempts is the total number of provider calls per album.
	MaxAttempts int           `mapstructure:"max_attempts" validate:"required,gte=1,lte=10"`
	BaseDelay   time.Duration `mapstructure:"base_delay" validate:"required,gt=0"`
	MaxDelay    time.Duration `mapstructure:"max_delay" validate:"required,gtefield=BaseDelay"`
}

// CoverArtConfig carries the credentials of the cover providers. A
// provider with empty credentials is skipped when the chain is built, so
// none of these fields is required on its own.
type CoverArtConfig struct {
	LastFMAPIKey        string        `mapstructure:"lastfm_api_key"`
	SpotifyClientID     string        `mapstructure:"spotify_client_id"`
	SpotifyClientSecret string        `mapstructure:"spotify_client_secret"`
	DiscogsToken        string        `mapstructure:"discogs_token"`
	AudioDBAPIKey       string        `mapstructure:"audiodb_api_key"`
	Timeout             time.Duration `mapstructure:"timeout" validate:"required,gt=0"`
}
