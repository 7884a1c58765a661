package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// TRIVIA_ prefix with underscores for nesting (TRIVIA_GENERATION_MODEL)
// and take precedence over file values.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TRIVIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No file is fine; environment variables and defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.input_dir", "data/input")
	v.SetDefault("app.output_dir", "data/output")
	v.SetDefault("app.finished_dir", "data/finished")
	v.SetDefault("app.missing_cover_log", "data/missing_covers.log")
	v.SetDefault("app.languages", []string{"en"})
	v.SetDefault("app.log_level", "info")

	v.SetDefault("generation.gemini_api_key", "")
	v.SetDefault("generation.model", "gemini-2.0-flash")
	v.SetDefault("generation.max_attempts", 3)
	v.SetDefault("generation.base_delay", 2*time.Second)
	v.SetDefault("generation.max_delay", 30*time.Second)

	v.SetDefault("coverart.lastfm_api_key", "")
	v.SetDefault("coverart.spotify_client_id", "")
	v.SetDefault("coverart.spotify_client_secret", "")
	v.SetDefault("coverart.discogs_token", "")
	v.SetDefault("coverart.audiodb_api_key", "")
	v.SetDefault("coverart.timeout", 10*time.Second)
}
