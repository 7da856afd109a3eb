// Package config loads settings from the environment, with an optional
// .env file for development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the binary reads from the environment.
type Config struct {
	// User identifies whose document the session operates on.
	User string `env:"GOALPOST_USER"`

	// DB selects the store: a postgres:// URL, a *.json path, or a
	// SQLite file path. Empty means the default SQLite location.
	DB string `env:"GOALPOST_DB"`

	// SaveDebounceMS is the autosave debounce in milliseconds.
	SaveDebounceMS int `env:"GOALPOST_SAVE_DEBOUNCE_MS" envDefault:"500"`
}

// Load reads a .env file when present, then parses the environment.
func Load() (Config, error) {
	// Missing .env is the normal case outside development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SaveDebounce returns the debounce interval as a duration.
func (c Config) SaveDebounce() time.Duration {
	return time.Duration(c.SaveDebounceMS) * time.Millisecond
}

// DBPath resolves the store location, falling back to the default
// SQLite database under the user's config directory.
func (c Config) DBPath() (string, error) {
	if c.DB != "" {
		return c.DB, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "goalpost", "goalpost.db"), nil
}
