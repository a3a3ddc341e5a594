// Package config loads process configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings the server needs at startup.
type Config struct {
	Port   string
	DBPath string
	Env    string
}

// Load reads .env when present, then the environment, applying
// defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", slog.Any("error", err))
	}

	return Config{
		Port:   getenv("PORT", "8080"),
		DBPath: getenv("DB_PATH", "showshelf.db"),
		Env:    getenv("ENV", "development"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
