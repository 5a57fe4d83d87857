package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port           string
	Env            string
	DatabasePath   string
	SessionSecret  string
	SessionExpiry  time.Duration
	RememberExpiry time.Duration
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabasePath:   getEnv("DATABASE_PATH", "shop.db"),
		SessionSecret:  getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
		SessionExpiry:  24 * time.Hour,
		RememberExpiry: 30 * 24 * time.Hour,
	}

	if cfg.Env == "production" && cfg.SessionSecret == "dev-secret-change-in-production" {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
