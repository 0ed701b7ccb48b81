package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/vibecod3rs/vibe"
)

// config is read from the environment; flags in run() take precedence.
type config struct {
	APIKey         string        `env:"API_KEY"`
	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	Model          string        `env:"VIBE_MODEL"`
	LogFile        string        `env:"VIBE_LOG_FILE"`
	LogLevel       string        `env:"VIBE_LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"VIBE_REQUEST_TIMEOUT" envDefault:"0s"`
	TracksFile     string        `env:"VIBE_TRACKS_FILE"`
}

// loadConfig parses environ, a map of environment variables.
func loadConfig(environ map[string]string) (config, error) {
	cfg := config{Model: vibe.DefaultModel}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = vibe.DefaultModel
	}
	if cfg.RequestTimeout < 0 {
		return config{}, fmt.Errorf("VIBE_REQUEST_TIMEOUT must not be negative: %w", vibe.ErrValidation)
	}
	return cfg, nil
}

// apiKey resolves the credential: explicit flag, then API_KEY, then
// GEMINI_API_KEY.
func (c config) apiKey(flagKey string) string {
	switch {
	case flagKey != "":
		return flagKey
	case c.APIKey != "":
		return c.APIKey
	default:
		return c.GeminiAPIKey
	}
}
