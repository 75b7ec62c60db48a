package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Environment string `env:"PROMPTN8_ENV" envDefault:"development"`
	ServerPort  int    `env:"PROMPTN8_PORT" envDefault:"8080"`
	DBPath      string `env:"PROMPTN8_DB_PATH" envDefault:"data/promptn8.db"`
	SchemaPath  string `env:"PROMPTN8_SCHEMA_PATH" envDefault:"scripts/schema.sql"`

	// Provider credentials and models
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	GoogleAPIKey     string `env:"GOOGLE_API_KEY"`
	OpenAIImageModel string `env:"PROMPTN8_OPENAI_IMAGE_MODEL" envDefault:"gpt-image-1.5"`
	GeminiImageModel string `env:"PROMPTN8_GEMINI_IMAGE_MODEL" envDefault:"gemini-3-pro-image-preview"`
	ReviewModel      string `env:"PROMPTN8_REVIEW_MODEL" envDefault:"gpt-5.2"`

	// Auth settings
	SessionTTL time.Duration `env:"PROMPTN8_SESSION_TTL" envDefault:"720h"`
	OTPTTL     time.Duration `env:"PROMPTN8_OTP_TTL" envDefault:"5m"`

	// Proxy endpoint rate limiting (requests per second per client)
	ProxyRateLimit float64 `env:"PROMPTN8_PROXY_RATE" envDefault:"0.5"`
	ProxyRateBurst int     `env:"PROMPTN8_PROXY_BURST" envDefault:"3"`

	// Extra CORS origins beyond the built-in allowlist
	ExtraOrigins []string `env:"PROMPTN8_CORS_ORIGINS" envSeparator:","`

	// Background cleanup of expired sessions and OTP codes
	CleanupInterval time.Duration `env:"PROMPTN8_CLEANUP_INTERVAL" envDefault:"10m"`
}

// Load reads configuration from the environment, with an optional .env
// file for development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
