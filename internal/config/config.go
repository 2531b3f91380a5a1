// Package config provides configuration loading and validation for the
// server, plus the JWT and password-hashing settings used by the auth layer.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the server configuration, read from environment variables.
// A .env file, if present, is loaded by the CLI before this runs.
type Config struct {
	Port        int    // HTTP listen port
	DatabaseURL string // PostgreSQL connection URL
	APIKey      string // Gemini API key; empty triggers the template fallback
	RateLimit   int    // requests per minute per client; 0 disables limiting
}

// Load reads configuration from the environment. DATABASE_URL is required;
// everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		RateLimit:   60,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if limitStr := os.Getenv("RATE_LIMIT_PER_MINUTE"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %v", err)
		}
		cfg.RateLimit = limit
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT out of range: %d", c.Port)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config error: RATE_LIMIT_PER_MINUTE must be non-negative")
	}
	return nil
}
