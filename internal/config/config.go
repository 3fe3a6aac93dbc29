// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration, populated from environment
// variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Database
	DatabasePath string // Path to the SQLite file holding calendar definitions

	// Authentication
	AdminAPIKey string // API key required for calendar registration

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Load reads configuration from environment variables. In development it
// first loads from a .env file if one is present; in production env vars are
// set directly and the missing file is a no-op.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnvInt("PORT", 8080),
		Env:          getEnv("ENV", EnvDevelopment),
		DatabasePath: getEnv("DATABASE_PATH", "./data/polycal.db"),
		AdminAPIKey:  getEnv("ADMIN_API_KEY", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}

	// Registration is an admin operation; without a key it is open to anyone,
	// which we only tolerate during local development.
	if c.Env == EnvProduction && c.AdminAPIKey == "" {
		errs = append(errs, errors.New("ADMIN_API_KEY is required in production"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
