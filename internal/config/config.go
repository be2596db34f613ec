// Package config provides configuration loading and validation for the API server.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Environment names accepted in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds all process configuration read from the environment.
// The backend service-account credentials are absent: they are
// read by the backend initializer at call time.
type Config struct {
	Env         string `envconfig:"APP_ENV" default:"development"`
	Port        int    `envconfig:"APP_PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DebugEnv    string `envconfig:"DEBUG_ENV"` // any non-empty value enables /debug-env in production
	Generation  GenerationConfig
	Session     SessionConfig
}

// GenerationConfig configures the generative-text provider.
type GenerationConfig struct {
	APIKey      string        `envconfig:"GOOGLE_GENERATIVE_AI_API_KEY"`
	Model       string        `envconfig:"GENERATION_MODEL" default:"gemini-2.0-flash-001"`
	Timeout     time.Duration `envconfig:"GENERATION_TIMEOUT" default:"0s"` // 0 disables the timeout
	Temperature *float32      `envconfig:"GENERATION_TEMPERATURE"`          // nil keeps the provider default
}

// SessionConfig configures session cookie lookup.
type SessionConfig struct {
	CookieName string        `envconfig:"SESSION_COOKIE" default:"session"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"168h"` // 7 days
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required-for-command values (DATABASE_URL, API key) are checked by
// RequireDatabase and RequireGeneration so that each command only demands
// what it uses.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		EnvDevelopment: true,
		EnvStaging:     true,
		EnvProduction:  true,
		EnvTest:        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.Generation.Model == "" {
		return fmt.Errorf("GENERATION_MODEL cannot be empty")
	}
	if t := c.Generation.Temperature; t != nil && (*t < 0 || *t > 2) {
		return fmt.Errorf("GENERATION_TEMPERATURE must be between 0 and 2")
	}
	if c.Generation.Timeout < 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be non-negative")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE cannot be empty")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

// RequireDatabase returns an error when DATABASE_URL is not set.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return nil
}

// RequireGeneration returns an error when the generative-text API key is not set.
func (c *Config) RequireGeneration() error {
	if c.Generation.APIKey == "" {
		return fmt.Errorf("GOOGLE_GENERATIVE_AI_API_KEY environment variable is required")
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// DebugEnabled reports whether DEBUG_ENV is set to any non-empty value.
func (c *Config) DebugEnabled() bool {
	return c.DebugEnv != ""
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, DebugEnv=%t, Generation.Model=%s, Generation.Timeout=%s, Session.CookieName=%s, Session.TTL=%s}",
		c.Env, c.Port, c.DebugEnabled(), c.Generation.Model, c.Generation.Timeout, c.Session.CookieName, c.Session.TTL)
}
