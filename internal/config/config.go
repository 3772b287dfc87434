// Package config provides environment-driven configuration for the
// career advisor server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jsexpertdev/ostad-ai-agent/internal/classifier"
)

// Config holds server configuration. All values come from the
// environment (a .env file is loaded at startup when present); missing
// values use defaults.
type Config struct {
	// Port is the HTTP listen port (PORT, default 8080).
	Port int
	// GeminiAPIKey enables the AI classification strategy
	// (GEMINI_API_KEY). Empty means fallback-only classification —
	// not an error.
	GeminiAPIKey string
	// ClassifierModel overrides the lite-tier model name
	// (CAREERMATE_MODEL).
	ClassifierModel string
	// ClassifierTimeout bounds a single AI classification attempt
	// (CLASSIFIER_TIMEOUT, e.g. "10s").
	ClassifierTimeout time.Duration
}

// FromEnv builds a Config from the process environment.
func FromEnv() Config {
	return Config{
		Port:              getEnvInt("PORT", 8080),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		ClassifierModel:   os.Getenv("CAREERMATE_MODEL"),
		ClassifierTimeout: getEnvDuration("CLASSIFIER_TIMEOUT", classifier.DefaultTimeout),
	}
}

// Validate checks that the configuration has usable values.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}
	if c.ClassifierTimeout <= 0 {
		return fmt.Errorf("config error: classifier timeout must be positive")
	}
	return nil
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
