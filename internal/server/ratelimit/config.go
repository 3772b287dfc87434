package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointRule represents rate limiting configuration for a specific
// endpoint. Paths ending with "/" are matched by prefix.
type EndpointRule struct {
	Path   string
	Method string
	Limit  int           // maximum requests per window
	Window time.Duration // time window
	Burst  int           // burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	EndpointRules   []EndpointRule
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	cfg := defaultConfig()
	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)

	// The chat endpoint triggers an outbound LLM call, so it carries a
	// much tighter limit than the static table reads.
	chatLimit := getEnvInt("RATE_LIMIT_CHAT_LIMIT", 30)
	chatWindow := getEnvDuration("RATE_LIMIT_CHAT_WINDOW", time.Minute)
	cfg.EndpointRules = []EndpointRule{
		{Path: "/api/chat", Method: "POST", Limit: chatLimit, Window: chatWindow, Burst: 5},
	}

	return cfg
}

// defaultConfig returns the built-in configuration used when no
// environment overrides are present.
func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		EndpointRules: []EndpointRule{
			{Path: "/api/chat", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		},
	}
}

// matchEndpoint matches a request path and method to an endpoint rule.
// The health check is always unlimited.
func matchEndpoint(path, method string, rules []EndpointRule) *EndpointRule {
	if path == "/health" && method == "GET" {
		return &EndpointRule{Limit: 0}
	}

	for i := range rules {
		rule := &rules[i]
		if rule.Path == path && rule.Method == method {
			return rule
		}
	}

	for i := range rules {
		rule := &rules[i]
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
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

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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
