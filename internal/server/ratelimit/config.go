package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// EndpointConfig is the rate limit for one endpoint. Paths ending in "/"
// match by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// LoadConfig reads rate limiting settings from the environment.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits. Uploads run
// document extraction and exports run a headless browser, so both are
// limited far below ordinary reads and writes.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Extraction uploads: 10 per minute per client.
		{Path: "/assets/upload", Method: "POST", Limit: 10, Window: time.Minute, Burst: 10},

		// PDF export spawns Chrome.
		{Path: "/forms/", Method: "GET", Limit: 600, Window: time.Minute, Burst: 60},
		{Path: "/export/", Method: "GET", Limit: 20, Window: time.Hour, Burst: 5},

		// Write operations.
		{Path: "/projects", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/projects/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/projects/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/forms/", Method: "PUT", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/forms/", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/forms/", Method: "DELETE", Limit: 300, Window: time.Minute, Burst: 30},
	}
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
