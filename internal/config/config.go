package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	GristBaseURL    string
	GristAPIKey     string
	Port            int
	CacheTTL        time.Duration
	GristTimeout    time.Duration
	LogLevel        string
	CORSOrigins     []string
	RateLimitWindow time.Duration
}

// FromEnv reads the configuration from the process environment. The Grist
// base URL and API key are required; everything else has a default.
func FromEnv() (*Config, error) {
	cfg := &Config{
		GristBaseURL:    strings.TrimSpace(os.Getenv("GRIST_BASE_URL")),
		GristAPIKey:     strings.TrimSpace(os.Getenv("GRIST_API_KEY")),
		Port:            envInt("PORT", 8080),
		CacheTTL:        time.Duration(envInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		GristTimeout:    time.Duration(envInt("GRIST_TIMEOUT_SECONDS", 10)) * time.Second,
		LogLevel:        envString("LOG_LEVEL", "info"),
		RateLimitWindow: time.Duration(envInt("RATE_LIMIT_WINDOW_MS", 0)) * time.Millisecond,
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}
	if cfg.GristBaseURL == "" {
		return nil, fmt.Errorf("GRIST_BASE_URL is required")
	}
	if cfg.GristAPIKey == "" {
		return nil, fmt.Errorf("GRIST_API_KEY is required")
	}
	return cfg, nil
}

func envString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return fallback
}
