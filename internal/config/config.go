// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the API server.
type Config struct {
	Port                   string
	LogLevel               string
	LogFormat              string
	RateLimitMax           int
	RateLimitWindowSeconds int
}

// Load reads configuration from the environment. A local .env file is loaded
// first unless APP_ENV=production, where the platform injects everything.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		// a missing .env just means defaults
		_ = godotenv.Load()
	}

	return Config{
		Port:                   getEnv("PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "text"),
		RateLimitMax:           getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 900),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
