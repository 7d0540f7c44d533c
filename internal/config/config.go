package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Data store
	DataFile string

	// Sessions
	SessionTTL time.Duration

	// AI tutor rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSOrigins:        strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:                getEnv("ENV", "development"),
		DataFile:           getEnv("DATA_FILE", "data.json"),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_MINUTES", 24*60)) * time.Minute,
		RateLimitPerMinute: getEnvInt("AI_RATE_LIMIT_PER_MINUTE", 30),
		RateLimitBurst:     getEnvInt("AI_RATE_LIMIT_BURST", 5),
	}

	return cfg, nil
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable with a fallback default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
