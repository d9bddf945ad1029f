// config.go - Handles configuration for the project

package config

import (
	"os"
	"strconv"
)

type Config struct { // Config struct holds all configuration values
	Port       string // Port the HTTP server listens on
	DBPath     string // Path to the SQLite database file
	JWTSecret  string // Secret key for JWT authentication
	Env        string // "development" or "production" (controls stack traces in 500s)
	DBMaxConns int    // Max open connections in the database pool
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		Port:       getEnv("PORT", "3000"),
		DBPath:     getEnv("DB_PATH", "jobportal.db"),
		JWTSecret:  getEnv("JWT_SECRET", "supersecret"),
		Env:        getEnv("APP_ENV", "production"),
		DBMaxConns: getEnvInt("DB_MAX_CONNS", 10),
	}
}

// Development reports whether the server runs in development mode.
func (c *Config) Development() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
