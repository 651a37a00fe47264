// path: config/config.go
package config

import (
	"os"
	"time"
)

// Config holds the process configuration. Mongo connection settings are
// resolved separately by the database package.
type Config struct {
	Port           string
	UploadDir      string
	ClassifierURL  string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "5000"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		ClassifierURL:  os.Getenv("CLASSIFIER_URL"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-key"),
		TokenTTL:       parseDuration(getEnv("TOKEN_TTL", "24h"), 24*time.Hour),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return defaultValue
}
