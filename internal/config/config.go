package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// app config; provider selection, session lifecycle and the sweep job
type Config struct {
	Provider       string
	Port           string
	SessionTimeout time.Duration
	SweepEnabled   bool
	SweepSchedule  string
	ArchiveEnabled bool
}

// loads configuration from environment variables, reading a local .env
// file first when present
func LoadConfig() (*Config, error) {
	// missing .env is fine, env vars may be set directly
	_ = godotenv.Load()

	config := &Config{
		Provider:       getEnvOrDefault("AI_PROVIDER", "gemini"),
		Port:           getEnvOrDefault("PORT", "8080"),
		SessionTimeout: time.Duration(getEnvInt("SESSION_TIMEOUT", 3600)) * time.Second,
		SweepEnabled:   getEnvOrDefault("SESSION_SWEEP_ENABLED", "true") == "true",
		SweepSchedule:  getEnvOrDefault("SESSION_SWEEP_SCHEDULE", "*/10 * * * *"),
		ArchiveEnabled: getEnvOrDefault("ARCHIVE_ENABLED", "false") == "true",
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.SessionTimeout <= 0 {
		return errors.New("SESSION_TIMEOUT must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
