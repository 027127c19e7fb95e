package util

import (
	"os"
	"strconv"
	"time"

	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env into the process environment. Variables already set win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn("Invalid integer in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return parsed
}

func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetEnvDuration parses values like "30s" or "5m".
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn("Invalid duration in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return parsed
}
