package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env carries process-level settings read from the environment rather
// than from the scenario file. Command-line flags take precedence over
// these values.
type Env struct {
	LogLevel    string
	LogFormat   string
	OutputDir   string
	MaxParallel int
}

// LoadEnv reads process settings from the environment, after loading a
// .env file when one is present.
func LoadEnv() *Env {
	// Load .env file if it exists (ignore error when there is none)
	_ = godotenv.Load()

	return &Env{
		LogLevel:    getEnv("DCMSIM_LOG_LEVEL", "info"),
		LogFormat:   getEnv("DCMSIM_LOG_FORMAT", "text"),
		OutputDir:   getEnv("DCMSIM_OUTPUT_DIR", "results"),
		MaxParallel: getEnvAsInt("DCMSIM_MAX_PARALLEL", 0),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
