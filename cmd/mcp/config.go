package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-based configuration for the MCP server
type Config struct {
	// ClientsFile is the JSON file with registered clients.
	ClientsFile string

	// PeriodDays is the default cost analysis window.
	PeriodDays int

	Logger *slog.Logger
}

// LoadConfig reads configuration from the environment, with an optional
// .env file for local development
func LoadConfig() *Config {
	godotenv.Load()

	level := slog.LevelInfo
	if os.Getenv("CLOUD_OPTIMIZER_DEBUG") != "" {
		level = slog.LevelDebug
	}

	// The MCP protocol owns stdout, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return &Config{
		ClientsFile: getEnvOrDefault("CLOUD_CLIENTS_FILE", "clients.json"),
		PeriodDays:  getEnvIntOrDefault("CLOUD_PERIOD_DAYS", 30),
		Logger:      logger,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}
