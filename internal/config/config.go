package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Storage backends selectable via STORAGE_TYPE
const (
	StorageMemory     = "memory"
	StoragePersistent = "persistent"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP server
	HTTPAddr string

	// Storage backends: "memory" keeps everything in-process,
	// "persistent" uses SQLite for players and Elasticsearch for games
	StorageType string

	// SQLite player store
	SQLitePath string

	// Elasticsearch game store
	ElasticsearchURL      string
	ElasticsearchUsername string
	ElasticsearchPassword string
	IndexPrefix           string

	// Logging
	LogLevel string

	// Environment: "development" or "production"
	Environment string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for the default database path
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := &Config{
		HTTPAddr:              getEnvWithDefault("HTTP_ADDR", ":8080"),
		StorageType:           getEnvWithDefault("STORAGE_TYPE", StorageMemory),
		SQLitePath:            getEnvWithDefault("SQLITE_PATH", filepath.Join(wd, "data", "blackjack.db")),
		ElasticsearchURL:      getEnvWithDefault("ELASTICSEARCH_URL", "http://localhost:9200"),
		ElasticsearchUsername: os.Getenv("ELASTICSEARCH_USERNAME"),
		ElasticsearchPassword: os.Getenv("ELASTICSEARCH_PASSWORD"),
		IndexPrefix:           getEnvWithDefault("INDEX_PREFIX", "blackjack"),
		LogLevel:              getEnvWithDefault("LOG_LEVEL", "info"),
		Environment:           getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if c.StorageType != StorageMemory && c.StorageType != StoragePersistent {
		return fmt.Errorf("STORAGE_TYPE must be %q or %q, got %q", StorageMemory, StoragePersistent, c.StorageType)
	}
	if c.StorageType == StoragePersistent && c.ElasticsearchURL == "" {
		return fmt.Errorf("ELASTICSEARCH_URL is required for persistent storage")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
