// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server and collaborators.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	JournalPath     string
	NYTAPIKey       string
	NYTBaseURL      string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: time.Duration(atoienv("SHUTDOWN_TIMEOUT", 15)) * time.Second,
		JournalPath:     getenv("JOURNAL_PATH", "./data/journal.db"),
		NYTAPIKey:       getenv("NYT_API_KEY", ""),
		NYTBaseURL:      getenv("NYT_BASE_URL", ""),
	}
}
