package config

import "os"

// Defaults used when the corresponding environment variable is unset.
const (
	DefaultPort         = "8000"
	DefaultDatabaseURL  = "mongodb://localhost:27017"
	DefaultDatabaseName = "neopencil"
)

// Config holds service configuration read from the environment.
type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string

	// Presence flags for the /test probe: whether the value came from the
	// environment rather than a fallback default. Values are never echoed.
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", DefaultPort),
		DatabaseURL:  getEnv("DATABASE_URL", DefaultDatabaseURL),
		DatabaseName: getEnv("DATABASE_NAME", DefaultDatabaseName),
	}
	cfg.DatabaseURLSet = os.Getenv("DATABASE_URL") != ""
	cfg.DatabaseNameSet = os.Getenv("DATABASE_NAME") != ""
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
