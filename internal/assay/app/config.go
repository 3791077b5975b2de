package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string        // Required: issuer claim for session tokens
	DatabaseFile string        // Optional: path to SQLite database file (default: ./assay.db)
	PepperFile   string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	AccessTTL    time.Duration // Optional: session token lifetime (default: 12h)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              os.Getenv("ASSAY_ISSUER"),
		DatabaseFile:        getEnvOrDefault("ASSAY_DATABASE_FILE", "assay.db"),
		PepperFile:          getEnvOrDefault("ASSAY_PEPPER_FILE", "pepper"),
		AccessTTL:           getEnvDurationOrDefault("ASSAY_ACCESS_TTL", 0),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "assay-service"
	}

	return cfg
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

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
