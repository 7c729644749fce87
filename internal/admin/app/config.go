package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer   string // Required: expected issuer of admin access tokens
	Audience string // Optional: expected audience claim (default: clientadmin)

	HMACKeyFile         string        // Required: path to the shared HMAC key for token verification
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./clientadmin.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              os.Getenv("ADMIN_ISSUER"),
		Audience:            getEnvOrDefault("ADMIN_AUDIENCE", "clientadmin"),
		HMACKeyFile:         getEnvOrDefault("ADMIN_HMAC_KEY_FILE", "hmac.key"),
		DatabaseFile:        getEnvOrDefault("ADMIN_DATABASE_FILE", "clientadmin.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
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
