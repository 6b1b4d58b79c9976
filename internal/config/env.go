package config

import (
	"os"
	"strings"
	"time"
)

// envOrDefault treats unset and blank values alike.
func envOrDefault(key, defaultValue string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultValue
}

// durationEnvOrDefault ignores unparseable and non-positive durations.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := envOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	switch strings.ToLower(envOrDefault(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}
