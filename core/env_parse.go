package core

import (
	"os"
	"strings"
)

// Environment variables read at startup. Any of them may also come from a
// .env file in the working directory.
const (
	EnvDevMode  = "FIELDGEN_DEV_MODE"
	EnvLogLevel = "FIELDGEN_LOG_LEVEL"
	EnvLogFile  = "FIELDGEN_LOG_FILE"
)

// ParseBoolEnv parses an environment variable as a boolean.
// Accepts case-insensitive: "true", "1", "yes", "on" as true values.
// Accepts case-insensitive: "false", "0", "no", "off" as false values.
// Returns the default value if the variable is not set or cannot be parsed.
func ParseBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
