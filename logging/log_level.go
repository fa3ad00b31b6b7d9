package logging

import (
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ParseLogLevelString parses a log level name, case-insensitively.
// Unknown or empty names return defaultLevel.
//
// Valid levels: debug, info, warn, warning, error
func ParseLogLevelString(levelStr string, defaultLevel zapcore.Level) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return defaultLevel
	}
}

// ConfigFromEnv builds a Config from the given environment variable names.
// dev is parsed by the caller. Development mode lowers the default level to
// debug; an explicit level variable always wins.
//
// Example:
//
//	dev := core.ParseBoolEnv("FIELDGEN_DEV_MODE", false)
//	cfg := ConfigFromEnv(dev, "FIELDGEN_LOG_LEVEL", "FIELDGEN_LOG_FILE")
func ConfigFromEnv(dev bool, levelVar, fileVar string) Config {
	defaultLevel := zapcore.InfoLevel
	if dev {
		defaultLevel = zapcore.DebugLevel
	}

	return Config{
		Development: dev,
		Level:       ParseLogLevelString(os.Getenv(levelVar), defaultLevel),
		FilePath:    strings.TrimSpace(os.Getenv(fileVar)),
		File:        DefaultFileWriterConfig(),
	}
}
