package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects how a Logger is built.
type Config struct {
	// Development switches the console to the human-readable encoder.
	Development bool

	// Level is the minimum level written to every output.
	Level zapcore.Level

	// FilePath enables a rotating JSON log file when non-empty.
	FilePath string

	// File tunes rotation of FilePath. Zero fields use the defaults.
	File FileWriterConfig

	// Console receives console output. Defaults to stderr so that stdout
	// stays free for the command's own output.
	Console zapcore.WriteSyncer
}

// Logger wraps zap.Logger with the application's output setup.
//
// Example:
//
//	logger, err := NewLogger(ConfigFromEnv(false, "FIELDGEN_LOG_LEVEL", "FIELDGEN_LOG_FILE"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
//
//	logger.Info("field written", zap.String("path", "field.txt"))
type Logger struct {
	zap         *zap.Logger
	logFilePath string
}

// NewLogger creates a Logger from cfg. The console core is always present;
// a file core is teed in when cfg.FilePath is set.
func NewLogger(cfg Config) (*Logger, error) {
	console := cfg.Console
	if console == nil {
		console = zapcore.Lock(os.Stderr)
	}

	var file zapcore.WriteSyncer
	if cfg.FilePath != "" {
		// lumberjack opens lazily; create the directory now so a bad path
		// fails at startup rather than on the first entry.
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file = NewFileWriterWithConfig(cfg.FilePath, cfg.File)
	}

	core := NewMultiCoreWithWriters(cfg.Level, console, file, cfg.Development)
	zapLogger := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1), // Skip this wrapper layer
	)

	return &Logger{
		zap:         zapLogger,
		logFilePath: cfg.FilePath,
	}, nil
}

// Sync flushes any buffered log entries.
// Applications should call Sync before exiting to ensure all logs are written.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	return l.zap.Sync()
}

// Debug logs a message at DebugLevel with optional structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

// Info logs a message at InfoLevel with optional structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Warn logs a message at WarnLevel with optional structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

// Error logs a message at ErrorLevel with optional structured fields.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

// With creates a child logger with additional fields that will be included
// in all log entries from the child.
//
// Example:
//
//	runLogger := logger.With(zap.String("run_id", "1f2e3d4c"))
//	runLogger.Info("generation started")
func (l *Logger) With(fields ...zap.Field) *Logger {
	z := l.zap.With(fields...)
	return &Logger{
		zap:         z,
		logFilePath: l.logFilePath,
	}
}

// Named adds a sub-logger name.
func (l *Logger) Named(name string) *Logger {
	z := l.zap.Named(name)
	return &Logger{
		zap:         z,
		logFilePath: l.logFilePath,
	}
}

// LogFilePath returns the path to the log file, or "" when logging to the
// console only.
func (l *Logger) LogFilePath() string {
	return l.logFilePath
}
