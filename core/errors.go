package core

import (
	"errors"
	"fmt"
	"strings"

	"fieldgen/field"
)

// CLIError represents a command line failure with actionable instructions.
type CLIError struct {
	Code    string // Error code for programmatic handling
	Message string // Human-readable error message
	Action  string // Actionable instruction for resolution
	Err     error  // Underlying cause, if any
}

func (e *CLIError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Action)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// Error codes for command line errors
const (
	ErrCodeMissingArgument = "MISSING_ARGUMENT"
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeIO              = "IO_ERROR"
)

// ErrMissingArgument returns an error for a required flag that was not given
func ErrMissingArgument(flag string) *CLIError {
	return &CLIError{
		Code:    ErrCodeMissingArgument,
		Message: fmt.Sprintf("Missing required argument: --%s", flag),
		Action:  fmt.Sprintf("Pass --%s (see --help)", flag),
	}
}

// ErrInvalidArgument returns an error for a flag value that cannot be used.
// It builds the *CLIError shown to the user; library code reports the same
// condition with the field.ErrInvalidArgument sentinel, which
// ClassifyGenerateError converts into this form.
func ErrInvalidArgument(reason string, cause error) *CLIError {
	return &CLIError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("Invalid argument: %s", reason),
		Action:  "Run with --help for the accepted flags and value types",
		Err:     cause,
	}
}

// ErrOutputFailed returns an error when the destination cannot be created or written
func ErrOutputFailed(path string, cause error) *CLIError {
	return &CLIError{
		Code:    ErrCodeIO,
		Message: fmt.Sprintf("Cannot write field to %s: %v", path, cause),
		Action:  "Check that the parent directory exists and is writable",
		Err:     cause,
	}
}

// ClassifyGenerateError converts an error returned by the field package into
// a CLIError for the given destination.
func ClassifyGenerateError(path string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := IsCLIError(err); ok {
		return err
	}
	if errors.Is(err, field.ErrInvalidArgument) {
		reason := strings.TrimPrefix(err.Error(), field.ErrInvalidArgument.Error()+": ")
		return ErrInvalidArgument(reason, err)
	}
	return ErrOutputFailed(path, err)
}

// IsCLIError checks if an error is a CLIError and returns it if so
func IsCLIError(err error) (*CLIError, bool) {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error if it's a CLIError
func GetErrorCode(err error) string {
	if cliErr, ok := IsCLIError(err); ok {
		return cliErr.Code
	}
	return ""
}
