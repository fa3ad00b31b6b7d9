package core

import "errors"

// Exit codes for the application.
// Usage errors exit with 2, as getopt-style tools do.
const (
	// ExitCodeSuccess indicates the field was fully written (exit code 0)
	ExitCodeSuccess = 0

	// ExitCodeError indicates an I/O or otherwise unclassified failure (exit code 1)
	ExitCodeError = 1

	// ExitCodeUsage indicates a missing, malformed or out-of-range argument (exit code 2)
	ExitCodeUsage = 2
)

// ExitCodeName returns a human-readable name for an exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitCodeSuccess:
		return "success"
	case ExitCodeError:
		return "error"
	case ExitCodeUsage:
		return "usage error"
	default:
		return "unknown"
	}
}

// ExitCodeFor maps an error to the process exit code.
// nil maps to ExitCodeSuccess; CLIErrors with an argument code map to
// ExitCodeUsage; everything else maps to ExitCodeError.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		switch cliErr.Code {
		case ErrCodeInvalidArgument, ErrCodeMissingArgument:
			return ExitCodeUsage
		}
	}
	return ExitCodeError
}
