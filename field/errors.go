package field

import "errors"

var (
	// ErrInvalidArgument indicates a configuration value the generator refuses.
	ErrInvalidArgument = errors.New("field: invalid argument")
	// ErrIO indicates the destination could not be opened, written or closed.
	ErrIO = errors.New("field: i/o error")
)
