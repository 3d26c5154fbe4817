package journal

import "errors"

// Error variables for command arguments.
var (
	ErrInvalidNumericInput = errors.New("invalid number")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUnknownFormat       = errors.New("unknown export format")
)
