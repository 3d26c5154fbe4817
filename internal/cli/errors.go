package cli

import "errors"

// Error variables for argument and flag handling.
var (
	ErrFlagRequiresArg  = errors.New("flag requires an argument")
	ErrUnknownFlag      = errors.New("unknown flag")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgument  = errors.New("missing argument")
	ErrTooManyArguments = errors.New("too many arguments")
)
