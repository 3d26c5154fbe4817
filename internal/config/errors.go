package config

import "errors"

// Error variables for settings loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrWelcomeDelayRange  = errors.New("welcome_delay must be between 0 and 255")
)
