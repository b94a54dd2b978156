package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and the flag
// parser. All of them are fatal at start-up.
var (
	// ErrInvalidTarget indicates a missing or unusable origin URL.
	ErrInvalidTarget = errors.New("invalid target URL")
	// ErrInvalidServerConfigs indicates an unusable listen address or
	// shutdown timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrTooManyArguments indicates more than one positional argument.
	ErrTooManyArguments = errors.New("expected exactly one target URL argument")
)
