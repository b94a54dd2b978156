package store

import "errors"

// Sentinel errors returned by the seed file functions. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrReadingSeed is returned when the seed file cannot be opened or read.
	ErrReadingSeed = errors.New("error reading seed file")

	// ErrMalformedSeed is returned when the seed file is not a valid
	// {"req_log": [...]} document.
	ErrMalformedSeed = errors.New("malformed seed file")

	// ErrWritingSeed is returned when exporting the request log to disk fails.
	ErrWritingSeed = errors.New("error writing seed file")
)
