package sources

import "errors"

var (
	// ErrReadingConfig is returned when the static config file cannot be read.
	ErrReadingConfig = errors.New("error reading static config file")

	// ErrMalformedConfig is returned when the static config file cannot be
	// parsed or declares an unusable bundle.
	ErrMalformedConfig = errors.New("malformed static config file")
)
