package service

import "errors"

var (
	// ErrInvalidCapture wraps every extraction failure of a captured snippet.
	ErrInvalidCapture = errors.New("invalid capture")
)
