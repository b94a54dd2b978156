// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the capture endpoint while reading the request
// body. Callers can match against them with [errors.Is].
var (
	// ErrCaptureTooLarge is returned when the capture body exceeds the
	// endpoint's size limit.
	ErrCaptureTooLarge = errors.New("capture body is too large")

	// ErrReadingBody is returned when the capture body cannot be read.
	ErrReadingBody = errors.New("error reading request body")
)
