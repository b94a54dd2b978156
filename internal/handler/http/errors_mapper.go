package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/rjs-config-gen/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCapture: http.StatusBadRequest,

	ErrCaptureTooLarge: http.StatusRequestEntityTooLarge,
	ErrReadingBody:     http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
