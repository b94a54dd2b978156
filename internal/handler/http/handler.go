package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/rjs-config-gen/internal/logger"
	"github.com/MKhiriev/rjs-config-gen/internal/service"
)

type Handler struct {
	services *service.Services
	proxy    http.Handler

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. Requests outside the /__bs namespace
// are forwarded to target.
func NewHandler(services *service.Services, target *url.URL, logger *logger.Logger) *Handler {
	logger.Info().Str("target", target.String()).Msg("http handler created")
	return &Handler{
		services: services,
		proxy:    newProxy(target),
		logger:   logger,
	}
}
