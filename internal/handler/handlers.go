package handler

import (
	"github.com/MKhiriev/rjs-config-gen/internal/config"
	"github.com/MKhiriev/rjs-config-gen/internal/handler/http"
	"github.com/MKhiriev/rjs-config-gen/internal/logger"
	"github.com/MKhiriev/rjs-config-gen/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	target := cfg.TargetURL()
	if target == nil || target.Host == "" {
		return nil, errNoProxyTarget
	}

	return &Handlers{
		HTTP: http.NewHandler(services, target, logger),
	}, nil
}
