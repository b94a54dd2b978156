package service

import (
	"context"

	"github.com/MKhiriev/rjs-config-gen/internal/logger"
	"github.com/MKhiriev/rjs-config-gen/models"
)

// CaptureServiceWrapper defines middleware composition for CaptureService.
// Implementations wrap an existing CaptureService to add behavior such as
// logging.
type CaptureServiceWrapper interface {
	Wrap(CaptureService) CaptureService
}

// CaptureLoggingService logs the outcome of every capture. Rejected
// snippets are only visible here, the client just gets a 400.
type CaptureLoggingService struct {
	inner  CaptureService
	logger *logger.Logger
}

func NewCaptureLoggingService(logger *logger.Logger) CaptureServiceWrapper {
	return &CaptureLoggingService{
		logger: logger,
	}
}

func (c *CaptureLoggingService) Capture(ctx context.Context, snippet []byte) (models.ClientConfig, error) {
	log := logger.FromContext(ctx, c.logger)

	cfg, err := c.inner.Capture(ctx, snippet)
	if err != nil {
		log.Warn().Err(err).Int("size", len(snippet)).Msg("capture rejected")
		return cfg, err
	}

	log.Info().
		Str("base_url", cfg.BaseURL).
		Int("deps", len(cfg.Deps)).
		Int("paths", len(cfg.Paths)).
		Int("shim", len(cfg.Shim)).
		Msg("client config captured")
	return cfg, nil
}

func (c *CaptureLoggingService) Latest(ctx context.Context) models.ClientConfig {
	return c.inner.Latest(ctx)
}

func (c *CaptureLoggingService) Wrap(inner CaptureService) CaptureService {
	c.inner = inner
	return c
}
