package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rjs-config-gen/internal/extractor"
	"github.com/MKhiriev/rjs-config-gen/internal/store"
	"github.com/MKhiriev/rjs-config-gen/models"
)

type captureService struct {
	cache store.CaptureCache
}

func NewCaptureService(cache store.CaptureCache) CaptureService {
	return &captureService{
		cache: cache,
	}
}

func (c *captureService) Capture(ctx context.Context, snippet []byte) (models.ClientConfig, error) {
	cfg, err := extractor.Extract(snippet)
	if err != nil {
		return models.ClientConfig{}, fmt.Errorf("%w: %w", ErrInvalidCapture, err)
	}

	c.cache.Set(cfg)
	return cfg, nil
}

func (c *captureService) Latest(ctx context.Context) models.ClientConfig {
	cfg, _ := c.cache.Latest()
	return cfg.Envelope()
}
