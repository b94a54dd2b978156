package service

import (
	"context"

	"github.com/MKhiriev/rjs-config-gen/internal/store"
	"github.com/MKhiriev/rjs-config-gen/internal/synth"
	"github.com/MKhiriev/rjs-config-gen/models"
)

type buildService struct {
	static  models.StaticConfig
	log     store.RequestLog
	capture store.CaptureCache
}

// NewBuildService returns a BuildService over the static file loaded at
// start-up and the live request log and capture cache.
func NewBuildService(static models.StaticConfig, log store.RequestLog, capture store.CaptureCache) BuildService {
	return &buildService{
		static:  static,
		log:     log,
		capture: capture,
	}
}

// Build recomputes the config on every call; nothing is cached.
func (b *buildService) Build(ctx context.Context) models.BuildConfig {
	var records []models.RequestRecord
	if len(b.static.Bundles) > 0 {
		records = b.log.Snapshot().ReqLog
	}

	client, _ := b.capture.Latest()
	return synth.Synthesize(b.static, records, client)
}
