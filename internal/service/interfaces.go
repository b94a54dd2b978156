package service

import (
	"context"

	"github.com/MKhiriev/rjs-config-gen/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CaptureService turns captured loader snippets into the latest client config.
type CaptureService interface {
	// Capture extracts snippet and, on success, replaces the latest client
	// config. On failure the previous config stays in place.
	Capture(ctx context.Context, snippet []byte) (models.ClientConfig, error)
	// Latest returns the latest client config with every collection present.
	Latest(ctx context.Context) models.ClientConfig
}

// BuildService synthesizes the optimizer config from the current state.
type BuildService interface {
	Build(ctx context.Context) models.BuildConfig
}

// SeedService records proxied requests and exposes the request log.
type SeedService interface {
	Record(ctx context.Context, rec models.RequestRecord) models.RequestRecord
	Snapshot(ctx context.Context) models.SeedData
	// Export writes the request log to path in seed file format.
	Export(ctx context.Context, path string) error
}
