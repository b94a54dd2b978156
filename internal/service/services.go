package service

import (
	"github.com/MKhiriev/rjs-config-gen/internal/logger"
	"github.com/MKhiriev/rjs-config-gen/internal/store"
	"github.com/MKhiriev/rjs-config-gen/models"
)

type Services struct {
	CaptureService CaptureService
	BuildService   BuildService
	SeedService    SeedService
}

func NewServices(storages *store.Storages, static models.StaticConfig, logger *logger.Logger) *Services {
	return &Services{
		CaptureService: NewCaptureLoggingService(logger).Wrap(NewCaptureService(storages.CaptureCache)),
		BuildService:   NewBuildService(static, storages.RequestLog, storages.CaptureCache),
		SeedService:    NewSeedService(storages.RequestLog, logger),
	}
}
