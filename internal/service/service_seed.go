package service

import (
	"context"

	"github.com/MKhiriev/rjs-config-gen/internal/logger"
	"github.com/MKhiriev/rjs-config-gen/internal/store"
	"github.com/MKhiriev/rjs-config-gen/models"
)

type seedService struct {
	log store.RequestLog

	logger *logger.Logger
}

func NewSeedService(log store.RequestLog, logger *logger.Logger) SeedService {
	return &seedService{
		log:    log,
		logger: logger,
	}
}

func (s *seedService) Record(ctx context.Context, rec models.RequestRecord) models.RequestRecord {
	return s.log.Append(rec)
}

func (s *seedService) Snapshot(ctx context.Context) models.SeedData {
	return s.log.Snapshot()
}

func (s *seedService) Export(ctx context.Context, path string) error {
	data := s.log.Snapshot()
	if err := store.WriteSeed(path, data); err != nil {
		return err
	}

	logger.FromContext(ctx, s.logger).Info().Str("path", path).Int("records", len(data.ReqLog)).Msg("request log exported")
	return nil
}
