package store

import "github.com/MKhiriev/rjs-config-gen/models"

// Storages groups the in-memory state owned by one server instance.
type Storages struct {
	RequestLog   RequestLog
	CaptureCache CaptureCache
}

// NewStorages builds the state of a fresh server instance. The request log
// is pre-populated from seed.
func NewStorages(seed models.SeedData) *Storages {
	return &Storages{
		RequestLog:   NewRequestLedger(seed),
		CaptureCache: NewCaptureStore(),
	}
}
