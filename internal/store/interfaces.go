package store

import (
	"github.com/MKhiriev/rjs-config-gen/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RequestLog is the append-only, order-preserving log of requests observed
// by the proxy.
type RequestLog interface {
	// Append stores rec and returns it with its sequence number assigned.
	Append(rec models.RequestRecord) models.RequestRecord
	// Snapshot returns a copy of the log in arrival order.
	Snapshot() models.SeedData
	// Len returns the number of records in the log.
	Len() int
}

// CaptureCache holds the most recent successfully extracted client config.
type CaptureCache interface {
	Set(cfg models.ClientConfig)
	Latest() (models.ClientConfig, bool)
}
