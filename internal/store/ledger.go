package store

import (
	"sync"

	"github.com/MKhiriev/rjs-config-gen/models"
)

// RequestLedger is the in-memory implementation of [RequestLog].
//
// Sequence numbers are assigned under the same lock that appends, so the
// slice order, the sequence order and the arrival order are all the same.
// Readers only hold the lock for the duration of the copy.
type RequestLedger struct {
	mu      sync.RWMutex
	records []models.RequestRecord
	seq     uint64
}

// NewRequestLedger returns a ledger pre-populated with the records of seed.
// Seed records without a sequence number (or out of order) are renumbered
// after their predecessor; later appends continue after the last one.
func NewRequestLedger(seed models.SeedData) *RequestLedger {
	l := &RequestLedger{
		records: make([]models.RequestRecord, 0, len(seed.ReqLog)),
	}

	for _, rec := range seed.ReqLog {
		if rec.Seq <= l.seq {
			rec.Seq = l.seq + 1
		}
		l.seq = rec.Seq
		l.records = append(l.records, rec)
	}

	return l
}

// Append stores rec at the end of the ledger. Any Seq set by the caller is
// overwritten. Append never fails.
func (l *RequestLedger) Append(rec models.RequestRecord) models.RequestRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	rec.Seq = l.seq
	l.records = append(l.records, rec)

	return rec
}

// Snapshot returns a copy of the ledger. The returned slice is never nil.
func (l *RequestLedger) Snapshot() models.SeedData {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.RequestRecord, len(l.records))
	copy(out, l.records)
	return models.SeedData{ReqLog: out}
}

// Len returns the number of records in the ledger.
func (l *RequestLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
