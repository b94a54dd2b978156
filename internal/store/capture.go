package store

import (
	"sync"

	"github.com/MKhiriev/rjs-config-gen/models"
)

// CaptureStore is the in-memory implementation of [CaptureCache]. The last
// capture wins; nothing is merged at capture time.
type CaptureStore struct {
	mu     sync.RWMutex
	latest models.ClientConfig
	set    bool
}

func NewCaptureStore() *CaptureStore {
	return &CaptureStore{}
}

// Set replaces the cached config wholesale.
func (c *CaptureStore) Set(cfg models.ClientConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest = cfg
	c.set = true
}

// Latest returns the cached config and whether a capture has happened.
func (c *CaptureStore) Latest() (models.ClientConfig, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.latest, c.set
}
