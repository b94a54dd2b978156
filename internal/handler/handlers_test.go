package handler

import (
	"testing"

	"github.com/MKhiriev/rjs-config-gen/internal/config"
	"github.com/MKhiriev/rjs-config-gen/internal/logger"
	"github.com/MKhiriev/rjs-config-gen/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so construction-time tests need no real services.
func newTestServices() *service.Services {
	return &service.Services{}
}

func newTestConfig(address, target string) *config.StructuredConfig {
	cfg := config.Defaults()
	cfg.Server.HTTPAddress = address
	cfg.Proxy.Target = target
	return cfg
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.StructuredConfig
		wantErr error
	}{
		{
			name: "address and target",
			cfg:  newTestConfig("127.0.0.1:8080", "http://example.com"),
		},
		{
			name:    "no address",
			cfg:     newTestConfig("", "http://example.com"),
			wantErr: errNoHandlersAreCreated,
		},
		{
			name:    "no target",
			cfg:     newTestConfig("127.0.0.1:8080", ""),
			wantErr: errNoProxyTarget,
		},
		{
			name:    "target without host",
			cfg:     newTestConfig("127.0.0.1:8080", "/relative/path"),
			wantErr: errNoProxyTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(newTestServices(), tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
		})
	}
}
