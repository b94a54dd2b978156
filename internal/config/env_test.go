// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_ADDRESS":          "localhost:9000",
		"SERVER_SHUTDOWN_TIMEOUT": "10s",

		"PROXY_TARGET": "http://example.com",

		"SOURCES_CONFIG_FILE": "/etc/bs/config.yml",
		"SOURCES_SEED_FILE":   "/tmp/seed.json",
		"SOURCES_SEED_OUT":    "/tmp/seed-out.json",

		"LOG_LEVEL": "info",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://example.com", cfg.Proxy.Target)
	assert.Equal(t, "/etc/bs/config.yml", cfg.Sources.ConfigFile)
	assert.Equal(t, "/tmp/seed.json", cfg.Sources.SeedFile)
	assert.Equal(t, "/tmp/seed-out.json", cfg.Sources.SeedOut)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"PROXY_TARGET":      "https://shop.test",
		"SOURCES_SEED_FILE": "seed.json",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://shop.test", cfg.Proxy.Target)
	assert.Equal(t, "seed.json", cfg.Sources.SeedFile)

	// Others untouched
	assert.Empty(t, cfg.Sources.ConfigFile)
	assert.Empty(t, cfg.Sources.SeedOut)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Log{}, cfg.Log)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_SHUTDOWN_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"millis", "1500ms", 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{
				"SERVER_SHUTDOWN_TIMEOUT": tt.envValue,
			})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.ShutdownTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"SERVER_ADDRESS",
		"SERVER_SHUTDOWN_TIMEOUT",

		"PROXY_TARGET",

		"SOURCES_CONFIG_FILE",
		"SOURCES_SEED_FILE",
		"SOURCES_SEED_OUT",

		"LOG_LEVEL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
