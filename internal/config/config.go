// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level start-up configuration of the config-gen
// proxy. It is populated by merging built-in defaults, environment variables
// and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address and shutdown settings of the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Proxy holds the origin the proxy front-ends.
	Proxy Proxy `envPrefix:"PROXY_"`

	// Sources holds the optional files read once at start-up.
	Sources Sources `envPrefix:"SOURCES_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Proxy holds the target origin.
type Proxy struct {
	// Target is the absolute http(s) URL of the proxied origin.
	// Env: PROXY_TARGET
	Target string `env:"TARGET"`
}

// Sources holds paths of the files loaded before the listener opens.
type Sources struct {
	// ConfigFile is the optional static build configuration (YAML or JSON).
	// Env: SOURCES_CONFIG_FILE
	ConfigFile string `env:"CONFIG_FILE"`

	// SeedFile is an optional request ledger from a prior session, a path
	// or an http(s) URL.
	// Env: SOURCES_SEED_FILE
	SeedFile string `env:"SEED_FILE"`

	// SeedOut is an optional path the ledger is written to on shutdown.
	// Env: SOURCES_SEED_OUT
	SeedOut string `env:"SEED_OUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults returns the built-in start-up configuration, the lowest
// precedence source of the builder.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     "127.0.0.1:8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Log: Log{
			Level: "debug",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the start-up
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags and the positional target URL
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *Flags, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags, args).
		build()
}
