// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the config-gen proxy from a validated start-up
// configuration.
//
// Every file input (seed log and static build config) is read in New, so
// a malformed file is reported before the listener is bound.
package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rjs-config-gen/internal/config"
	"github.com/MKhiriev/rjs-config-gen/internal/handler"
	"github.com/MKhiriev/rjs-config-gen/internal/logger"
	"github.com/MKhiriev/rjs-config-gen/internal/server"
	"github.com/MKhiriev/rjs-config-gen/internal/service"
	"github.com/MKhiriev/rjs-config-gen/internal/sources"
	"github.com/MKhiriev/rjs-config-gen/internal/store"
)

// App is a fully wired proxy ready to run.
type App struct {
	services *service.Services
	handlers *handler.Handlers
	server   server.Server

	logger *logger.Logger
}

// New loads the seed and static config files named in cfg and wires the
// storages, services, handlers and server.
func New(cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	seed, err := store.LoadSeed(cfg.Sources.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("error loading seed: %w", err)
	}
	logger.Info().Str("file", cfg.Sources.SeedFile).Int("records", len(seed.ReqLog)).Msg("seed loaded")

	static, err := sources.LoadFile(cfg.Sources.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("error loading static config: %w", err)
	}
	logger.Info().Str("file", cfg.Sources.ConfigFile).Int("bundles", len(static.Bundles)).Msg("static config loaded")

	storages := store.NewStorages(seed)
	services := service.NewServices(storages, static, logger)

	handlers, err := handler.NewHandlers(services, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	var hooks []server.ShutdownHook
	if out := cfg.Sources.SeedOut; out != "" {
		hooks = append(hooks, func(ctx context.Context) error {
			return services.SeedService.Export(ctx, out)
		})
	}

	srv, err := server.NewServer(handlers, cfg.Server, logger, hooks...)
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		services: services,
		handlers: handlers,
		server:   srv,
		logger:   logger,
	}, nil
}

// Run serves until a stop signal arrives.
func (a *App) Run() error {
	return a.server.RunServer()
}

// Shutdown stops the server and runs the shutdown hooks.
func (a *App) Shutdown() {
	a.server.Shutdown()
}
