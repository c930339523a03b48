// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-array-keeper/internal/adapter"
	"github.com/MKhiriev/go-array-keeper/internal/config"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/service"
	"github.com/MKhiriev/go-array-keeper/internal/store"
	"github.com/MKhiriev/go-array-keeper/internal/tui"
	"github.com/MKhiriev/go-array-keeper/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp opens the preference store, builds the array store adapter and the
// client services on top of them.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	arrayClient, err := adapter.NewHTTPArrayClient(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create array store adapter: %w", err)
	}

	services := service.NewClientServices(ctx, storages, arrayClient, logger)

	return &App{
		storages: storages,
		services: services,
		ui:       tui.New(services, buildInfo, logger),
		logger:   logger,
	}, nil
}

// Run blocks in the UI and closes the preference store afterwards.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("error closing client storages")
		}
	}()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
