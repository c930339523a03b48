// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-array-keeper/internal/config"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/migrations"
)

// Storages groups the server repositories.
type Storages struct {
	ArrayRepository ArrayRepository

	db *DB
}

// NewStorages connects to the configured server database, applies its
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB.DSN, migrations.SQLite, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ArrayRepository: NewArrayRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
