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

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// PreferenceStorage holds UI preferences such as the theme.
	PreferenceStorage PreferenceStorage

	db *DB
}

// NewClientStorages opens the SQLite file at cfg.DB.DSN (creating it when
// missing), runs the client migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, migrations.Client, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		PreferenceStorage: NewPreferenceRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
