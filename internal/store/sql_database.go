// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/migrations"
)

const (
	maxAttempts = 3
	retryDelay  = 50 * time.Millisecond
)

type DB struct {
	*sql.DB
	driver             string
	migrationSet       migrations.Set
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the migration set matching the connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.migrationSet)
}

// withRetry runs op again while the classifier reports a transient failure,
// waiting a little longer before each attempt.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil || attempt == maxAttempts || !db.retryable(err) {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying database call")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryDelay):
		}
	}
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil || errors.Is(err, sql.ErrNoRows) {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
