// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-array-keeper/internal/logger"
)

type preferenceRepository struct {
	db *DB
	qb queryBuilder

	logger *logger.Logger
}

// NewPreferenceRepository constructs a [PreferenceStorage] over the client
// SQLite database.
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceStorage {
	return &preferenceRepository{
		db:     db,
		qb:     newQueryBuilder(db.driver),
		logger: logger,
	}
}

func (p *preferenceRepository) GetPreference(ctx context.Context, key string) (string, error) {
	query, args, err := p.qb.buildGetPreferenceQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = p.db.withRetry(ctx, func() error {
		return p.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		p.logger.Err(err).Str("func", "*preferenceRepository.GetPreference").Str("key", key).Msg("error reading preference")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (p *preferenceRepository) SetPreference(ctx context.Context, key, value string) error {
	query, args, err := p.qb.buildSetPreferenceQuery(key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = p.db.withRetry(ctx, func() error {
		_, err := p.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		p.logger.Err(err).Str("func", "*preferenceRepository.SetPreference").Str("key", key).Msg("error saving preference")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
