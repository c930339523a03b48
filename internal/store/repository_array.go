// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/models"
)

// arrayRepository is the SQL implementation of [ArrayRepository] shared by
// the PostgreSQL and SQLite backends. Data is stored as JSON text in the
// "arrays" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type arrayRepository struct {
	db *DB
	qb queryBuilder

	logger *logger.Logger
}

func NewArrayRepository(db *DB, logger *logger.Logger) ArrayRepository {
	logger.Debug().Msg("creating array repository")
	return &arrayRepository{
		db:     db,
		qb:     newQueryBuilder(db.driver),
		logger: logger,
	}
}

func (r *arrayRepository) ListArrays(ctx context.Context, limit, offset int) ([]models.ArrayRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.qb.buildListArraysQuery(limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*arrayRepository.ListArrays").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var records []models.ArrayRecord
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		records = records[:0]
		for rows.Next() {
			record, err := scanArray(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			records = append(records, record)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*arrayRepository.ListArrays").Msg("error listing arrays")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return records, nil
}

func (r *arrayRepository) CountArrays(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.qb.buildCountArraysQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "*arrayRepository.CountArrays").Msg("error counting arrays")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *arrayRepository) GetArray(ctx context.Context, id int64) (models.ArrayRecord, error) {
	query, args, err := r.qb.buildGetArrayQuery(id)
	if err != nil {
		return models.ArrayRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*arrayRepository.GetArray", id, query, args)
}

func (r *arrayRepository) CreateArray(ctx context.Context, record models.ArrayRecord) (models.ArrayRecord, error) {
	query, args, err := r.qb.buildCreateArrayQuery(record)
	if err != nil {
		return models.ArrayRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*arrayRepository.CreateArray", 0, query, args)
}

func (r *arrayRepository) UpdateArray(ctx context.Context, record models.ArrayRecord) (models.ArrayRecord, error) {
	query, args, err := r.qb.buildUpdateArrayQuery(record)
	if err != nil {
		return models.ArrayRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*arrayRepository.UpdateArray", record.ID, query, args)
}

func (r *arrayRepository) DeleteArray(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.qb.buildDeleteArrayQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*arrayRepository.DeleteArray").Int64("array_id", id).Msg("error deleting array")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrArrayNotFound
	}

	return nil
}

// queryOne runs a statement returning a single array row.
func (r *arrayRepository) queryOne(ctx context.Context, fn string, id int64, query string, args []any) (models.ArrayRecord, error) {
	log := logger.FromContext(ctx)

	var record models.ArrayRecord
	err := r.db.withRetry(ctx, func() error {
		var err error
		record, err = scanArray(r.db.QueryRowContext(ctx, query, args...))
		return err
	})

	switch {
	case err == nil:
		return record, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.ArrayRecord{}, ErrArrayNotFound
	case errors.Is(err, ErrDecodingArrayData):
		log.Err(err).Str("func", fn).Int64("array_id", id).Msg("error: stored data is corrupted")
		return models.ArrayRecord{}, err
	default:
		log.Err(err).Str("func", fn).Int64("array_id", id).Msg("unexpected DB error")
		return models.ArrayRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
