// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the array store server and for
// the client preferences.
//
// The server keeps arrays in PostgreSQL (pgx) or SQLite (go-sqlite3); both
// dialects share the same squirrel-built queries and differ only in the
// placeholder format and the migration set. The client keeps its preferences
// in a local SQLite file.
package store

import (
	"context"

	"github.com/MKhiriev/go-array-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ArrayRepository persists arrays. Methods addressing a single id return
// [ErrArrayNotFound] when no row matches.
type ArrayRepository interface {
	ListArrays(ctx context.Context, limit, offset int) ([]models.ArrayRecord, error)
	CountArrays(ctx context.Context) (int, error)
	GetArray(ctx context.Context, id int64) (models.ArrayRecord, error)
	// CreateArray inserts record and returns it with the assigned id.
	CreateArray(ctx context.Context, record models.ArrayRecord) (models.ArrayRecord, error)
	// UpdateArray replaces data, is_sorted and update_date of record.ID.
	UpdateArray(ctx context.Context, record models.ArrayRecord) (models.ArrayRecord, error)
	DeleteArray(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
