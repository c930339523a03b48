// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrArrayNotFound is returned when no array has the requested id.
	ErrArrayNotFound = errors.New("array was not found")

	// ErrPreferenceNotFound is returned for a preference key that was never
	// set.
	ErrPreferenceNotFound = errors.New("preference was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the driver rejects a statement.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when a result row does not match the
	// expected columns.
	ErrScanningRow = errors.New("error scanning row")

	// ErrDecodingArrayData is returned when the stored data column is not a
	// JSON array of integers.
	ErrDecodingArrayData = errors.New("error decoding array data")

	// ErrUnsupportedDriver is returned for a database driver other than
	// pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
