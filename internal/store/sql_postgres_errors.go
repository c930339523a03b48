// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed database call
// may succeed when attempted again.
type ErrorClassification int

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to a [ErrorClassification] value.
type PostgresErrorClassifier struct{}

const (
	// NonRetryable is the default for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks connection loss, rollbacks and startup refusals.
	Retryable
)

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [NonRetryable] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	// Attempt to unwrap to a pgconn.PgError.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	// Default: treat unrecognised errors as non-retryable.
	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] by the
// class of its SQLSTATE code:
//   - Class 08, connection exceptions: retryable
//   - Class 40, transaction rollback (serialization failure, deadlock): retryable
//   - 57P03, cannot connect now: retryable
//
// Every other code, including data exceptions (22), integrity constraint
// violations (23) and syntax errors (42), is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}
