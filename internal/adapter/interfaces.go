// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client services and
// the remote array store.
//
// The primary abstraction is [ArrayClient], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPArrayClient]) built on resty.
//
// Every operation accepts exactly one success status. Other responses are
// mapped by mapHTTPError to the sentinels in errors.go so that callers can use
// [errors.Is] (e.g. [ErrBadRequest] for 400, [ErrUnexpectedStatus] for a 2xx
// that the operation does not expect). Not-found on read paths is not an
// error: FetchPage and FetchByID report it through their found result.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-array-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/array_client_mock.go -package=mock

// ArrayClient defines communication with the remote array store. There is no
// retry: every failure is returned to the caller as is.
type ArrayClient interface {
	// FetchPage retrieves one page (1-based) of stored arrays.
	// Succeeds only on 200. A 404 yields found == false and a nil error.
	FetchPage(ctx context.Context, page int) (result models.ArrayPage, found bool, err error)

	// FetchByID retrieves a single stored array.
	// Succeeds only on 200. A 404 yields found == false and a nil error.
	FetchByID(ctx context.Context, id int64) (record models.ArrayRecord, found bool, err error)

	// Create persists a new array. Succeeds only on 201; on any other outcome
	// no record is returned.
	Create(ctx context.Context, req models.WriteArrayRequest) (models.ArrayRecord, error)

	// Update replaces data and is_sorted of the array with the given id.
	// Succeeds only on 200.
	Update(ctx context.Context, id int64, req models.WriteArrayRequest) error

	// Delete removes the array with the given id. Succeeds only on 204.
	Delete(ctx context.Context, id int64) error

	// Sort asks the store to sort a previously persisted array.
	// Succeeds only on 200.
	Sort(ctx context.Context, id int64) (models.SortResult, error)
}
