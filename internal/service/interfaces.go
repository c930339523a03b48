// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-array-keeper/models"
)

// ArrayService is the business layer of the array store server.
type ArrayService interface {
	// List returns page (1-based) of arrays ordered by id. A page past the
	// end is ErrInvalidPage, except page 1 of an empty store.
	List(ctx context.Context, page int) (models.ArrayPage, error)
	Get(ctx context.Context, id int64) (models.ArrayRecord, error)
	Create(ctx context.Context, req models.WriteArrayRequest) (models.ArrayRecord, error)
	Update(ctx context.Context, id int64, req models.WriteArrayRequest) (models.ArrayRecord, error)
	Delete(ctx context.Context, id int64) error
	// Sort bucket-sorts the stored array in place, marks it sorted and
	// reports the sort duration in milliseconds.
	Sort(ctx context.Context, req models.SortRequest) (models.SortResult, error)
}

// ArrayServiceWrapper defines middleware composition for ArrayService.
// Implementations wrap an existing ArrayService to add behavior such as
// validation.
type ArrayServiceWrapper interface {
	Wrap(ArrayService) ArrayService
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
