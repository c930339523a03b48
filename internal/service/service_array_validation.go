// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-array-keeper/internal/store"
	"github.com/MKhiriev/go-array-keeper/internal/validators"
	"github.com/MKhiriev/go-array-keeper/models"
)

type ArrayValidationService struct {
	inner     ArrayService
	validator validators.Validator
}

func NewArrayValidationService() ArrayServiceWrapper {
	return &ArrayValidationService{
		validator: validators.NewArrayValidator(),
	}
}

func (v *ArrayValidationService) List(ctx context.Context, page int) (models.ArrayPage, error) {
	if page < 1 {
		return models.ArrayPage{}, ErrInvalidPage
	}
	return v.inner.List(ctx, page)
}

func (v *ArrayValidationService) Get(ctx context.Context, id int64) (models.ArrayRecord, error) {
	return v.inner.Get(ctx, id)
}

func (v *ArrayValidationService) Create(ctx context.Context, req models.WriteArrayRequest) (models.ArrayRecord, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldData); err != nil {
		return models.ArrayRecord{}, fmt.Errorf("%w: %w", ErrInvalidArrayData, err)
	}
	return v.inner.Create(ctx, req)
}

func (v *ArrayValidationService) Update(ctx context.Context, id int64, req models.WriteArrayRequest) (models.ArrayRecord, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldData); err != nil {
		return models.ArrayRecord{}, fmt.Errorf("%w: %w", ErrInvalidArrayData, err)
	}
	return v.inner.Update(ctx, id, req)
}

func (v *ArrayValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *ArrayValidationService) Sort(ctx context.Context, req models.SortRequest) (models.SortResult, error) {
	// ids start at 1, so no record can match
	if err := v.validator.Validate(ctx, req, validators.FieldID); err != nil {
		return models.SortResult{}, fmt.Errorf("%w: %w", store.ErrArrayNotFound, err)
	}
	return v.inner.Sort(ctx, req)
}

func (v *ArrayValidationService) Wrap(inner ArrayService) ArrayService {
	v.inner = inner
	return v
}
