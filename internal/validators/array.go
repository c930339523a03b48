// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-array-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldData targets the integer sequence of a write request.
	FieldData = "data"

	// FieldID targets the array id of a sort request.
	FieldID = "id"
)

// ArrayValidator implements [Validator] for [models.WriteArrayRequest] and
// [models.SortRequest], in value and pointer form.
type ArrayValidator struct{}

// NewArrayValidator returns an [ArrayValidator] as a [Validator].
func NewArrayValidator() Validator {
	return &ArrayValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for any other type.
func (v *ArrayValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WriteArrayRequest:
		return v.validateWriteRequest(value, fields...)
	case *models.WriteArrayRequest:
		if value == nil {
			return ErrNilRequest
		}
		return v.validateWriteRequest(*value, fields...)

	case models.SortRequest:
		return v.validateSortRequest(value, fields...)
	case *models.SortRequest:
		if value == nil {
			return ErrNilRequest
		}
		return v.validateSortRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ArrayValidator) validateWriteRequest(req models.WriteArrayRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldData:
			if len(req.Data) == 0 {
				return ErrEmptyData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ArrayValidator) validateSortRequest(req models.SortRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if req.ID <= 0 {
				return ErrInvalidID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
