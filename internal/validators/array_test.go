// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-array-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestArrayValidator_Validate(t *testing.T) {
	v := NewArrayValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "write request ok", obj: models.WriteArrayRequest{Data: []int64{1}}},
		{name: "write request pointer ok", obj: &models.WriteArrayRequest{Data: []int64{1, 2}}},
		{name: "write request empty data", obj: models.WriteArrayRequest{}, wantErr: ErrEmptyData},
		{name: "write request nil pointer", obj: (*models.WriteArrayRequest)(nil), wantErr: ErrNilRequest},
		{name: "write request unknown field", obj: models.WriteArrayRequest{Data: []int64{1}}, fields: []string{"nope"}, wantErr: ErrUnknownField},
		{name: "sort request ok", obj: models.SortRequest{ID: 3}},
		{name: "sort request zero id", obj: models.SortRequest{}, wantErr: ErrInvalidID},
		{name: "sort request negative id", obj: &models.SortRequest{ID: -1}, wantErr: ErrInvalidID},
		{name: "sort request explicit field", obj: models.SortRequest{ID: 1}, fields: []string{FieldID}},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
