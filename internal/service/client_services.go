// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-array-keeper/internal/adapter"
	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/store"
)

type ClientServices struct {
	Acquisition AcquisitionWorkflow
	Collection  CollectionController
	// Selection backs the remote-selection acquisition method. It is a
	// separate view so browsing there does not move the collection page.
	Selection CollectionController
	Output    SortOutput
	Theme     ThemePreference
}

func NewClientServices(ctx context.Context, storages *store.ClientStorages, client adapter.ArrayClient, logger *logger.Logger) *ClientServices {
	output := NewSortOutput()

	return &ClientServices{
		Acquisition: NewAcquisitionWorkflow(client, input.NewGenerator(nil), output, logger),
		Collection:  NewCollectionController(client, logger),
		Selection:   NewCollectionController(client, logger),
		Output:      output,
		Theme:       NewThemePreference(ctx, storages.PreferenceStorage, logger),
	}
}
