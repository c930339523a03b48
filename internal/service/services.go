// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/store"
	"github.com/MKhiriev/go-array-keeper/models"
)

type Services struct {
	ArrayService   ArrayService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	arrayService := NewArrayValidationService().Wrap(NewArrayService(storages.ArrayRepository, logger))

	return &Services{
		ArrayService:   arrayService,
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
