// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
