// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService_GetAppInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.3", "", "abc123")

	svc := NewAppInfoService(info, logger.Nop())

	got := svc.GetAppInfo(context.Background())
	assert.Equal(t, "1.2.3", got.Version)
	assert.Equal(t, "N/A", got.Date)
	assert.Equal(t, "abc123", got.Commit)
}
