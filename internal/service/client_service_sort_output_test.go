// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/models"
)

func TestSortOutput(t *testing.T) {
	o := NewSortOutput()

	_, err := o.Export(filepath.Join(t.TempDir(), "out"), false)
	assert.ErrorIs(t, err, ErrNoSortResult)

	data := []int64{1, 2, 3}
	o.Publish(models.SortResult{Data: data, ExecutionTime: 1.5})
	data[0] = 100

	latest, ok := o.Latest()
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3}, latest.Data)

	path, err := o.Export(filepath.Join(t.TempDir(), "sorted"), false)
	require.NoError(t, err)
	assert.Equal(t, input.FileSuffix, filepath.Ext(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "1")

	_, err = o.Export(path, false)
	assert.ErrorIs(t, err, input.ErrExportFileExists)

	_, err = o.Export(path, true)
	assert.NoError(t, err)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, input.ErrFileNoValidData.Error(), UserMessage(input.ErrFileNoValidData))
	assert.Equal(t, GenericFailureMessage, UserMessage(remoteFailure(assert.AnError)))
	assert.Equal(t, ErrSubmitInProgress.Error(), UserMessage(ErrSubmitInProgress))
}
