// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-array-keeper/internal/config"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
)

// http.NewHandler only stores the services pointer, so nil is safe for
// construction-time tests.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    ":8080",
		RequestTimeout: time.Second,
	}

	h, err := NewHandlers(nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
