// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/utils"
)

// newTestHandler создаёт Handler с nop-логгером (без вывода в stdout).
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
		wantValidUUID   bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "no trace ID in request, UUID generated", wantValidUUID: true},
		{name: "UUID as incoming trace ID", requestTraceID: "550e8400-e29b-41d4-a716-446655440000", wantSameTraceID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/arrays/", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(utils.TraceIDHeader, tt.requestTraceID)
			}

			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			responseTraceID := rr.Header().Get(utils.TraceIDHeader)
			require.NotEmpty(t, responseTraceID, "X-Trace-ID header must be set in response")
			assert.Equal(t, responseTraceID, ctxTraceID)
			assert.Equal(t, http.StatusTeapot, rr.Code)

			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, responseTraceID)
			}
			if tt.wantValidUUID {
				_, err := uuid.Parse(responseTraceID)
				assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", responseTraceID)
			}
		})
	}
}

// ---- trace_id попадает в поля логгера запроса ----

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(utils.TraceIDHeader, "trace-context-test")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-context-test"`)
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	seen := make(map[string]struct{})

	for range 100 {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rr.Header().Get(utils.TraceIDHeader)
		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}
