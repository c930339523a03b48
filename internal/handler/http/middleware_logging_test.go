// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a logger in context, the same way
// withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/arrays/?page=2",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/arrays/?page=2"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/api/arrays/",
			handlerStatus:   http.StatusCreated,
			handlerResponse: "Created",
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":201`,
				`"size":7`,
			},
		},
		{
			name:          "DELETE 204 no body",
			method:        http.MethodDelete,
			path:          "/api/arrays/4/",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"status":204`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
