// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-array-keeper/internal/app"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches a route but the method does not. The
// array store answers 404 instead, with the usual JSON error body, so
// PATCH /api/arrays/1/ looks the same as a missing route. The allowed
// methods of the path are logged for debugging.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := make([]string, 0, 2)
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		logger.FromRequest(r).Debug().
			Str("func", "CheckHTTPMethod").
			Str("method", r.Method).
			Strs("allowed", allowed).
			Msg("method not registered for path")

		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	}
}
