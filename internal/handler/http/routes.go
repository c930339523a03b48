// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-array-keeper/internal/app"
	"github.com/MKhiriev/go-array-keeper/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/arrays", func(r chi.Router) {
			r.Get("/", h.listArrays)
			r.Post("/", h.createArray)
			r.Get("/{id}/", h.getArray)
			r.Put("/{id}/", h.updateArray)
			r.Delete("/{id}/", h.deleteArray)
		})

		r.Post("/sort/", h.sortArray)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
