// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-array-keeper/internal/utils"
	"github.com/MKhiriev/go-array-keeper/models"
)

func (h *Handler) listArrays(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, "Handler.listArrays", ErrInvalidPageParam)
			return
		}
		page = parsed
	}

	result, err := h.services.ArrayService.List(r.Context(), page)
	if err != nil {
		writeError(w, r, "Handler.listArrays", err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getArray(w http.ResponseWriter, r *http.Request) {
	id, err := arrayIDFromPath(r)
	if err != nil {
		writeError(w, r, "Handler.getArray", err)
		return
	}

	record, err := h.services.ArrayService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "Handler.getArray", err)
		return
	}

	_, _ = utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) createArray(w http.ResponseWriter, r *http.Request) {
	var req models.WriteArrayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createArray", err)
		return
	}

	record, err := h.services.ArrayService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.createArray", err)
		return
	}

	_, _ = utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) updateArray(w http.ResponseWriter, r *http.Request) {
	id, err := arrayIDFromPath(r)
	if err != nil {
		writeError(w, r, "Handler.updateArray", err)
		return
	}

	var req models.WriteArrayRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.updateArray", err)
		return
	}

	record, err := h.services.ArrayService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, "Handler.updateArray", err)
		return
	}

	_, _ = utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) deleteArray(w http.ResponseWriter, r *http.Request) {
	id, err := arrayIDFromPath(r)
	if err != nil {
		writeError(w, r, "Handler.deleteArray", err)
		return
	}

	if err = h.services.ArrayService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "Handler.deleteArray", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sortArray(w http.ResponseWriter, r *http.Request) {
	var req models.SortRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.sortArray", err)
		return
	}

	result, err := h.services.ArrayService.Sort(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.sortArray", err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func arrayIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return nil
}
