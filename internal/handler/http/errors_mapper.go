// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-array-keeper/internal/app"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/service"
	"github.com/MKhiriev/go-array-keeper/internal/store"
	"github.com/MKhiriev/go-array-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidID:        http.StatusNotFound,
	ErrInvalidPageParam: http.StatusNotFound,
	ErrMalformedJSON:    http.StatusBadRequest,

	service.ErrInvalidPage:      http.StatusNotFound,
	service.ErrInvalidArrayData: http.StatusBadRequest,

	store.ErrArrayNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrScanningRow:       http.StatusInternalServerError,
	store.ErrDecodingArrayData: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes err with its mapped status. Server-side failures are
// logged and their details are not sent to the caller.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("request failed")
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	utils.WriteError(w, err.Error(), status)
}
