// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-array-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	_, _ = utils.WriteJSON(w, info, http.StatusOK)
}
