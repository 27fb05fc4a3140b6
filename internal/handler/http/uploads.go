// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/autobrain/internal/utils"
)

func (h *Handler) createUploadURL(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	upload, err := h.services.UploadService.PresignUpload(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.createUploadURL", err)
		return
	}

	utils.WriteJSON(w, upload, http.StatusOK)
}
