// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/autobrain/internal/utils"
)

// getCarImage answers GET /api/v1/images/car?make=..&model=..&year=..
func (h *Handler) getCarImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		http.Error(w, "year must be a number", http.StatusBadRequest)
		return
	}

	image, err := h.services.ImageService.LookupCarImage(r.Context(), q.Get("make"), q.Get("model"), year)
	if err != nil {
		writeError(w, r, "*Handler.getCarImage", err)
		return
	}

	utils.WriteJSON(w, image, http.StatusOK)
}
