// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/models"
)

// putDocument stores the raw request body as the document addressed by
// the path. The stored envelope is echoed back.
func (h *Handler) putDocument(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.putDocument").Msg("failed to read request body")
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	doc := models.RemoteDocument{
		UserID:     userID,
		Collection: chi.URLParam(r, "collection"),
		ID:         chi.URLParam(r, "id"),
		Body:       body,
	}

	stored, err := h.services.DocumentService.Put(r.Context(), doc)
	if err != nil {
		writeError(w, r, "*Handler.putDocument", err)
		return
	}

	utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	docs, err := h.services.DocumentService.List(r.Context(), userID, chi.URLParam(r, "collection"))
	if err != nil {
		writeError(w, r, "*Handler.listDocuments", err)
		return
	}
	if docs == nil {
		docs = []models.RemoteDocument{}
	}

	utils.WriteJSON(w, models.DocumentList{Documents: docs, Length: len(docs)}, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	doc, err := h.services.DocumentService.Get(r.Context(), userID, chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getDocument", err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	err := h.services.DocumentService.Delete(r.Context(), userID, chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.deleteDocument", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
