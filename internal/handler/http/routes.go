// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)

	// routes without authorization
	router.Get("/api/version/", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/v1/collections/{collection}", h.listDocuments)
		r.Get("/api/v1/collections/{collection}/{id}", h.getDocument)
		r.With(h.checkHash).Put("/api/v1/collections/{collection}/{id}", h.putDocument)
		r.Delete("/api/v1/collections/{collection}/{id}", h.deleteDocument)

		r.Get("/api/v1/images/car", h.getCarImage)
		r.Post("/api/v1/documents/{id}/upload-url", h.createUploadURL)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
