// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/service"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/internal/validators"
)

// errorStatuses is checked in order: the first match wins. Validation
// failures wrap several sentinels, so the scope errors come first.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrWrongUserScope, http.StatusForbidden},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrUnknownCollection, http.StatusBadRequest},
	{validators.ErrInvalidID, http.StatusBadRequest},
	{validators.ErrInvalidCollection, http.StatusBadRequest},
	{validators.ErrMissingCarFields, http.StatusBadRequest},

	{store.ErrDocumentNotFound, http.StatusNotFound},
	{service.ErrImageNotFound, http.StatusNotFound},

	{service.ErrImageUpstreamFailed, http.StatusBadGateway},
	{service.ErrUploadsDisabled, http.StatusServiceUnavailable},
	{store.ErrRetryable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal details
// of 5xx failures stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}
