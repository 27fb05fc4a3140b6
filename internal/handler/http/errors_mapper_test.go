// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/autobrain/internal/service"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"foreign document", service.ErrWrongUserScope, http.StatusForbidden},
		// scope wins over the validation wrapper
		{"scope inside invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrWrongUserScope), http.StatusForbidden},
		{"invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyBody), http.StatusBadRequest},
		{"bare validator error", validators.ErrInvalidCollection, http.StatusBadRequest},
		{"document not found", store.ErrDocumentNotFound, http.StatusNotFound},
		{"image not found", service.ErrImageNotFound, http.StatusNotFound},
		{"image upstream", service.ErrImageUpstreamFailed, http.StatusBadGateway},
		{"uploads disabled", service.ErrUploadsDisabled, http.StatusServiceUnavailable},
		{"retryable db error", fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrRetryable), http.StatusServiceUnavailable},
		{"plain db error", store.ErrScanningRows, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
