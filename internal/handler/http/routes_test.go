// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/autobrain/models"
)

func TestInit_PublicVersionRoute(t *testing.T) {
	router, deps := newTestRouter(t, "")
	deps.info.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppBuildInfo{Version: "1.0.0"})

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t, "")

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/collections/cars"},
		{http.MethodGet, "/api/v1/collections/cars/c1"},
		{http.MethodPut, "/api/v1/collections/cars/c1"},
		{http.MethodDelete, "/api/v1/collections/cars/c1"},
		{http.MethodGet, "/api/v1/images/car?make=Toyota&model=Corolla&year=2018"},
		{http.MethodPost, "/api/v1/documents/d1/upload-url"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			t.Run("no header", func(t *testing.T) {
				rr := serve(router, httptest.NewRequest(rt.method, rt.path, nil))
				assert.Equal(t, http.StatusUnauthorized, rr.Code)
			})
			t.Run("bad token", func(t *testing.T) {
				req := httptest.NewRequest(rt.method, rt.path, nil)
				req.Header.Set("Authorization", "Bearer stale")
				rr := serve(router, req)
				assert.Equal(t, http.StatusUnauthorized, rr.Code)
			})
		})
	}
}

func TestInit_UnknownAndWrongMethodReturn404(t *testing.T) {
	router, _ := newTestRouter(t, "")

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v2/collections/cars"},
		{http.MethodPost, "/api/version/"},
		{http.MethodPatch, "/api/v1/collections/cars/c1"},
		{http.MethodGet, "/api/v1/documents/d1/upload-url"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, authedRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_TraceIDEchoed(t *testing.T) {
	router, deps := newTestRouter(t, "")
	deps.info.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppBuildInfo{Version: "1.0.0"})

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "sync-7")
	rr := serve(router, req)

	assert.Equal(t, "sync-7", rr.Header().Get(traceIDHeader))
}
