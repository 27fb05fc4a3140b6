// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/utils"
)

func TestCheckHash(t *testing.T) {
	const body = `{"id":"r1","user_id":"user-1","title":"Oil change"}`

	tests := []struct {
		name       string
		hashKey    string
		header     string
		wantStatus int
	}{
		{name: "valid hash", hashKey: testHashKey, header: utils.HashBytes([]byte(body), testHashKey), wantStatus: http.StatusOK},
		{name: "hash with another key", hashKey: testHashKey, header: utils.HashBytes([]byte(body), "other"), wantStatus: http.StatusBadRequest},
		{name: "garbage hash", hashKey: testHashKey, header: "deadbeef", wantStatus: http.StatusBadRequest},
		{name: "no header", hashKey: testHashKey, wantStatus: http.StatusOK},
		// без ключа проверка выключена
		{name: "no key configured", header: "deadbeef", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), hasher: utils.NewHasher(tt.hashKey)}

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				seen = string(b)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPut, "/api/v1/collections/reminders/r1", strings.NewReader(body))
			if tt.header != "" {
				req.Header.Set(HashHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			h.checkHash(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, body, seen, "body must be restored for the next handler")
			} else {
				assert.Contains(t, rr.Body.String(), ErrIntegrityCheckFailed.Error())
			}
		})
	}
}
