// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name     string
		statuses []int
		want     int
	}{
		{name: "single call", statuses: []int{http.StatusCreated}, want: http.StatusCreated},
		{name: "second call ignored", statuses: []int{http.StatusNotFound, http.StatusOK}, want: http.StatusNotFound},
		{name: "no content", statuses: []int{http.StatusNoContent}, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, s := range tt.statuses {
				w.WriteHeader(s)
			}

			assert.Equal(t, tt.want, w.status)
			assert.Equal(t, tt.want, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	t.Run("implicit 200 and size accumulated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		n, err := w.Write([]byte(`{"documents":[`))
		require.NoError(t, err)
		assert.Equal(t, 14, n)
		_, err = w.Write([]byte(`],"length":0}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 27, w.size)
		assert.Equal(t, `{"documents":[],"length":0}`, rr.Body.String())
	})

	t.Run("explicit status kept", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("image search failed"))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, 19, w.size)
	})

	t.Run("headers reach the underlying writer", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		w.Header().Set(traceIDHeader, "t-1")
		w.WriteHeader(http.StatusOK)

		assert.Equal(t, "t-1", rr.Header().Get(traceIDHeader))
	})
}
