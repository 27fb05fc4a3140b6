// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/service"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.StructuredConfig
		wantErr error
	}{
		{
			name: "http address configured",
			cfg:  &config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}, App: config.App{HashKey: "k"}},
		},
		{
			name:    "no address",
			cfg:     &config.StructuredConfig{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// http.NewHandler только сохраняет указатель, nil-сервисы допустимы
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, h)
			assert.NotNil(t, h.HTTP)
			assert.NotNil(t, h.HTTP.Init())
		})
	}
}
