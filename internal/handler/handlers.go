// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/handler/http"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/service"
)

// Handlers groups the transport handlers of the remote store.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}, nil
}
