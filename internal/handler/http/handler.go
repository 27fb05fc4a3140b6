// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/service"
	"github.com/MKhiriev/autobrain/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher checks HashSHA256 on document bodies. Nil disables it.
	hasher *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("integrity_check", cfg.HashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(cfg.HashKey),
		logger:   logger,
	}
}
