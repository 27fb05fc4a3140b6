// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/models"
)

// Services groups the server-side services.
type Services struct {
	DocumentService DocumentService
	AuthService     AuthService
	ImageService    ImageService
	UploadService   UploadService
	AppInfoService  AppInfoService
}

func NewServices(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	uploads, err := NewUploadService(ctx, cfg.S3, logger)
	if err != nil {
		return nil, fmt.Errorf("upload service: %w", err)
	}

	return &Services{
		DocumentService: NewDocumentValidationService().Wrap(NewDocumentService(storages.Documents, logger)),
		AuthService:     NewAuthService(cfg.App, logger),
		ImageService:    NewImageService(cfg.Images, cfg.Adapter.ImageTimeout, storages.ImageCache, logger),
		UploadService:   uploads,
		AppInfoService:  appInfo,
	}, nil
}
