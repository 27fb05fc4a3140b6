// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/autobrain/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DocumentService serves the per-user remote collections. The user is taken
// from the document or the arguments; handlers put the authenticated user
// into the context and the validation wrapper checks both agree.
type DocumentService interface {
	Put(ctx context.Context, doc models.RemoteDocument) (models.RemoteDocument, error)
	List(ctx context.Context, userID, collection string) ([]models.RemoteDocument, error)
	Get(ctx context.Context, userID, collection, id string) (models.RemoteDocument, error)
	Delete(ctx context.Context, userID, collection, id string) error
}

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// validation.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}

// AuthService issues and verifies ID tokens.
type AuthService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ImageService resolves a car picture through the upstream image search.
type ImageService interface {
	LookupCarImage(ctx context.Context, carMake, carModel string, year int) (models.CarImage, error)
}

// UploadService issues presigned object storage URLs for car documents.
type UploadService interface {
	PresignUpload(ctx context.Context, userID, documentID string) (models.UploadURL, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
