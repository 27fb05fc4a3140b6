// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the device-side transport to the AutoBrain remote
// store server.
//
// The primary abstraction is [RemoteStore], which decouples the sync and
// image services from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteStore]) built on resty.
//
// HTTP status codes are mapped to the sentinel errors of errors.go by
// mapHTTPError; [IsTransient] tells failures worth retrying (network, 5xx,
// 429) from permanent ones (other 4xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/autobrain/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the per-user document store the device syncs against.
// Every call is scoped to the user of the bearer token set via SetToken.
type RemoteStore interface {
	// SetToken stores the bearer ID token attached to every request.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string

	// PutDocument creates or replaces document id of collection with the
	// JSON form of body and returns the stored document.
	PutDocument(ctx context.Context, collection, id string, body any) (models.RemoteDocument, error)

	// ListDocuments returns the full remote collection of the user.
	ListDocuments(ctx context.Context, collection string) ([]models.RemoteDocument, error)

	// DeleteDocument removes document id. A missing document is reported as
	// [ErrNotFound].
	DeleteDocument(ctx context.Context, collection, id string) error

	// LookupCarImage asks the server image service for a picture of the car.
	// The call is bounded by the image timeout.
	LookupCarImage(ctx context.Context, carMake, carModel string, year int) (models.CarImage, error)

	// DocumentUploadURL requests a presigned URL for the binary of car
	// document id.
	DocumentUploadURL(ctx context.Context, id string) (models.UploadURL, error)

	// AppVersion returns the server build information.
	AppVersion(ctx context.Context) (models.AppBuildInfo, error)
}
