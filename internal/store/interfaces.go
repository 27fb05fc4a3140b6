// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/autobrain/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RemoteDocumentRepository is the PostgreSQL-backed store of per-user
// document collections served to devices.
type RemoteDocumentRepository interface {
	// Put creates or replaces the document and returns it with the
	// timestamps assigned by the database.
	Put(ctx context.Context, doc models.RemoteDocument) (models.RemoteDocument, error)
	List(ctx context.Context, userID, collection string) ([]models.RemoteDocument, error)
	Get(ctx context.Context, userID, collection, id string) (models.RemoteDocument, error)
	Delete(ctx context.Context, userID, collection, id string) error
}

// ImageCache keeps upstream car image lookups for a limited time.
type ImageCache interface {
	// Get returns ErrNotFound on a miss.
	Get(ctx context.Context, key string) (models.CarImage, error)
	Set(ctx context.Context, key string, image models.CarImage) error
	Close() error
}
