// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/models"
)

type documentService struct {
	documents store.RemoteDocumentRepository

	logger *logger.Logger
}

func NewDocumentService(documents store.RemoteDocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documents: documents,
		logger:    logger,
	}
}

func (d *documentService) Put(ctx context.Context, doc models.RemoteDocument) (models.RemoteDocument, error) {
	stored, err := d.documents.Put(ctx, doc)
	if err != nil {
		return models.RemoteDocument{}, fmt.Errorf("put document %s/%s: %w", doc.Collection, doc.ID, err)
	}

	logger.FromContext(ctx).Debug().
		Str("collection", doc.Collection).
		Str("id", doc.ID).
		Time("updated_at", stored.UpdatedAt).
		Msg("document stored")
	return stored, nil
}

func (d *documentService) List(ctx context.Context, userID, collection string) ([]models.RemoteDocument, error) {
	docs, err := d.documents.List(ctx, userID, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return docs, nil
}

func (d *documentService) Get(ctx context.Context, userID, collection, id string) (models.RemoteDocument, error) {
	return d.documents.Get(ctx, userID, collection, id)
}

func (d *documentService) Delete(ctx context.Context, userID, collection, id string) error {
	return d.documents.Delete(ctx, userID, collection, id)
}
