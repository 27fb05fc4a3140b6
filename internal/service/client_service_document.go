// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/autobrain/internal/adapter"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/internal/validators"
	"github.com/MKhiriev/autobrain/models"
)

type clientDocumentService struct {
	repo      store.DocumentRepository
	remote    adapter.RemoteStore
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time
}

func NewClientDocumentService(repo store.DocumentRepository, remote adapter.RemoteStore) ClientDocumentService {
	return &clientDocumentService{
		repo:      repo,
		remote:    remote,
		validator: validators.NewEntityValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

func (s *clientDocumentService) Create(ctx context.Context, doc models.CarDocument) (models.CarDocument, error) {
	now := s.now()
	if doc.ID == "" {
		doc.ID = s.ids.Generate()
	}
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.Touch(now)

	if err := s.validator.Validate(ctx, doc); err != nil {
		return models.CarDocument{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return models.CarDocument{}, fmt.Errorf("save car document: %w", err)
	}
	return doc, nil
}

func (s *clientDocumentService) List(ctx context.Context, userID string) ([]models.CarDocument, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *clientDocumentService) RequestUpload(ctx context.Context, userID, id string) (models.UploadURL, error) {
	doc, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return models.UploadURL{}, fmt.Errorf("load car document %s: %w", id, err)
	}

	upload, err := s.remote.DocumentUploadURL(ctx, id)
	if err != nil {
		return models.UploadURL{}, fmt.Errorf("request upload url: %w", mapAdapterError(err))
	}

	if doc.FileKey != upload.FileKey {
		now := s.now()
		doc.FileKey = upload.FileKey
		doc.UpdatedAt = now
		doc.Touch(now)
		if err := s.repo.Save(ctx, doc); err != nil {
			return models.UploadURL{}, fmt.Errorf("save car document: %w", err)
		}
	}
	return upload, nil
}
