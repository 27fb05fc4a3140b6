// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/internal/validators"
	"github.com/MKhiriev/autobrain/models"
)

// DocumentValidationService checks every call against the authenticated
// user stored in the context before delegating to the wrapped service.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewEntityValidator(),
	}
}

func (v *DocumentValidationService) Wrap(inner DocumentService) DocumentService {
	v.inner = inner
	return v
}

func (v *DocumentValidationService) Put(ctx context.Context, doc models.RemoteDocument) (models.RemoteDocument, error) {
	userID, err := v.scope(ctx, doc.UserID)
	if err != nil {
		return models.RemoteDocument{}, err
	}
	doc.UserID = userID

	if err := v.validator.Validate(ctx, doc); err != nil {
		return models.RemoteDocument{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := checkBodyOwner(doc); err != nil {
		return models.RemoteDocument{}, err
	}

	return v.inner.Put(ctx, doc)
}

func (v *DocumentValidationService) List(ctx context.Context, userID, collection string) ([]models.RemoteDocument, error) {
	userID, err := v.scope(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !models.IsSyncedCollection(collection) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidCollection)
	}

	return v.inner.List(ctx, userID, collection)
}

func (v *DocumentValidationService) Get(ctx context.Context, userID, collection, id string) (models.RemoteDocument, error) {
	userID, err := v.scope(ctx, userID)
	if err != nil {
		return models.RemoteDocument{}, err
	}
	if err := v.validateAddress(ctx, userID, collection, id); err != nil {
		return models.RemoteDocument{}, err
	}

	return v.inner.Get(ctx, userID, collection, id)
}

func (v *DocumentValidationService) Delete(ctx context.Context, userID, collection, id string) error {
	userID, err := v.scope(ctx, userID)
	if err != nil {
		return err
	}
	if err := v.validateAddress(ctx, userID, collection, id); err != nil {
		return err
	}

	return v.inner.Delete(ctx, userID, collection, id)
}

// scope resolves the user a call acts for. An empty userID means the
// authenticated user; any other value must match it.
func (v *DocumentValidationService) scope(ctx context.Context, userID string) (string, error) {
	authed, ok := utils.GetUserIDFromContext(ctx)
	if !ok || authed == "" {
		return "", ErrUnauthenticated
	}
	if userID != "" && userID != authed {
		return "", ErrWrongUserScope
	}
	return authed, nil
}

func (v *DocumentValidationService) validateAddress(ctx context.Context, userID, collection, id string) error {
	doc := models.RemoteDocument{UserID: userID, Collection: collection, ID: id}
	err := v.validator.Validate(ctx, doc, validators.FieldUserID, validators.FieldCollection, validators.FieldID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// checkBodyOwner rejects a body whose own id or user_id contradicts the
// address it is stored under.
func checkBodyOwner(doc models.RemoteDocument) error {
	var head struct {
		ID     *string `json:"id"`
		UserID *string `json:"user_id"`
	}
	if err := json.Unmarshal(doc.Body, &head); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidBody)
	}
	if head.UserID != nil && *head.UserID != doc.UserID {
		return ErrWrongUserScope
	}
	if head.ID != nil && *head.ID != doc.ID {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
	}
	return nil
}
