// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/autobrain/internal/adapter"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/scoring"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/internal/validators"
	"github.com/MKhiriev/autobrain/models"
)

// AnalysisInput is a finished audio or video analysis of a car.
type AnalysisInput struct {
	UserID          string
	CarID           string
	Kind            models.DiagnosticKind
	Classifications []models.Classification
	// Retention schedules automatic deletion; zero keeps the result.
	Retention time.Duration
}

type clientDiagnosticService struct {
	storages  *store.ClientStorages
	remote    adapter.RemoteStore
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time
}

func NewClientDiagnosticService(storages *store.ClientStorages, remote adapter.RemoteStore) ClientDiagnosticService {
	return &clientDiagnosticService{
		storages:  storages,
		remote:    remote,
		validator: validators.NewEntityValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

func (s *clientDiagnosticService) RecordAnalysis(ctx context.Context, in AnalysisInput) (models.Diagnostic, error) {
	log := logger.FromContext(ctx)

	if in.UserID == "" || in.CarID == "" {
		return models.Diagnostic{}, ErrInvalidDataProvided
	}
	if in.Kind != models.DiagnosticAudio && in.Kind != models.DiagnosticVideo {
		return models.Diagnostic{}, fmt.Errorf("%w: diagnostic kind %q", ErrInvalidDataProvided, in.Kind)
	}
	if err := s.validator.Validate(ctx, in.Classifications); err != nil {
		return models.Diagnostic{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now()
	overdue, err := s.storages.Reminders.ListOverdue(ctx, in.UserID, in.CarID, now)
	if err != nil {
		return models.Diagnostic{}, fmt.Errorf("load overdue reminders: %w", err)
	}

	res := scoring.CalculateScore(in.Classifications, overdue, now)
	d := models.Diagnostic{
		ID:             s.ids.Generate(),
		UserID:         in.UserID,
		CarID:          in.CarID,
		Kind:           in.Kind,
		Score:          res.Score,
		DetectedIssues: res.DetectedIssues,
		Confidence:     res.Confidence,
		CostMin:        res.CostMin,
		CostMax:        res.CostMax,
		Urgency:        res.Urgency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Retention > 0 {
		at := now.Add(in.Retention)
		d.AutoDeleteAt = &at
	}
	d.Touch(now)

	if err := s.storages.Diagnostics(in.Kind).Save(ctx, d); err != nil {
		log.Err(err).Str("car_id", in.CarID).Str("kind", string(in.Kind)).Msg("failed to save diagnostic")
		return models.Diagnostic{}, fmt.Errorf("save diagnostic: %w", err)
	}

	log.Info().
		Str("id", d.ID).
		Str("kind", string(d.Kind)).
		Int("score", d.Score).
		Str("urgency", string(d.Urgency)).
		Msg("analysis recorded")
	return d, nil
}

func (s *clientDiagnosticService) List(ctx context.Context, userID, carID string, kind models.DiagnosticKind) ([]models.Diagnostic, error) {
	return s.storages.Diagnostics(kind).ListByCar(ctx, userID, carID)
}

func (s *clientDiagnosticService) ListForRetry(ctx context.Context, userID string, kind models.DiagnosticKind) ([]models.Diagnostic, error) {
	return s.storages.Diagnostics(kind).ListForRetry(ctx, userID, models.MaxSyncAttempts)
}

func (s *clientDiagnosticService) Delete(ctx context.Context, userID string, kind models.DiagnosticKind, id string) error {
	if err := deleteRemoteFirst(ctx, s.remote, kind.Collection(), id); err != nil {
		return err
	}
	return s.storages.Diagnostics(kind).Delete(ctx, userID, id)
}

// deleteRemoteFirst removes the remote copy so that a later pull cannot bring
// the row back. A document the server never had is fine.
func deleteRemoteFirst(ctx context.Context, remote adapter.RemoteStore, collection, id string) error {
	err := remote.DeleteDocument(ctx, collection, id)
	if err == nil || errors.Is(err, adapter.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("delete remote %s/%s: %w", collection, id, mapAdapterError(err))
}
