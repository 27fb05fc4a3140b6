// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/internal/validators"
	"github.com/MKhiriev/autobrain/models"
)

type clientMaintenanceService struct {
	repo      store.MaintenanceRepository
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time
}

func NewClientMaintenanceService(repo store.MaintenanceRepository) ClientMaintenanceService {
	return &clientMaintenanceService{
		repo:      repo,
		validator: validators.NewEntityValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

func (s *clientMaintenanceService) Add(ctx context.Context, rec models.MaintenanceRecord) (models.MaintenanceRecord, error) {
	now := s.now()
	if rec.ID == "" {
		rec.ID = s.ids.Generate()
		rec.CreatedAt = now
	}
	if rec.ServiceDate.IsZero() {
		rec.ServiceDate = now
	}
	rec.UpdatedAt = now
	rec.Touch(now)

	if err := s.validator.Validate(ctx, rec); err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("save maintenance record: %w", err)
	}
	return rec, nil
}

func (s *clientMaintenanceService) List(ctx context.Context, userID, carID string) ([]models.MaintenanceRecord, error) {
	if carID == "" {
		return s.repo.ListByUser(ctx, userID)
	}
	return s.repo.ListByCar(ctx, userID, carID)
}
