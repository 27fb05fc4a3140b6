// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/notify"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/internal/validators"
	"github.com/MKhiriev/autobrain/models"
)

type clientReminderService struct {
	repo      store.ReminderRepository
	notifier  notify.Notifier
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time
}

func NewClientReminderService(repo store.ReminderRepository, notifier notify.Notifier) ClientReminderService {
	return &clientReminderService{
		repo:      repo,
		notifier:  notifier,
		validator: validators.NewEntityValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

func (s *clientReminderService) Create(ctx context.Context, r models.Reminder) (models.Reminder, error) {
	now := s.now()
	if r.ID == "" {
		r.ID = s.ids.Generate()
	}
	if r.Priority == "" {
		r.Priority = models.PriorityMedium
	}
	r.CreatedAt = now
	r.UpdatedAt = now
	r.Touch(now)

	if err := s.validator.Validate(ctx, r); err != nil {
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return models.Reminder{}, fmt.Errorf("save reminder: %w", err)
	}
	return r, nil
}

func (s *clientReminderService) Complete(ctx context.Context, userID, id string) (models.Reminder, error) {
	r, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("load reminder %s: %w", id, err)
	}
	if r.IsCompleted {
		return r, nil
	}

	now := s.now()
	r.IsCompleted = true
	r.CompletedAt = &now
	r.UpdatedAt = now
	r.Touch(now)

	if err := s.repo.Save(ctx, r); err != nil {
		return models.Reminder{}, fmt.Errorf("save reminder: %w", err)
	}
	return r, nil
}

func (s *clientReminderService) List(ctx context.Context, userID string) ([]models.Reminder, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *clientReminderService) Overdue(ctx context.Context, userID, carID string) ([]models.Reminder, error) {
	return s.repo.ListOverdue(ctx, userID, carID, s.now())
}

func (s *clientReminderService) NotifyDue(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.repo.ListDueUnnotified(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	var (
		sent int
		errs []error
	)
	for _, r := range due {
		err := s.notifier.Notify(ctx, notify.Notification{
			Channel: notify.ChannelReminders,
			Tag:     r.ID,
			Title:   r.Title,
			Body:    fmt.Sprintf("Due %s (%s priority)", r.DueDate.Format(time.DateOnly), r.Priority),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("notify reminder %s: %w", r.ID, err))
			continue
		}
		if err := s.repo.MarkNotified(ctx, r.UserID, r.ID); err != nil {
			errs = append(errs, fmt.Errorf("mark reminder %s notified: %w", r.ID, err))
			continue
		}
		sent++
	}

	log.Debug().Int("due", len(due)).Int("sent", sent).Msg("reminder notifications processed")
	return sent, errors.Join(errs...)
}
