// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/autobrain/internal/mock"
	"github.com/MKhiriev/autobrain/internal/notify"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/models"
)

func newTestReminderSvc(t *testing.T, ctrl *gomock.Controller) (*clientReminderService, *store.ClientStorages, *mock.MockNotifier) {
	t.Helper()
	storages := newTestStorages(t)
	notifier := mock.NewMockNotifier(ctrl)

	svc := NewClientReminderService(storages.Reminders, notifier).(*clientReminderService)
	svc.now = clockAt(fixedNow())
	return svc, storages, notifier
}

func TestClientReminderService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestReminderSvc(t, ctrl)
	ctx := context.Background()

	r, err := svc.Create(ctx, models.Reminder{
		UserID: testUser, CarID: "car-1", Title: "Brake pads", DueDate: fixedNow().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, models.PriorityMedium, r.Priority)
	assert.False(t, r.IsSynced)

	_, err = svc.Create(ctx, models.Reminder{UserID: testUser, CarID: "car-1", DueDate: fixedNow()})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientReminderService_CompleteEarly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storages, _ := newTestReminderSvc(t, ctrl)
	ctx := context.Background()

	r, err := svc.Create(ctx, models.Reminder{
		UserID: testUser, CarID: "car-1", Title: "Tyres", DueDate: fixedNow().Add(10 * 24 * time.Hour),
	})
	require.NoError(t, err)

	done, err := svc.Complete(ctx, testUser, r.ID)
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)
	require.NotNil(t, done.CompletedAt)
	assert.True(t, done.CompletedAt.Before(done.DueDate))

	stored, err := storages.Reminders.Get(ctx, testUser, r.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted)

	_, err = svc.Complete(ctx, testUser, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClientReminderService_Overdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestReminderSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Reminder{UserID: testUser, CarID: "car-1", Title: "Late", DueDate: fixedNow().Add(-48 * time.Hour)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.Reminder{UserID: testUser, CarID: "car-1", Title: "Soon", DueDate: fixedNow().Add(48 * time.Hour)})
	require.NoError(t, err)

	overdue, err := svc.Overdue(ctx, testUser, "car-1")
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "Late", overdue[0].Title)

	all, err := svc.List(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClientReminderService_NotifyDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storages, notifier := newTestReminderSvc(t, ctrl)
	ctx := context.Background()

	due, err := svc.Create(ctx, models.Reminder{UserID: testUser, CarID: "car-1", Title: "Due", DueDate: fixedNow().Add(-time.Hour)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.Reminder{UserID: testUser, CarID: "car-1", Title: "Later", DueDate: fixedNow().Add(time.Hour)})
	require.NoError(t, err)

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n notify.Notification) error {
			assert.Equal(t, notify.ChannelReminders, n.Channel)
			assert.Equal(t, due.ID, n.Tag)
			assert.Equal(t, "Due", n.Title)
			return nil
		})

	sent, err := svc.NotifyDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	stored, err := storages.Reminders.Get(ctx, testUser, due.ID)
	require.NoError(t, err)
	assert.True(t, stored.NotificationSent)
	assert.False(t, stored.IsSynced)

	// повторно не уведомляем
	sent, err = svc.NotifyDue(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestClientReminderService_NotifyDue_FailureLeavesReminderPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storages, notifier := newTestReminderSvc(t, ctrl)
	ctx := context.Background()

	r, err := svc.Create(ctx, models.Reminder{UserID: testUser, CarID: "car-1", Title: "Due", DueDate: fixedNow().Add(-time.Hour)})
	require.NoError(t, err)

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("channel blocked"))

	sent, err := svc.NotifyDue(ctx)
	require.Error(t, err)
	assert.Zero(t, sent)

	stored, err := storages.Reminders.Get(ctx, testUser, r.ID)
	require.NoError(t, err)
	assert.False(t, stored.NotificationSent)
}
