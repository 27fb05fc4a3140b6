// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/autobrain/models"
)

// SyncRepository is the device-side table of one syncable entity.
type SyncRepository[T any] interface {
	// Save upserts locally edited rows and marks them pending.
	Save(ctx context.Context, items ...T) error
	Get(ctx context.Context, userID, id string) (T, error)
	ListByUser(ctx context.Context, userID string) ([]T, error)
	ListUnsynced(ctx context.Context, userID string) ([]T, error)
	// ListForRetry skips rows that already failed maxAttempts times.
	ListForRetry(ctx context.Context, userID string, maxAttempts int) ([]T, error)
	// MarkSynced flags the row synced if it still holds the version pushed
	// at pushedAt; marked is false when a newer local edit is pending.
	MarkSynced(ctx context.Context, userID, id string, pushedAt time.Time) (marked bool, err error)
	RecordSyncFailure(ctx context.Context, userID, id, syncErr string) error
	Touch(ctx context.Context, userID, id string) error
	// ApplyRemote writes pulled rows; see syncTable.ApplyRemote for the
	// conflict rule.
	ApplyRemote(ctx context.Context, userID string, items ...T) (applied, skipped int, err error)
	Delete(ctx context.Context, userID, id string) error
	CountUnsynced(ctx context.Context, userID string) (int, error)
}

// DiagnosticRepository stores audio or video diagnostics.
type DiagnosticRepository interface {
	SyncRepository[models.Diagnostic]
	// ListExpired returns rows of any user whose auto_delete_at passed.
	ListExpired(ctx context.Context, now time.Time) ([]models.Diagnostic, error)
	ListByCar(ctx context.Context, userID, carID string) ([]models.Diagnostic, error)
}

// MaintenanceRepository stores the service history.
type MaintenanceRepository interface {
	SyncRepository[models.MaintenanceRecord]
	ListByCar(ctx context.Context, userID, carID string) ([]models.MaintenanceRecord, error)
}

// ReminderRepository stores maintenance reminders.
type ReminderRepository interface {
	SyncRepository[models.Reminder]
	// ListDueUnnotified returns open reminders of any user that are due at
	// now and were not announced yet.
	ListDueUnnotified(ctx context.Context, now time.Time) ([]models.Reminder, error)
	MarkNotified(ctx context.Context, userID, id string) error
	ListOverdue(ctx context.Context, userID, carID string, now time.Time) ([]models.Reminder, error)
}

// AIScoreRepository stores the append-only score history.
type AIScoreRepository interface {
	SyncRepository[models.AIScore]
	// ListByCar returns the history of one car, newest first.
	ListByCar(ctx context.Context, userID, carID string) ([]models.AIScore, error)
}

// DocumentRepository stores car document metadata.
type DocumentRepository interface {
	SyncRepository[models.CarDocument]
}

// ImageCacheRepository stores the device-only car image cache and the
// per make+model fetch strategy statistics.
type ImageCacheRepository interface {
	GetCacheEntry(ctx context.Context, userID, carMake, carModel string, year int) (models.CarImageCacheEntry, error)
	PutCacheEntry(ctx context.Context, entry models.CarImageCacheEntry) error
	DeleteCacheEntry(ctx context.Context, userID, carMake, carModel string, year int) error
	TouchCacheEntry(ctx context.Context, userID, carMake, carModel string, year int, at time.Time) error
	// DeleteInvalidCacheEntries evicts entries of another cache version or
	// cached before cachedBefore.
	DeleteInvalidCacheEntries(ctx context.Context, currentVersion int, cachedBefore time.Time) (int64, error)
	GetStrategy(ctx context.Context, key string) (models.ImageFetchStrategy, error)
	PutStrategy(ctx context.Context, strategy models.ImageFetchStrategy) error
}
