// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/autobrain/internal/adapter"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/models"
)

// collectionSyncer moves the rows of one collection in both directions.
type collectionSyncer interface {
	push(ctx context.Context, userID string, mode models.SyncMode, report *models.SyncReport) error
	pull(ctx context.Context, userID string, report *models.SyncReport) error
	pending(ctx context.Context, userID string) (int, error)
}

type entitySyncer[T any] struct {
	collection string
	repo       store.SyncRepository[T]
	remote     adapter.RemoteStore
	id         func(T) string
	// version is the local_modified_at the row was read with.
	version func(T) time.Time
}

func (s *entitySyncer[T]) push(ctx context.Context, userID string, mode models.SyncMode, report *models.SyncReport) error {
	log := logger.FromContext(ctx)

	var (
		items []T
		err   error
	)
	if mode == models.SyncModeBackground {
		items, err = s.repo.ListForRetry(ctx, userID, models.MaxSyncAttempts)
	} else {
		items, err = s.repo.ListUnsynced(ctx, userID)
	}
	if err != nil {
		return fmt.Errorf("list pending %s: %w", s.collection, err)
	}

	var errs []error
	for _, item := range items {
		id := s.id(item)

		_, err := s.remote.PutDocument(ctx, s.collection, id, item)
		if err == nil {
			report.Pushed++
			marked, err := s.repo.MarkSynced(ctx, userID, id, s.version(item))
			if err != nil {
				errs = append(errs, fmt.Errorf("mark %s/%s synced: %w", s.collection, id, err))
				continue
			}
			if !marked {
				// edited while the push was in flight; the next pass sends the new version
				log.Debug().Str("collection", s.collection).Str("id", id).Msg("row changed during push, left pending")
			}
			continue
		}

		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrUnauthenticated) {
			// every remaining row would fail the same way
			return errors.Join(append(errs, mapped)...)
		}

		report.Failed++
		errs = append(errs, fmt.Errorf("push %s/%s: %w", s.collection, id, mapped))
		log.Warn().Err(err).Str("collection", s.collection).Str("id", id).Msg("push failed")

		if rerr := s.repo.RecordSyncFailure(ctx, userID, id, err.Error()); rerr != nil {
			errs = append(errs, fmt.Errorf("record failure of %s/%s: %w", s.collection, id, rerr))
		}
	}

	return errors.Join(errs...)
}

func (s *entitySyncer[T]) pull(ctx context.Context, userID string, report *models.SyncReport) error {
	docs, err := s.remote.ListDocuments(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("pull %s: %w", s.collection, mapAdapterError(err))
	}

	var errs []error
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := json.Unmarshal(doc.Body, &item); err != nil {
			report.Skipped++
			errs = append(errs, fmt.Errorf("decode %s/%s: %w", s.collection, doc.ID, err))
			continue
		}
		items = append(items, item)
	}

	applied, skipped, err := s.repo.ApplyRemote(ctx, userID, items...)
	if err != nil {
		errs = append(errs, fmt.Errorf("apply %s: %w", s.collection, err))
	}
	report.Pulled += applied
	report.Skipped += skipped

	return errors.Join(errs...)
}

func (s *entitySyncer[T]) pending(ctx context.Context, userID string) (int, error) {
	return s.repo.CountUnsynced(ctx, userID)
}

type clientSyncService struct {
	remote  adapter.RemoteStore
	syncers map[string]collectionSyncer
	now     func() time.Time
	logger  *logger.Logger

	// run serializes passes; a second trigger waits for the first one.
	run sync.Mutex

	mu     sync.RWMutex
	status models.SyncStatus
}

func NewClientSyncService(storages *store.ClientStorages, remote adapter.RemoteStore, log *logger.Logger) ClientSyncService {
	return &clientSyncService{
		remote: remote,
		syncers: map[string]collectionSyncer{
			models.CollectionAudioDiagnostics: &entitySyncer[models.Diagnostic]{
				collection: models.CollectionAudioDiagnostics, repo: storages.AudioDiagnostics, remote: remote,
				id:      func(d models.Diagnostic) string { return d.ID },
				version: func(d models.Diagnostic) time.Time { return d.LocalModifiedAt },
			},
			models.CollectionVideoDiagnostics: &entitySyncer[models.Diagnostic]{
				collection: models.CollectionVideoDiagnostics, repo: storages.VideoDiagnostics, remote: remote,
				id:      func(d models.Diagnostic) string { return d.ID },
				version: func(d models.Diagnostic) time.Time { return d.LocalModifiedAt },
			},
			models.CollectionMaintenanceRecords: &entitySyncer[models.MaintenanceRecord]{
				collection: models.CollectionMaintenanceRecords, repo: storages.Maintenance, remote: remote,
				id:      func(r models.MaintenanceRecord) string { return r.ID },
				version: func(r models.MaintenanceRecord) time.Time { return r.LocalModifiedAt },
			},
			models.CollectionReminders: &entitySyncer[models.Reminder]{
				collection: models.CollectionReminders, repo: storages.Reminders, remote: remote,
				id:      func(r models.Reminder) string { return r.ID },
				version: func(r models.Reminder) time.Time { return r.LocalModifiedAt },
			},
			models.CollectionAIScores: &entitySyncer[models.AIScore]{
				collection: models.CollectionAIScores, repo: storages.AIScores, remote: remote,
				id:      func(s models.AIScore) string { return s.ID },
				version: func(s models.AIScore) time.Time { return s.LocalModifiedAt },
			},
			models.CollectionCarDocuments: &entitySyncer[models.CarDocument]{
				collection: models.CollectionCarDocuments, repo: storages.Documents, remote: remote,
				id:      func(d models.CarDocument) string { return d.ID },
				version: func(d models.CarDocument) time.Time { return d.LocalModifiedAt },
			},
		},
		now:    time.Now,
		logger: log,
		status: models.SyncStatus{State: models.SyncStateIdle},
	}
}

func (s *clientSyncService) SyncEntity(ctx context.Context, userID, collection string, mode models.SyncMode) (models.SyncReport, error) {
	syncer, ok := s.syncers[collection]
	if !ok {
		return models.SyncReport{}, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	s.run.Lock()
	defer s.run.Unlock()

	if err := s.begin(); err != nil {
		return models.SyncReport{Collection: collection}, err
	}
	report, err := s.syncOne(ctx, userID, collection, syncer, mode)
	s.finish(err)

	return report, err
}

func (s *clientSyncService) SyncAll(ctx context.Context, userID string, mode models.SyncMode) ([]models.SyncReport, error) {
	s.run.Lock()
	defer s.run.Unlock()

	if err := s.begin(); err != nil {
		return nil, err
	}

	reports := make([]models.SyncReport, 0, len(models.SyncedCollections))
	var errs []error
	for _, collection := range models.SyncedCollections {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		report, err := s.syncOne(ctx, userID, collection, s.syncers[collection], mode)
		reports = append(reports, report)
		if err != nil {
			errs = append(errs, err)
			if errors.Is(err, ErrUnauthenticated) {
				break
			}
		}
	}

	err := errors.Join(errs...)
	s.finish(err)

	return reports, err
}

func (s *clientSyncService) syncOne(ctx context.Context, userID, collection string, syncer collectionSyncer, mode models.SyncMode) (models.SyncReport, error) {
	log := logger.FromContext(ctx)
	report := models.SyncReport{Collection: collection}

	pushErr := syncer.push(ctx, userID, mode, &report)
	if errors.Is(pushErr, ErrUnauthenticated) {
		return report, pushErr
	}
	pullErr := syncer.pull(ctx, userID, &report)

	err := errors.Join(pushErr, pullErr)
	log.Debug().
		Str("collection", collection).
		Str("mode", mode.String()).
		Int("pushed", report.Pushed).
		Int("failed", report.Failed).
		Int("pulled", report.Pulled).
		Int("skipped", report.Skipped).
		Bool("ok", err == nil).
		Msg("collection synced")

	return report, err
}

func (s *clientSyncService) PendingCounts(ctx context.Context, userID string) (map[string]int, error) {
	counts := make(map[string]int, len(s.syncers))
	for _, collection := range models.SyncedCollections {
		n, err := s.syncers[collection].pending(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("count pending %s: %w", collection, err)
		}
		counts[collection] = n
	}
	return counts, nil
}

func (s *clientSyncService) Status() models.SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// begin must be called with s.run held.
func (s *clientSyncService) begin() error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.LastRunAt = &now
	if s.remote.Token() == "" {
		s.status.State = models.SyncStateFailed
		s.status.LastError = ErrUnauthenticated.Error()
		return ErrUnauthenticated
	}
	s.status.State = models.SyncStateRunning
	return nil
}

func (s *clientSyncService) finish(err error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.status.State = models.SyncStateFailed
		s.status.LastError = err.Error()
		s.logger.Warn().Err(err).Msg("sync pass finished with errors")
		return
	}
	s.status.State = models.SyncStateIdle
	s.status.LastError = ""
	s.status.LastSuccessAt = &now
}
