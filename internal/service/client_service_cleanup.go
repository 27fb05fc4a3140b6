// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/autobrain/internal/adapter"
	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/store"
	"github.com/MKhiriev/autobrain/models"
)

// CleanupReport counts what one cleanup pass removed.
type CleanupReport struct {
	DiagnosticsDeleted int
	ImagesEvicted      int64
}

type clientCleanupService struct {
	storages *store.ClientStorages
	remote   adapter.RemoteStore
	imageTTL time.Duration
	now      func() time.Time
}

func NewClientCleanupService(storages *store.ClientStorages, remote adapter.RemoteStore, cfg config.ClientImages) ClientCleanupService {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = config.DefaultImageCacheTTL
	}
	return &clientCleanupService{
		storages: storages,
		remote:   remote,
		imageTTL: ttl,
		now:      time.Now,
	}
}

func (s *clientCleanupService) Cleanup(ctx context.Context) (CleanupReport, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	var (
		report CleanupReport
		errs   []error
	)
	for _, kind := range []models.DiagnosticKind{models.DiagnosticAudio, models.DiagnosticVideo} {
		repo := s.storages.Diagnostics(kind)

		expired, err := repo.ListExpired(ctx, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("list expired %s diagnostics: %w", kind, err))
			continue
		}
		for _, d := range expired {
			// the local row stays until the remote copy is gone
			if err := deleteRemoteFirst(ctx, s.remote, kind.Collection(), d.ID); err != nil {
				errs = append(errs, err)
				continue
			}
			if err := repo.Delete(ctx, d.UserID, d.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
				errs = append(errs, fmt.Errorf("delete expired diagnostic %s: %w", d.ID, err))
				continue
			}
			report.DiagnosticsDeleted++
		}
	}

	evicted, err := s.storages.Images.DeleteInvalidCacheEntries(ctx, CurrentCacheVersion, now.Add(-s.imageTTL))
	if err != nil {
		errs = append(errs, fmt.Errorf("evict image cache: %w", err))
	}
	report.ImagesEvicted = evicted

	log.Info().
		Int("diagnostics_deleted", report.DiagnosticsDeleted).
		Int64("images_evicted", report.ImagesEvicted).
		Msg("cleanup finished")
	return report, errors.Join(errs...)
}
