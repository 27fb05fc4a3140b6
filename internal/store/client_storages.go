// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/migrations"
	"github.com/MKhiriev/autobrain/models"
)

// ClientStorages groups the device-side repositories. All of them share one
// SQLite handle.
type ClientStorages struct {
	DB *DB

	AudioDiagnostics DiagnosticRepository
	VideoDiagnostics DiagnosticRepository
	Maintenance      MaintenanceRepository
	Reminders        ReminderRepository
	AIScores         AIScoreRepository
	Documents        DocumentRepository
	Images           ImageCacheRepository
}

// NewClientStorages opens the local database, applies pending migrations and
// wires every repository. A migration failure is returned as is; the caller
// is expected to stop.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := migrations.MigrateClient(ctx, db.DB, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db), nil
}

func newClientStorages(db *DB) *ClientStorages {
	return &ClientStorages{
		DB:               db,
		AudioDiagnostics: NewDiagnosticRepository(db, models.DiagnosticAudio),
		VideoDiagnostics: NewDiagnosticRepository(db, models.DiagnosticVideo),
		Maintenance:      NewMaintenanceRepository(db),
		Reminders:        NewReminderRepository(db),
		AIScores:         NewAIScoreRepository(db),
		Documents:        NewDocumentRepository(db),
		Images:           NewImageCacheRepository(db),
	}
}

// Diagnostics returns the repository of the given diagnostic kind.
func (s *ClientStorages) Diagnostics(kind models.DiagnosticKind) DiagnosticRepository {
	if kind == models.DiagnosticVideo {
		return s.VideoDiagnostics
	}
	return s.AudioDiagnostics
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
