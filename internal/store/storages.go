// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/migrations"
)

// Storages groups the server-side repositories.
type Storages struct {
	DB         *DB
	Documents  RemoteDocumentRepository
	ImageCache ImageCache
}

// NewStorages connects to PostgreSQL, applies the server migrations, connects
// the image cache and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, cacheCfg config.Cache, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := migrations.MigrateServer(ctx, db.DB, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	cache, err := NewImageCache(ctx, cacheCfg, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("image cache connection error: %w", err)
	}

	return &Storages{
		DB:         db,
		Documents:  NewRemoteDocumentRepository(db),
		ImageCache: cache,
	}, nil
}

func (s *Storages) Close() error {
	return errors.Join(s.ImageCache.Close(), s.DB.Close())
}
