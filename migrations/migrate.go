// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds and applies the schema migrations of both sides:
// client/ holds the device SQLite schema, server/ the PostgreSQL schema of
// the remote store. Migrations are forward-only in normal operation.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

const (
	clientDir     = "client"
	serverDir     = "server"
	clientDialect = "sqlite3"
	serverDialect = "pgx"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// MigrateClient brings the local SQLite database to the latest version.
func MigrateClient(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	return migrate(ctx, db, clientDialect, clientDir, log)
}

// MigrateServer brings the remote store PostgreSQL database to the latest
// version.
func MigrateServer(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	return migrate(ctx, db, serverDialect, serverDir, log)
}

// ClientVersion reports the schema version currently applied to db.
func ClientVersion(ctx context.Context, db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := goose.SetDialect(clientDialect); err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	return goose.GetDBVersionContext(ctx, db)
}

func migrate(ctx context.Context, db *sql.DB, dialect, dir string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}
	if log == nil {
		log = logger.Nop()
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output into zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("func", "goose").Msgf(format, v...)
}

// Fatalf does not exit: a failed migration is returned to the caller as an
// error and handled there.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("func", "goose").Msgf(format, v...)
}
