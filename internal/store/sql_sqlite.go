// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
)

const (
	driverMattn   = "sqlite3"
	driverModernc = "sqlite"
)

// NewConnectSQLite opens the device database. cfg.Driver picks the cgo
// driver (sqlite3, default) or the pure-Go one (sqlite).
//
// SQLite allows one writer at a time, so the pool is capped at a single
// connection; pragmas set here therefore apply to every statement.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = driverMattn
	}
	if driver != driverMattn && driver != driverModernc {
		return nil, fmt.Errorf("unsupported sqlite driver %q", driver)
	}

	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	db, err := newSQLiteDB(ctx, conn, log)
	if err != nil {
		conn.Close()
		return nil, err
	}

	log.Debug().Str("func", "NewConnectSQLite").Str("driver", driver).Msg("connected to database successfully")
	return db, nil
}

// newSQLiteDB wraps an open SQLite handle, applying connection pragmas.
func newSQLiteDB(ctx context.Context, conn *sql.DB, log *logger.Logger) (*DB, error) {
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Str("pragma", pragma).Msg("error applying pragma")
			return nil, fmt.Errorf("error applying %q: %w", pragma, err)
		}
	}

	return &DB{
		DB:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == "" {
		return fmt.Errorf("empty database path")
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
