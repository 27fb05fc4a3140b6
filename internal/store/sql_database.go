// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/autobrain/internal/logger"
)

// DB is a *sql.DB bound to one SQL dialect. builder emits placeholders of
// that dialect; errorClassificator is nil for SQLite.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator tells transient driver failures from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Retryable reports whether err is a transient failure of the underlying
// database.
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil || err == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
