// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/migrations"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newTestClientStorages opens an in-memory SQLite database on the pure-Go
// driver and migrates it to the latest schema.
func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	ctx := testContext()

	conn, err := sql.Open(driverModernc, ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	db, err := newSQLiteDB(ctx, conn, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, migrations.MigrateClient(ctx, conn, logger.Nop()))

	return newClientStorages(db)
}

// fixedClock returns a clock that reports *now and lets the test move it.
func fixedClock(now *time.Time) func() time.Time {
	return func() time.Time { return *now }
}

func ms(t time.Time) time.Time {
	return t.Truncate(time.Millisecond).UTC()
}

type syncMarker interface {
	MarkSynced(ctx context.Context, userID, id string, pushedAt time.Time) (bool, error)
}

// mustMarkSynced flags a row that holds the version saved at pushedAt.
func mustMarkSynced(t *testing.T, repo syncMarker, id string, pushedAt time.Time) {
	t.Helper()
	marked, err := repo.MarkSynced(testContext(), testUser, id, pushedAt)
	require.NoError(t, err)
	require.True(t, marked)
}
