// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/store"
)

const testUser = "user-1"

// newTestStorages opens a migrated SQLite file on the pure-Go driver.
func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{
		DSN:    filepath.Join(t.TempDir(), "autobrain.db"),
		Driver: "sqlite",
	}}
	storages, err := store.NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func fixedNow() time.Time {
	return time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
}

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
