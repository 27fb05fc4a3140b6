// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/autobrain/models"
)

// The device schema stores instants as unix milliseconds, booleans as 0/1
// and string lists as JSON text; both SQLite drivers agree on those types.

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func nullableMillis(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.UnixMilli()
}

func fromNullMillis(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromMillis(v.Int64)
	return &t
}

func fromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func encodeList[T any](list []T) (string, error) {
	if list == nil {
		return "[]", nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

func decodeList[T any](raw string) ([]T, error) {
	var list []T
	if raw == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return list, nil
}

// syncColumns are the bookkeeping columns every syncable table carries.
var syncColumns = []string{"is_synced", "sync_attempts", "last_sync_attempt", "sync_error", "local_modified_at"}

// syncScan receives the syncColumns of one row.
type syncScan struct {
	isSynced        int64
	attempts        int
	lastSyncAttempt sql.NullInt64
	syncError       sql.NullString
	localModifiedAt int64
}

func (s *syncScan) dest() []any {
	return []any{&s.isSynced, &s.attempts, &s.lastSyncAttempt, &s.syncError, &s.localModifiedAt}
}

func (s *syncScan) meta() models.SyncMeta {
	return models.SyncMeta{
		IsSynced:        s.isSynced != 0,
		SyncAttempts:    s.attempts,
		LastSyncAttempt: fromNullMillis(s.lastSyncAttempt),
		SyncError:       fromNullString(s.syncError),
		LocalModifiedAt: fromMillis(s.localModifiedAt),
	}
}
