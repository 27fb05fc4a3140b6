// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/autobrain/models"
)

const (
	testUser  = "user-1"
	otherUser = "user-2"
)

func newDiagnostic(id, userID string, created time.Time) models.Diagnostic {
	return models.Diagnostic{
		ID:             id,
		UserID:         userID,
		CarID:          "car-1",
		Kind:           models.DiagnosticAudio,
		Score:          46,
		DetectedIssues: []models.IssueLabel{models.IssueKnocking},
		Confidence:     0.9,
		CostMin:        800,
		CostMax:        2500,
		Urgency:        models.UrgencyCritical,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

// diagnosticsWithClock returns the audio table with its clock pinned to *now.
func diagnosticsWithClock(t *testing.T, now *time.Time) *diagnosticRepository {
	t.Helper()
	s := newTestClientStorages(t)
	repo := s.AudioDiagnostics.(*diagnosticRepository)
	repo.now = fixedClock(now)
	return repo
}

func TestSyncTable_SaveAndGet(t *testing.T) {
	ctx := testContext()
	now := ms(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	repo := diagnosticsWithClock(t, &now)

	d := newDiagnostic("d1", testUser, now.Add(-time.Hour))
	require.NoError(t, repo.Save(ctx, d))

	got, err := repo.Get(ctx, testUser, "d1")
	require.NoError(t, err)

	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, models.DiagnosticAudio, got.Kind)
	assert.Equal(t, []models.IssueLabel{models.IssueKnocking}, got.DetectedIssues)
	assert.Equal(t, models.UrgencyCritical, got.Urgency)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
	assert.True(t, d.CreatedAt.Equal(got.CreatedAt))
	assert.Nil(t, got.AutoDeleteAt)

	// сохранённая строка ждёт отправки
	assert.False(t, got.IsSynced)
	assert.Equal(t, 0, got.SyncAttempts)
	assert.True(t, now.Equal(got.LocalModifiedAt))
	assert.Nil(t, got.LastSyncAttempt)
	assert.Nil(t, got.SyncError)
}

func TestSyncTable_Get_NotFound(t *testing.T) {
	ctx := testContext()
	now := time.Now()
	repo := diagnosticsWithClock(t, &now)

	require.NoError(t, repo.Save(ctx, newDiagnostic("d1", testUser, now)))

	_, err := repo.Get(ctx, testUser, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Get(ctx, otherUser, "d1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncTable_Save_ForeignOwnerIsNotOverwritten(t *testing.T) {
	ctx := testContext()
	now := time.Now()
	repo := diagnosticsWithClock(t, &now)

	require.NoError(t, repo.Save(ctx, newDiagnostic("d1", testUser, now)))

	hijack := newDiagnostic("d1", otherUser, now)
	hijack.Score = 1
	require.NoError(t, repo.Save(ctx, hijack))

	got, err := repo.Get(ctx, testUser, "d1")
	require.NoError(t, err)
	assert.Equal(t, 46, got.Score)
}

func TestSyncTable_RetryCeiling(t *testing.T) {
	ctx := testContext()
	now := ms(time.Now())
	repo := diagnosticsWithClock(t, &now)

	require.NoError(t, repo.Save(ctx,
		newDiagnostic("a", testUser, now),
		newDiagnostic("b", testUser, now),
	))

	for i := 0; i < models.MaxSyncAttempts; i++ {
		require.NoError(t, repo.RecordSyncFailure(ctx, testUser, "a", "connection refused"))
	}

	retry, err := repo.ListForRetry(ctx, testUser, models.MaxSyncAttempts)
	require.NoError(t, err)
	require.Len(t, retry, 1)
	assert.Equal(t, "b", retry[0].ID)

	// ручная синхронизация видит все строки
	unsynced, err := repo.ListUnsynced(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, unsynced, 2)

	a, err := repo.Get(ctx, testUser, "a")
	require.NoError(t, err)
	assert.Equal(t, models.MaxSyncAttempts, a.SyncAttempts)
	require.NotNil(t, a.SyncError)
	assert.Equal(t, "connection refused", *a.SyncError)
	require.NotNil(t, a.LastSyncAttempt)
	assert.True(t, now.Equal(*a.LastSyncAttempt))
}

func TestSyncTable_RecordSyncFailure_NotFound(t *testing.T) {
	ctx := testContext()
	now := time.Now()
	repo := diagnosticsWithClock(t, &now)

	err := repo.RecordSyncFailure(ctx, testUser, "missing", "boom")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncTable_MarkSynced_KeepsAttempts(t *testing.T) {
	ctx := testContext()
	now := ms(time.Now())
	repo := diagnosticsWithClock(t, &now)

	require.NoError(t, repo.Save(ctx, newDiagnostic("a", testUser, now)))
	require.NoError(t, repo.RecordSyncFailure(ctx, testUser, "a", "timeout"))
	mustMarkSynced(t, repo, "a", now)

	got, err := repo.Get(ctx, testUser, "a")
	require.NoError(t, err)
	assert.True(t, got.IsSynced)
	assert.Nil(t, got.SyncError)
	assert.Equal(t, 1, got.SyncAttempts)

	n, err := repo.CountUnsynced(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// новая локальная правка снова делает строку ожидающей, счётчик не сбрасывается
	now = now.Add(time.Minute)
	require.NoError(t, repo.Save(ctx, got))

	got, err = repo.Get(ctx, testUser, "a")
	require.NoError(t, err)
	assert.False(t, got.IsSynced)
	assert.Equal(t, 1, got.SyncAttempts)
	assert.True(t, now.Equal(got.LocalModifiedAt))
}

func TestSyncTable_MarkSynced_StaleVersion(t *testing.T) {
	tests := []struct {
		name string
		edit func(repo *diagnosticRepository, now *time.Time) error
	}{
		{
			name: "save after push",
			edit: func(repo *diagnosticRepository, now *time.Time) error {
				*now = now.Add(time.Second)
				d := newDiagnostic("a", testUser, *now)
				d.Score = 12
				return repo.Save(testContext(), d)
			},
		},
		{
			// правка в ту же миллисекунду всё равно даёт новую версию
			name: "touch within the same millisecond",
			edit: func(repo *diagnosticRepository, _ *time.Time) error {
				return repo.Touch(testContext(), testUser, "a")
			},
		},
		{
			name: "save within the same millisecond",
			edit: func(repo *diagnosticRepository, now *time.Time) error {
				return repo.Save(testContext(), newDiagnostic("a", testUser, *now))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			now := ms(time.Now())
			repo := diagnosticsWithClock(t, &now)

			require.NoError(t, repo.Save(ctx, newDiagnostic("a", testUser, now)))
			pushed, err := repo.Get(ctx, testUser, "a")
			require.NoError(t, err)

			require.NoError(t, tt.edit(repo, &now))

			marked, err := repo.MarkSynced(ctx, testUser, "a", pushed.LocalModifiedAt)
			require.NoError(t, err)
			assert.False(t, marked)

			got, err := repo.Get(ctx, testUser, "a")
			require.NoError(t, err)
			assert.False(t, got.IsSynced)
			assert.True(t, got.LocalModifiedAt.After(pushed.LocalModifiedAt))
		})
	}
}

func TestSyncTable_MarkSynced_Missing(t *testing.T) {
	ctx := testContext()
	now := time.Now()
	repo := diagnosticsWithClock(t, &now)

	marked, err := repo.MarkSynced(ctx, testUser, "missing", now)
	require.NoError(t, err)
	assert.False(t, marked)
}

func TestSyncTable_Touch(t *testing.T) {
	ctx := testContext()
	now := ms(time.Now())
	repo := diagnosticsWithClock(t, &now)

	require.NoError(t, repo.Save(ctx, newDiagnostic("a", testUser, now)))
	mustMarkSynced(t, repo, "a", now)

	now = now.Add(time.Hour)
	require.NoError(t, repo.Touch(ctx, testUser, "a"))

	got, err := repo.Get(ctx, testUser, "a")
	require.NoError(t, err)
	assert.False(t, got.IsSynced)
	assert.True(t, now.Equal(got.LocalModifiedAt))

	assert.ErrorIs(t, repo.Touch(ctx, testUser, "missing"), ErrNotFound)
}

func TestSyncTable_ApplyRemote(t *testing.T) {
	base := ms(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name        string
		local       bool
		localSynced bool
		remoteAt    time.Time
		wantApplied int
		wantSkipped int
		wantScore   int
		wantSynced  bool
	}{
		{
			name:        "new row is inserted as synced",
			remoteAt:    base,
			wantApplied: 1,
			wantScore:   90,
			wantSynced:  true,
		},
		{
			name:        "synced local row is overwritten even by an older remote",
			local:       true,
			localSynced: true,
			remoteAt:    base.Add(-time.Hour),
			wantApplied: 1,
			wantScore:   90,
			wantSynced:  true,
		},
		{
			name:        "pending local row edited later wins",
			local:       true,
			remoteAt:    base.Add(-time.Hour),
			wantSkipped: 1,
			wantScore:   46,
			wantSynced:  false,
		},
		{
			name:        "newer remote replaces pending local row",
			local:       true,
			remoteAt:    base.Add(time.Hour),
			wantApplied: 1,
			wantScore:   90,
			wantSynced:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			now := base
			repo := diagnosticsWithClock(t, &now)

			if tt.local {
				require.NoError(t, repo.Save(ctx, newDiagnostic("d1", testUser, base)))
				if tt.localSynced {
					mustMarkSynced(t, repo, "d1", base)
				}
			}

			remote := newDiagnostic("d1", testUser, base.Add(-24*time.Hour))
			remote.Score = 90
			remote.UpdatedAt = tt.remoteAt

			applied, skipped, err := repo.ApplyRemote(ctx, testUser, remote)
			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, tt.wantSkipped, skipped)

			got, err := repo.Get(ctx, testUser, "d1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantSynced, got.IsSynced)
			if tt.wantSynced {
				assert.True(t, tt.remoteAt.Equal(got.LocalModifiedAt))
			}
		})
	}
}

func TestSyncTable_ApplyRemote_SkipsForeignRows(t *testing.T) {
	ctx := testContext()
	now := time.Now()
	repo := diagnosticsWithClock(t, &now)

	applied, skipped, err := repo.ApplyRemote(ctx, testUser,
		newDiagnostic("mine", testUser, now),
		newDiagnostic("theirs", otherUser, now),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Equal(t, 1, skipped)

	_, err = repo.Get(ctx, otherUser, "theirs")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncTable_ApplyRemote_Empty(t *testing.T) {
	ctx := testContext()
	now := time.Now()
	repo := diagnosticsWithClock(t, &now)

	applied, skipped, err := repo.ApplyRemote(ctx, testUser)
	require.NoError(t, err)
	assert.Zero(t, applied)
	assert.Zero(t, skipped)
}

func TestSyncTable_Delete(t *testing.T) {
	ctx := testContext()
	now := time.Now()
	repo := diagnosticsWithClock(t, &now)

	require.NoError(t, repo.Save(ctx, newDiagnostic("d1", testUser, now)))
	require.NoError(t, repo.Delete(ctx, testUser, "d1"))

	_, err := repo.Get(ctx, testUser, "d1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, testUser, "d1"), ErrNotFound)
}

func TestSyncTable_ListByUser_Order(t *testing.T) {
	ctx := testContext()
	now := ms(time.Now())
	repo := diagnosticsWithClock(t, &now)

	require.NoError(t, repo.Save(ctx,
		newDiagnostic("old", testUser, now.Add(-2*time.Hour)),
		newDiagnostic("new", testUser, now.Add(-time.Hour)),
		newDiagnostic("foreign", otherUser, now),
	))

	list, err := repo.ListByUser(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
}

func Test_buildUpsertSuffix(t *testing.T) {
	now := time.Now()
	repo := diagnosticsWithClock(t, &now)

	local := repo.localUpsertSuffix
	assert.Contains(t, local, "ON CONFLICT(id) DO UPDATE SET")
	assert.Contains(t, local, "is_synced = 0")
	assert.NotContains(t, local, "created_at = excluded.created_at")
	assert.NotContains(t, local, "user_id = excluded.user_id,")
	assert.Contains(t, local, "WHERE audio_diagnostics.user_id = excluded.user_id")

	remote := repo.remoteUpsertSfx
	assert.Contains(t, remote, "is_synced = 1")
	assert.Contains(t, remote, "sync_error = NULL")
	assert.Contains(t, remote, "audio_diagnostics.local_modified_at <= excluded.local_modified_at")
}
