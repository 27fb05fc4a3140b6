// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MaxSyncAttempts is the retry ceiling for background pushes. Rows whose
// SyncAttempts reached this value are skipped by background sync until a
// manual sync pushes them again.
const MaxSyncAttempts = 5

// SyncMeta is the per-row sync bookkeeping embedded in every syncable entity.
// It never leaves the device.
type SyncMeta struct {
	// IsSynced reports that the row was durably written to the remote store.
	IsSynced bool `json:"-"`

	// SyncAttempts counts failed push attempts. It only grows.
	SyncAttempts int `json:"-"`

	// LastSyncAttempt is the time of the latest push attempt, nil if never pushed.
	LastSyncAttempt *time.Time `json:"-"`

	// SyncError holds the text of the latest push failure.
	SyncError *string `json:"-"`

	// LocalModifiedAt is the time of the latest local edit.
	LocalModifiedAt time.Time `json:"-"`
}

// Touch marks the row as locally modified at now and pending upload.
func (m *SyncMeta) Touch(now time.Time) {
	m.LocalModifiedAt = now
	m.IsSynced = false
}

// SyncMode selects which unsynced rows a sync pass pushes.
type SyncMode int

const (
	// SyncModeManual pushes every unsynced row regardless of previous failures.
	SyncModeManual SyncMode = iota
	// SyncModeBackground pushes only rows below the MaxSyncAttempts ceiling.
	SyncModeBackground
)

func (m SyncMode) String() string {
	if m == SyncModeBackground {
		return "background"
	}
	return "manual"
}

// SyncState is the coarse state of the sync orchestrator.
type SyncState string

const (
	SyncStateIdle    SyncState = "idle"
	SyncStateRunning SyncState = "running"
	SyncStateFailed  SyncState = "failed"
)

// SyncStatus is an observable snapshot of the orchestrator, kept apart from
// any data loading state.
type SyncStatus struct {
	State         SyncState  `json:"state"`
	LastError     string     `json:"last_error,omitempty"`
	LastRunAt     *time.Time `json:"last_run_at,omitempty"`
	LastSuccessAt *time.Time `json:"last_success_at,omitempty"`
}

// SyncReport summarises one sync pass over a single collection.
type SyncReport struct {
	Collection string `json:"collection"`
	Pushed     int    `json:"pushed"`
	Failed     int    `json:"failed"`
	Pulled     int    `json:"pulled"`
	Skipped    int    `json:"skipped"`
}
