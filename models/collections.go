// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Remote collection names. Each one mirrors a local table of the same name.
const (
	CollectionAudioDiagnostics   = "audio_diagnostics"
	CollectionVideoDiagnostics   = "video_diagnostics"
	CollectionMaintenanceRecords = "maintenance_records"
	CollectionReminders          = "reminders"
	CollectionAIScores           = "ai_scores"
	CollectionCarDocuments       = "car_documents"
)

// SyncedCollections lists every collection the orchestrator walks, in order.
var SyncedCollections = []string{
	CollectionAudioDiagnostics,
	CollectionVideoDiagnostics,
	CollectionMaintenanceRecords,
	CollectionReminders,
	CollectionAIScores,
	CollectionCarDocuments,
}

// IsSyncedCollection reports whether name is a known remote collection.
func IsSyncedCollection(name string) bool {
	for _, c := range SyncedCollections {
		if c == name {
			return true
		}
	}
	return false
}
