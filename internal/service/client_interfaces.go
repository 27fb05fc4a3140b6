// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/autobrain/models"
)

// ClientSyncService keeps the local store and the remote collections in step.
type ClientSyncService interface {
	// SyncEntity pushes the pending rows of one collection, then pulls the
	// remote collection back. Push failures are recorded per row and do
	// not stop the batch; every failure ends up in the returned error.
	SyncEntity(ctx context.Context, userID, collection string, mode models.SyncMode) (models.SyncReport, error)

	// SyncAll runs SyncEntity over every synced collection in order.
	SyncAll(ctx context.Context, userID string, mode models.SyncMode) ([]models.SyncReport, error)

	// PendingCounts returns the number of unsynced rows per collection.
	PendingCounts(ctx context.Context, userID string) (map[string]int, error)

	// Status returns a snapshot of the orchestrator state.
	Status() models.SyncStatus
}

// ClientDiagnosticService records scored audio and video analyses.
type ClientDiagnosticService interface {
	// RecordAnalysis scores classifications against the car's overdue
	// reminders and stores the result as a pending Diagnostic.
	RecordAnalysis(ctx context.Context, in AnalysisInput) (models.Diagnostic, error)
	List(ctx context.Context, userID, carID string, kind models.DiagnosticKind) ([]models.Diagnostic, error)
	// ListForRetry returns pending diagnostics still under the retry ceiling.
	ListForRetry(ctx context.Context, userID string, kind models.DiagnosticKind) ([]models.Diagnostic, error)
	// Delete removes the remote copy first, then the local row.
	Delete(ctx context.Context, userID string, kind models.DiagnosticKind, id string) error
}

// ClientMaintenanceService manages the service history.
type ClientMaintenanceService interface {
	Add(ctx context.Context, rec models.MaintenanceRecord) (models.MaintenanceRecord, error)
	List(ctx context.Context, userID, carID string) ([]models.MaintenanceRecord, error)
}

// ClientReminderService manages reminders and their notifications.
type ClientReminderService interface {
	Create(ctx context.Context, r models.Reminder) (models.Reminder, error)
	// Complete closes the reminder. Completing before the due date is allowed.
	Complete(ctx context.Context, userID, id string) (models.Reminder, error)
	List(ctx context.Context, userID string) ([]models.Reminder, error)
	Overdue(ctx context.Context, userID, carID string) ([]models.Reminder, error)
	// NotifyDue announces due reminders of every user once and returns how
	// many were announced.
	NotifyDue(ctx context.Context) (int, error)
}

// ClientDocumentService manages car document metadata and uploads.
type ClientDocumentService interface {
	Create(ctx context.Context, doc models.CarDocument) (models.CarDocument, error)
	List(ctx context.Context, userID string) ([]models.CarDocument, error)
	// RequestUpload asks the server for a presigned upload URL and stores the
	// returned file key on the document.
	RequestUpload(ctx context.Context, userID, id string) (models.UploadURL, error)
}

// ClientAIScoreService produces composite health assessments.
type ClientAIScoreService interface {
	// Generate computes and stores a new AIScore for car. A car without make,
	// model or year fails with validators.ErrMissingCarFields. A failing or
	// malformed model answer degrades to a zero adjustment.
	Generate(ctx context.Context, userID string, car models.Car, signals *models.MarketSignals) (models.AIScore, error)
	// History lists the scores of a car, newest first.
	History(ctx context.Context, userID, carID string) ([]models.AIScore, error)
}

// ClientImageService resolves car pictures through the device cache.
type ClientImageService interface {
	// FetchImageURL never fails: when nothing can be resolved it returns the
	// placeholder URL, which is not cached.
	FetchImageURL(ctx context.Context, userID, carMake, carModel string, year int) string
}

// ClientCleanupService enforces retention on the device.
type ClientCleanupService interface {
	// Cleanup deletes expired diagnostics (remote copy first) and evicts
	// stale image cache entries.
	Cleanup(ctx context.Context) (CleanupReport, error)
}
