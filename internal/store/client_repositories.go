// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/autobrain/models"
)

// ── diagnostics ──────────────────────────────────────────────────────────────

var diagnosticColumns = []string{
	"id", "user_id", "car_id", "score", "detected_issues", "confidence",
	"cost_min", "cost_max", "urgency", "auto_delete_at", "created_at", "updated_at",
}

type diagnosticRepository struct {
	*syncTable[models.Diagnostic]
}

// NewDiagnosticRepository returns the table of one diagnostic kind; audio
// and video results live in separate tables.
func NewDiagnosticRepository(db *DB, kind models.DiagnosticKind) DiagnosticRepository {
	return &diagnosticRepository{newSyncTable(db, tableDef[models.Diagnostic]{
		name:    kind.Collection(),
		columns: diagnosticColumns,
		values: func(d models.Diagnostic) ([]any, error) {
			issues, err := encodeList(d.DetectedIssues)
			if err != nil {
				return nil, err
			}
			return []any{
				d.ID, d.UserID, d.CarID, d.Score, issues, d.Confidence,
				d.CostMin, d.CostMax, string(d.Urgency), nullableMillis(d.AutoDeleteAt),
				toMillis(d.CreatedAt), toMillis(d.UpdatedAt),
			}, nil
		},
		scan: func(s rowScanner) (models.Diagnostic, error) {
			var (
				d                models.Diagnostic
				issues, urgency  string
				autoDeleteAt     sql.NullInt64
				created, updated int64
				sync             syncScan
			)
			dest := append([]any{
				&d.ID, &d.UserID, &d.CarID, &d.Score, &issues, &d.Confidence,
				&d.CostMin, &d.CostMax, &urgency, &autoDeleteAt, &created, &updated,
			}, sync.dest()...)
			if err := s.Scan(dest...); err != nil {
				return d, err
			}

			list, err := decodeList[models.IssueLabel](issues)
			if err != nil {
				return d, err
			}
			d.Kind = kind
			d.DetectedIssues = list
			d.Urgency = models.Urgency(urgency)
			d.AutoDeleteAt = fromNullMillis(autoDeleteAt)
			d.CreatedAt = fromMillis(created)
			d.UpdatedAt = fromMillis(updated)
			d.SyncMeta = sync.meta()
			return d, nil
		},
		id:            func(d models.Diagnostic) string { return d.ID },
		userID:        func(d models.Diagnostic) string { return d.UserID },
		remoteVersion: func(d models.Diagnostic) time.Time { return d.UpdatedAt },
		orderBy:       "created_at DESC",
	})}
}

func (r *diagnosticRepository) ListExpired(ctx context.Context, now time.Time) ([]models.Diagnostic, error) {
	where := sq.And{
		sq.NotEq{"auto_delete_at": nil},
		sq.LtOrEq{"auto_delete_at": toMillis(now)},
	}
	return r.list(ctx, "ListExpired", where, "auto_delete_at ASC")
}

func (r *diagnosticRepository) ListByCar(ctx context.Context, userID, carID string) ([]models.Diagnostic, error) {
	return r.list(ctx, "ListByCar", sq.Eq{"user_id": userID, "car_id": carID}, "created_at DESC")
}

// ── maintenance records ─────────────────────────────────────────────────────

type maintenanceRepository struct {
	*syncTable[models.MaintenanceRecord]
}

func NewMaintenanceRepository(db *DB) MaintenanceRepository {
	return &maintenanceRepository{newSyncTable(db, tableDef[models.MaintenanceRecord]{
		name: models.CollectionMaintenanceRecords,
		columns: []string{
			"id", "user_id", "car_id", "service_type", "description", "mileage",
			"cost", "service_date", "created_at", "updated_at",
		},
		values: func(m models.MaintenanceRecord) ([]any, error) {
			return []any{
				m.ID, m.UserID, m.CarID, m.ServiceType, m.Description, m.Mileage,
				m.Cost, toMillis(m.ServiceDate), toMillis(m.CreatedAt), toMillis(m.UpdatedAt),
			}, nil
		},
		scan: func(s rowScanner) (models.MaintenanceRecord, error) {
			var (
				m                         models.MaintenanceRecord
				serviceDate, created, upd int64
				sync                      syncScan
			)
			dest := append([]any{
				&m.ID, &m.UserID, &m.CarID, &m.ServiceType, &m.Description, &m.Mileage,
				&m.Cost, &serviceDate, &created, &upd,
			}, sync.dest()...)
			if err := s.Scan(dest...); err != nil {
				return m, err
			}
			m.ServiceDate = fromMillis(serviceDate)
			m.CreatedAt = fromMillis(created)
			m.UpdatedAt = fromMillis(upd)
			m.SyncMeta = sync.meta()
			return m, nil
		},
		id:            func(m models.MaintenanceRecord) string { return m.ID },
		userID:        func(m models.MaintenanceRecord) string { return m.UserID },
		remoteVersion: func(m models.MaintenanceRecord) time.Time { return m.UpdatedAt },
		orderBy:       "service_date DESC",
	})}
}

func (r *maintenanceRepository) ListByCar(ctx context.Context, userID, carID string) ([]models.MaintenanceRecord, error) {
	return r.list(ctx, "ListByCar", sq.Eq{"user_id": userID, "car_id": carID}, "service_date DESC")
}

// ── reminders ───────────────────────────────────────────────────────────────

type reminderRepository struct {
	*syncTable[models.Reminder]
}

func NewReminderRepository(db *DB) ReminderRepository {
	return &reminderRepository{newSyncTable(db, tableDef[models.Reminder]{
		name: models.CollectionReminders,
		columns: []string{
			"id", "user_id", "car_id", "title", "type", "due_date", "priority",
			"is_completed", "completed_at", "notification_sent", "created_at", "updated_at",
		},
		values: func(r models.Reminder) ([]any, error) {
			return []any{
				r.ID, r.UserID, r.CarID, r.Title, r.Type, toMillis(r.DueDate), string(r.Priority),
				boolToInt(r.IsCompleted), nullableMillis(r.CompletedAt), boolToInt(r.NotificationSent),
				toMillis(r.CreatedAt), toMillis(r.UpdatedAt),
			}, nil
		},
		scan: func(s rowScanner) (models.Reminder, error) {
			var (
				r                     models.Reminder
				dueDate, created, upd int64
				priority              string
				isCompleted, notified int64
				completedAt           sql.NullInt64
				sync                  syncScan
			)
			dest := append([]any{
				&r.ID, &r.UserID, &r.CarID, &r.Title, &r.Type, &dueDate, &priority,
				&isCompleted, &completedAt, &notified, &created, &upd,
			}, sync.dest()...)
			if err := s.Scan(dest...); err != nil {
				return r, err
			}
			r.DueDate = fromMillis(dueDate)
			r.Priority = models.ReminderPriority(priority)
			r.IsCompleted = isCompleted != 0
			r.CompletedAt = fromNullMillis(completedAt)
			r.NotificationSent = notified != 0
			r.CreatedAt = fromMillis(created)
			r.UpdatedAt = fromMillis(upd)
			r.SyncMeta = sync.meta()
			return r, nil
		},
		id:            func(r models.Reminder) string { return r.ID },
		userID:        func(r models.Reminder) string { return r.UserID },
		remoteVersion: func(r models.Reminder) time.Time { return r.UpdatedAt },
		orderBy:       "due_date ASC",
	})}
}

func (r *reminderRepository) ListDueUnnotified(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	where := sq.And{
		sq.Eq{"is_completed": 0, "notification_sent": 0},
		sq.LtOrEq{"due_date": toMillis(now)},
	}
	return r.list(ctx, "ListDueUnnotified", where, "due_date ASC")
}

// MarkNotified is a field edit: the reminder becomes pending upload.
func (r *reminderRepository) MarkNotified(ctx context.Context, userID, id string) error {
	now := toMillis(r.now())
	n, err := r.exec(ctx, "MarkNotified", r.builder.Update(r.def.name).
		Set("notification_sent", 1).
		Set("updated_at", now).
		Set("is_synced", 0).
		Set("local_modified_at", r.nextVersion()).
		Where(sq.Eq{"user_id": userID, "id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListOverdue returns open reminders of userID past due at now. An empty
// carID covers every car.
func (r *reminderRepository) ListOverdue(ctx context.Context, userID, carID string, now time.Time) ([]models.Reminder, error) {
	eq := sq.Eq{"user_id": userID, "is_completed": 0}
	if carID != "" {
		eq["car_id"] = carID
	}
	return r.list(ctx, "ListOverdue", sq.And{eq, sq.Lt{"due_date": toMillis(now)}}, "due_date ASC")
}

// ── AI scores ───────────────────────────────────────────────────────────────

type aiScoreRepository struct {
	*syncTable[models.AIScore]
}

func NewAIScoreRepository(db *DB) AIScoreRepository {
	return &aiScoreRepository{newSyncTable(db, tableDef[models.AIScore]{
		name: models.CollectionAIScores,
		columns: []string{
			"id", "user_id", "car_id", "overall_score", "technical_score", "maintenance_score",
			"market_score", "llm_adjustment", "observations", "recommendations", "summary",
			"created_at", "updated_at",
		},
		values: func(a models.AIScore) ([]any, error) {
			observations, err := encodeList(a.Observations)
			if err != nil {
				return nil, err
			}
			recommendations, err := encodeList(a.Recommendations)
			if err != nil {
				return nil, err
			}
			return []any{
				a.ID, a.UserID, a.CarID, a.OverallScore, a.TechnicalScore, a.MaintenanceScore,
				a.MarketScore, a.LLMAdjustment, observations, recommendations, a.Summary,
				toMillis(a.CreatedAt), toMillis(a.CreatedAt),
			}, nil
		},
		scan: func(s rowScanner) (models.AIScore, error) {
			var (
				a                     models.AIScore
				observations, recomms string
				created, updated      int64
				sync                  syncScan
			)
			dest := append([]any{
				&a.ID, &a.UserID, &a.CarID, &a.OverallScore, &a.TechnicalScore, &a.MaintenanceScore,
				&a.MarketScore, &a.LLMAdjustment, &observations, &recomms, &a.Summary,
				&created, &updated,
			}, sync.dest()...)
			if err := s.Scan(dest...); err != nil {
				return a, err
			}

			var err error
			if a.Observations, err = decodeList[string](observations); err != nil {
				return a, err
			}
			if a.Recommendations, err = decodeList[string](recomms); err != nil {
				return a, err
			}
			a.CreatedAt = fromMillis(created)
			a.SyncMeta = sync.meta()
			return a, nil
		},
		id:            func(a models.AIScore) string { return a.ID },
		userID:        func(a models.AIScore) string { return a.UserID },
		remoteVersion: func(a models.AIScore) time.Time { return a.CreatedAt },
		orderBy:       "created_at DESC",
	})}
}

func (r *aiScoreRepository) ListByCar(ctx context.Context, userID, carID string) ([]models.AIScore, error) {
	return r.list(ctx, "ListByCar", sq.Eq{"user_id": userID, "car_id": carID}, "created_at DESC")
}

// ── car documents ───────────────────────────────────────────────────────────

type documentRepository struct {
	*syncTable[models.CarDocument]
}

func NewDocumentRepository(db *DB) DocumentRepository {
	return &documentRepository{newSyncTable(db, tableDef[models.CarDocument]{
		name: models.CollectionCarDocuments,
		columns: []string{
			"id", "user_id", "car_id", "title", "doc_type", "file_key", "expires_at",
			"created_at", "updated_at",
		},
		values: func(d models.CarDocument) ([]any, error) {
			return []any{
				d.ID, d.UserID, d.CarID, d.Title, d.DocType, d.FileKey, nullableMillis(d.ExpiresAt),
				toMillis(d.CreatedAt), toMillis(d.UpdatedAt),
			}, nil
		},
		scan: func(s rowScanner) (models.CarDocument, error) {
			var (
				d                models.CarDocument
				expiresAt        sql.NullInt64
				created, updated int64
				sync             syncScan
			)
			dest := append([]any{
				&d.ID, &d.UserID, &d.CarID, &d.Title, &d.DocType, &d.FileKey, &expiresAt,
				&created, &updated,
			}, sync.dest()...)
			if err := s.Scan(dest...); err != nil {
				return d, err
			}
			d.ExpiresAt = fromNullMillis(expiresAt)
			d.CreatedAt = fromMillis(created)
			d.UpdatedAt = fromMillis(updated)
			d.SyncMeta = sync.meta()
			return d, nil
		},
		id:            func(d models.CarDocument) string { return d.ID },
		userID:        func(d models.CarDocument) string { return d.UserID },
		remoteVersion: func(d models.CarDocument) time.Time { return d.UpdatedAt },
		orderBy:       "created_at DESC",
	})}
}
