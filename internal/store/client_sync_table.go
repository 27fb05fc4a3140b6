// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/autobrain/internal/logger"
)

// tableDef maps an entity type onto a syncable SQLite table.
//
// columns lists the domain columns in the order values returns them and
// scan reads them; scan additionally reads syncColumns right after them.
// The first two columns are always id and user_id.
type tableDef[T any] struct {
	name    string
	columns []string
	values  func(T) ([]any, error)
	scan    func(rowScanner) (T, error)
	id      func(T) string
	userID  func(T) string
	// remoteVersion is the instant a remote copy of the row was last
	// written; pulled rows store it as local_modified_at.
	remoteVersion func(T) time.Time
	orderBy       string
}

// syncTable implements the sync bookkeeping shared by every entity table.
type syncTable[T any] struct {
	*DB
	def tableDef[T]
	now func() time.Time

	selectColumns     []string
	localUpsertSuffix string
	remoteUpsertSfx   string
}

func newSyncTable[T any](db *DB, def tableDef[T]) *syncTable[T] {
	t := &syncTable[T]{
		DB:            db,
		def:           def,
		now:           time.Now,
		selectColumns: concat(def.columns, syncColumns),
	}
	t.localUpsertSuffix = t.buildUpsertSuffix(false)
	t.remoteUpsertSfx = t.buildUpsertSuffix(true)
	return t
}

// buildUpsertSuffix renders the ON CONFLICT clause. A local edit always wins
// and marks the row pending. A remote row only replaces a local one that is
// synced or was last edited no later than the remote write.
func (t *syncTable[T]) buildUpsertSuffix(remote bool) string {
	set := make([]string, 0, len(t.def.columns)+3)
	for _, c := range t.def.columns {
		if c == "id" || c == "user_id" || (!remote && c == "created_at") {
			continue
		}
		set = append(set, fmt.Sprintf("%s = excluded.%s", c, c))
	}

	where := fmt.Sprintf("%s.user_id = excluded.user_id", t.def.name)
	if remote {
		set = append(set, "is_synced = 1", "sync_error = NULL")
		where += fmt.Sprintf(" AND (%[1]s.is_synced = 1 OR %[1]s.local_modified_at <= excluded.local_modified_at)", t.def.name)
		set = append(set, "local_modified_at = excluded.local_modified_at")
	} else {
		set = append(set, "is_synced = 0",
			fmt.Sprintf("local_modified_at = MAX(%s.local_modified_at + 1, excluded.local_modified_at)", t.def.name))
	}

	return "ON CONFLICT(id) DO UPDATE SET " + strings.Join(set, ", ") + " WHERE " + where
}

// Save upserts locally edited rows: each one becomes pending with
// local_modified_at bumped to now, or one millisecond past the stored value
// when the clock has not moved. sync_attempts is never reset.
func (t *syncTable[T]) Save(ctx context.Context, items ...T) error {
	now := toMillis(t.now())
	_, err := t.upsert(ctx, "Save", items, t.localUpsertSuffix, func(T) []any {
		return []any{0, 0, now}
	})
	return err
}

// ApplyRemote writes pulled rows as synced. Rows of another user are
// ignored; a pending local row edited after the remote write is kept.
func (t *syncTable[T]) ApplyRemote(ctx context.Context, userID string, items ...T) (applied, skipped int, err error) {
	own := make([]T, 0, len(items))
	for _, item := range items {
		if t.def.userID(item) != userID {
			skipped++
			continue
		}
		own = append(own, item)
	}

	n, err := t.upsert(ctx, "ApplyRemote", own, t.remoteUpsertSfx, func(item T) []any {
		return []any{1, 0, toMillis(t.def.remoteVersion(item))}
	})
	if err != nil {
		return 0, skipped, err
	}

	return n, skipped + len(own) - n, nil
}

func (t *syncTable[T]) upsert(ctx context.Context, fn string, items []T, suffix string, syncValues func(T) []any) (int, error) {
	log := logger.FromContext(ctx)
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := t.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "syncTable."+fn).Str("table", t.def.name).Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	columns := concat(t.def.columns, []string{"is_synced", "sync_attempts", "local_modified_at"})
	written := 0
	for _, item := range items {
		values, err := t.def.values(item)
		if err != nil {
			return 0, err
		}

		query, args, err := t.builder.Insert(t.def.name).
			Columns(columns...).
			Values(append(values, syncValues(item)...)...).
			Suffix(suffix).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "syncTable."+fn).
				Str("table", t.def.name).
				Str("id", t.def.id(item)).
				Msg("failed to upsert row")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			written++
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "syncTable."+fn).Str("table", t.def.name).Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return written, nil
}

// Get returns the row id of userID or ErrNotFound.
func (t *syncTable[T]) Get(ctx context.Context, userID, id string) (T, error) {
	var zero T

	query, args, err := t.builder.Select(t.selectColumns...).
		From(t.def.name).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := t.def.scan(t.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncTable.Get").
			Str("table", t.def.name).
			Str("id", id).
			Msg("failed to scan row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// ListByUser returns every row of userID in the table's natural order.
func (t *syncTable[T]) ListByUser(ctx context.Context, userID string) ([]T, error) {
	return t.list(ctx, "ListByUser", sq.Eq{"user_id": userID}, t.def.orderBy)
}

// ListUnsynced returns all pending rows of userID, oldest edit first.
func (t *syncTable[T]) ListUnsynced(ctx context.Context, userID string) ([]T, error) {
	return t.list(ctx, "ListUnsynced", sq.Eq{"user_id": userID, "is_synced": 0}, "local_modified_at ASC")
}

// ListForRetry returns the pending rows of userID that failed fewer than
// maxAttempts times.
func (t *syncTable[T]) ListForRetry(ctx context.Context, userID string, maxAttempts int) ([]T, error) {
	where := sq.And{
		sq.Eq{"user_id": userID, "is_synced": 0},
		sq.Lt{"sync_attempts": maxAttempts},
	}
	return t.list(ctx, "ListForRetry", where, "local_modified_at ASC")
}

func (t *syncTable[T]) list(ctx context.Context, fn string, where sq.Sqlizer, orderBy string) ([]T, error) {
	log := logger.FromContext(ctx)

	b := t.builder.Select(t.selectColumns...).From(t.def.name).Where(where)
	if orderBy != "" {
		b = b.OrderBy(orderBy)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "syncTable."+fn).Str("table", t.def.name).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0, 16)
	for rows.Next() {
		item, err := t.def.scan(rows)
		if err != nil {
			log.Err(err).Str("func", "syncTable."+fn).Str("table", t.def.name).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "syncTable."+fn).Str("table", t.def.name).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// MarkSynced flags the row as durably written to the remote store, but only
// while it still holds the pushed version. A row edited after pushedAt stays
// pending and marked is false.
func (t *syncTable[T]) MarkSynced(ctx context.Context, userID, id string, pushedAt time.Time) (marked bool, err error) {
	n, err := t.exec(ctx, "MarkSynced", t.builder.Update(t.def.name).
		Set("is_synced", 1).
		Set("sync_error", nil).
		Set("last_sync_attempt", toMillis(t.now())).
		Where(sq.Eq{"user_id": userID, "id": id, "local_modified_at": toMillis(pushedAt)}))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RecordSyncFailure counts one failed push of the row and stores the error
// text. The row stays pending.
func (t *syncTable[T]) RecordSyncFailure(ctx context.Context, userID, id, syncErr string) error {
	n, err := t.exec(ctx, "RecordSyncFailure", t.builder.Update(t.def.name).
		Set("sync_attempts", sq.Expr("sync_attempts + 1")).
		Set("last_sync_attempt", toMillis(t.now())).
		Set("sync_error", syncErr).
		Set("is_synced", 0).
		Where(sq.Eq{"user_id": userID, "id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Touch marks the row edited now and pending upload.
func (t *syncTable[T]) Touch(ctx context.Context, userID, id string) error {
	n, err := t.exec(ctx, "Touch", t.builder.Update(t.def.name).
		Set("is_synced", 0).
		Set("local_modified_at", t.nextVersion()).
		Where(sq.Eq{"user_id": userID, "id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// nextVersion is the local_modified_at of an in-place edit. It always moves
// past the stored value so a push in flight never matches the edited row.
func (t *syncTable[T]) nextVersion() sq.Sqlizer {
	return sq.Expr("MAX(local_modified_at + 1, ?)", toMillis(t.now()))
}

// Delete removes the row. Remote copies are handled by the caller.
func (t *syncTable[T]) Delete(ctx context.Context, userID, id string) error {
	n, err := t.exec(ctx, "Delete", t.builder.Delete(t.def.name).
		Where(sq.Eq{"user_id": userID, "id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUnsynced returns the number of pending rows of userID.
func (t *syncTable[T]) CountUnsynced(ctx context.Context, userID string) (int, error) {
	query, args, err := t.builder.Select("COUNT(*)").
		From(t.def.name).
		Where(sq.Eq{"user_id": userID, "is_synced": 0}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err := t.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncTable.CountUnsynced").Str("table", t.def.name).Msg("failed to count rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

func (t *syncTable[T]) exec(ctx context.Context, fn string, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := t.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncTable."+fn).Str("table", t.def.name).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
