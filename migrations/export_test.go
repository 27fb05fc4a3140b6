// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func migrateTo(ctx context.Context, db *sql.DB, version int64) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(clientDialect); err != nil {
		return err
	}
	return goose.UpToContext(ctx, db, clientDir, version)
}
