// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/autobrain/models"
)

const documentsTable = "documents"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	documentColumns = []string{"user_id", "collection", "id", "body", "created_at", "updated_at"}
)

// buildPutDocumentQuery upserts one document. created_at survives updates;
// updated_at is always set by the database.
func buildPutDocumentQuery(ctx context.Context, doc models.RemoteDocument) (string, []any, error) {
	query, args, err := psql.Insert(documentsTable).
		Columns("user_id", "collection", "id", "body").
		Values(doc.UserID, doc.Collection, doc.ID, string(doc.Body)).
		Suffix(`ON CONFLICT (user_id, collection, id) DO UPDATE SET body = EXCLUDED.body, updated_at = now()
			RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListDocumentsQuery(ctx context.Context, userID, collection string) (string, []any, error) {
	query, args, err := psql.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"user_id": userID, "collection": collection}).
		OrderBy("updated_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetDocumentQuery(ctx context.Context, userID, collection, id string) (string, []any, error) {
	query, args, err := psql.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"user_id": userID, "collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteDocumentQuery(ctx context.Context, userID, collection, id string) (string, []any, error) {
	query, args, err := psql.Delete(documentsTable).
		Where(sq.Eq{"user_id": userID, "collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
