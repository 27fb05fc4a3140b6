// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/models"
)

// remoteDocumentRepository is the PostgreSQL-backed [RemoteDocumentRepository].
// Failures the classifier marks retryable are additionally wrapped in
// [ErrRetryable].
type remoteDocumentRepository struct {
	*DB
}

func NewRemoteDocumentRepository(db *DB) RemoteDocumentRepository {
	return &remoteDocumentRepository{DB: db}
}

func (d *remoteDocumentRepository) Put(ctx context.Context, doc models.RemoteDocument) (models.RemoteDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPutDocumentQuery(ctx, doc)
	if err != nil {
		log.Err(err).
			Str("func", "remoteDocumentRepository.Put").
			Str("user_id", doc.UserID).
			Msg("failed to create query")
		return models.RemoteDocument{}, err
	}

	if err = d.DB.QueryRowContext(ctx, query, args...).Scan(&doc.CreatedAt, &doc.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "remoteDocumentRepository.Put").
			Str("user_id", doc.UserID).
			Str("collection", doc.Collection).
			Str("id", doc.ID).
			Msg("failed to upsert document")
		return models.RemoteDocument{}, d.wrap(ErrExecutingStatement, err)
	}

	return doc, nil
}

func (d *remoteDocumentRepository) List(ctx context.Context, userID, collection string) ([]models.RemoteDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(ctx, userID, collection)
	if err != nil {
		log.Err(err).Str("func", "remoteDocumentRepository.List").Str("user_id", userID).Msg("failed to create query")
		return nil, err
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "remoteDocumentRepository.List").
			Str("user_id", userID).
			Str("collection", collection).
			Msg("failed to execute query for listing documents")
		return nil, d.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.RemoteDocument, 0, 50)
	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "remoteDocumentRepository.List").
				Str("user_id", userID).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		docs = append(docs, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "remoteDocumentRepository.List").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, d.wrap(ErrScanningRows, rowsErr)
	}

	return docs, nil
}

func (d *remoteDocumentRepository) Get(ctx context.Context, userID, collection, id string) (models.RemoteDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDocumentQuery(ctx, userID, collection, id)
	if err != nil {
		log.Err(err).Str("func", "remoteDocumentRepository.Get").Str("user_id", userID).Msg("failed to create query")
		return models.RemoteDocument{}, err
	}

	doc, err := scanDocument(d.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.RemoteDocument{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "remoteDocumentRepository.Get").
			Str("user_id", userID).
			Str("collection", collection).
			Str("id", id).
			Msg("failed to get document")
		return models.RemoteDocument{}, d.wrap(ErrScanningRow, err)
	}

	return doc, nil
}

func (d *remoteDocumentRepository) Delete(ctx context.Context, userID, collection, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(ctx, userID, collection, id)
	if err != nil {
		log.Err(err).Str("func", "remoteDocumentRepository.Delete").Str("user_id", userID).Msg("failed to create query")
		return err
	}

	res, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "remoteDocumentRepository.Delete").
			Str("user_id", userID).
			Str("collection", collection).
			Str("id", id).
			Msg("failed to delete document")
		return d.wrap(ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return d.wrap(ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// wrap joins sentinel and the driver error, adding ErrRetryable when the
// failure is transient.
func (d *remoteDocumentRepository) wrap(sentinel, err error) error {
	if d.Retryable(err) {
		return fmt.Errorf("%w: %w: %w", ErrRetryable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func scanDocument(row rowScanner) (models.RemoteDocument, error) {
	var (
		doc  models.RemoteDocument
		body []byte
	)
	if err := row.Scan(&doc.UserID, &doc.Collection, &doc.ID, &body, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return models.RemoteDocument{}, err
	}
	doc.Body = body
	return doc, nil
}
