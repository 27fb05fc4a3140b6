// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repositories. Match with errors.Is.
var (
	// ErrNotFound is returned when a row addressed by (user, id) does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDocumentNotFound is returned by the remote document repository.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrRetryable wraps database failures the classifier marks as transient.
	ErrRetryable = errors.New("transient database error")
)

// Low-level SQL failures wrapped by repository methods.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingColumn       = errors.New("failed to encode column value")
)
