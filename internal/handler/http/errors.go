// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors of the auth middleware when parsing the "Authorization" header.
var (
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// ErrIntegrityCheckFailed is answered when the HashSHA256 header does not
// match the body.
var ErrIntegrityCheckFailed = errors.New("integrity check failed")
