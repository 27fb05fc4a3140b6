// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated means there is no ID token to talk to the remote
	// store with. It is permanent until the user signs in.
	ErrUnauthenticated = errors.New("user is not authenticated")

	ErrUnknownCollection = errors.New("unknown collection")
	ErrSyncInProgress    = errors.New("sync already in progress")

	ErrRemoteUnavailable = errors.New("remote store unavailable")
	ErrRemoteRejected    = errors.New("remote store rejected the request")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrWrongUserScope          = errors.New("document belongs to another user")

	ErrImageNotFound       = errors.New("car image not found")
	ErrImageUpstreamFailed = errors.New("image search failed")
	ErrUploadsDisabled     = errors.New("document uploads are not configured")
)

var ErrVersionIsNotSpecified = errors.New("app version is not specified")
