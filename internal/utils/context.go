// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the AutoBrain
// client and the remote store server: typed context keys, HMAC hashing,
// JSON response writing, the resty HTTP client, ID token handling and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user id in the
// context.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "uid-42")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user id from the context.
// ok is false when the value is missing, has an unexpected type or is empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
