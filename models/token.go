// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT ID token.
//
// SignedString holds the compact serialized form; UserID is the parsed
// "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// GetUserID returns the "sub" claim of the token.
func (t *Token) GetUserID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if sub == "" {
		return "", errors.New("empty subject in token")
	}

	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
