// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/utils"
)

const testSignKey = "test-sign-key"

func newTestAuthService() AuthService {
	return NewAuthService(config.App{TokenSignKey: testSignKey, TokenIssuer: "autobrain-test", TokenDuration: time.Hour}, logger.Nop())
}

func TestAuthService_CreateAndParse(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "user-42")
	require.NoError(t, err)
	assert.Equal(t, "user-42", token.UserID)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-42", parsed.UserID)
}

func TestAuthService_CreateToken_EmptyUser(t *testing.T) {
	_, err := newTestAuthService().CreateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	foreignIssuer, err := utils.GenerateJWTToken("someone-else", "user-42", time.Hour, testSignKey)
	require.NoError(t, err)
	foreignKey, err := utils.GenerateJWTToken("autobrain-test", "user-42", time.Hour, "other-key")
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken("autobrain-test", "user-42", -time.Minute, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "wrong issuer", token: foreignIssuer.SignedString},
		{name: "wrong key", token: foreignKey.SignedString},
		{name: "expired", token: expired.SignedString},
	}

	svc := newTestAuthService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestNewAuthService_Defaults(t *testing.T) {
	svc := NewAuthService(config.App{TokenSignKey: testSignKey}, logger.Nop()).(*authService)
	assert.Equal(t, config.DefaultTokenIssuer, svc.tokenIssuer)
	assert.Equal(t, config.DefaultTokenDuration, svc.tokenDuration)
}
