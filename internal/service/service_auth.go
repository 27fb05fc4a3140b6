// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/models"
)

// authService issues and verifies HS256 ID tokens. Sign-in itself happens
// elsewhere; the server only needs the "sub" claim as the user id.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the token settings of cfg.
// Issuer and duration fall back to the defaults.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = config.DefaultTokenIssuer
	}
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = config.DefaultTokenDuration
	}

	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   issuer,
		tokenDuration: duration,
		logger:        logger,
	}
}

// CreateToken issues a signed token whose subject is userID.
func (a *authService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	if userID == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies the signature, issuer and expiry. Every failure is
// reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
