// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
)

// tokenService issues HS256 JWTs and verifies them. Its settings never
// change after construction, so verification needs no locking.
type tokenService struct {
	params utils.JWTParams
	now    func() time.Time
	logger *logger.Logger
}

func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		params: utils.JWTParams{
			Issuer:   cfg.TokenIssuer,
			Audience: cfg.TokenAudience,
			Duration: cfg.TokenDuration,
			SignKey:  []byte(cfg.TokenSignKey),
		},
		now:    time.Now,
		logger: logger,
	}
}

// IssueToken signs a token whose subject is user.Username and which expires
// after the configured duration. Any failure is reported as
// ErrSigningFailure.
func (s *tokenService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContextOr(ctx, s.logger)

	token, err := utils.GenerateJWTToken(s.params, user.Username, s.now())
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrSigningFailure, err)
	}

	log.Debug().Str("username", user.Username).Time("expires_at", token.ExpiresAt()).Msg("token issued")
	return token, nil
}

// VerifyToken validates tokenString against the configured key, issuer and
// audience and the current time.
func (s *tokenService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.params, s.now)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Debug().Err(err).Msg("token rejected")

		switch {
		case errors.Is(err, utils.ErrJWTExpired):
			return models.Token{}, ErrTokenExpired
		case errors.Is(err, utils.ErrJWTBadSignature):
			return models.Token{}, ErrBadSignature
		default:
			return models.Token{}, ErrMalformedToken
		}
	}

	return token, nil
}
