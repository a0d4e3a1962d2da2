// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
)

var (
	ErrMissingSecret = errors.New("secret key base is required for session tokens")
	ErrInvalidToken  = errors.New("invalid session token")
)

var (
	_ TokenSignerInterface   = (*JWTSigner)(nil)
	_ TokenVerifierInterface = (*JWTSigner)(nil)
)

// JWTSigner signs and verifies HS256 session tokens with the instance secret
type JWTSigner struct {
	secret []byte
	now    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *JWTSigner) Sign(ctx context.Context, claims *SessionClaims) (string, error) {
	_, span := s.tracer.Start(ctx, "authentication.JWTSigner.Sign")
	defer span.End()

	if claims == nil {
		return "", fmt.Errorf("claims are required")
	}

	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(s.now())
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, nil
}

func (s *JWTSigner) VerifyToken(ctx context.Context, rawToken string) (*SessionClaims, error) {
	_, span := s.tracer.Start(ctx, "authentication.JWTSigner.VerifyToken")
	defer span.End()

	claims := new(SessionClaims)
	token, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		s.logger.Debugf("failed to parse session token: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.SessionID == "" || claims.Username == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func NewJWTSigner(secret string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*JWTSigner, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	s := new(JWTSigner)

	s.secret = []byte(secret)
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s, nil
}
