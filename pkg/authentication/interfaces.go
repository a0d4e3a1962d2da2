// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/canonical/app-builder/internal/types"
)

type TokenSignerInterface interface {
	// Sign issues the session token carried by the auth cookie
	Sign(ctx context.Context, claims *SessionClaims) (string, error)
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw session JWT and returns its claims
	VerifyToken(ctx context.Context, rawToken string) (*SessionClaims, error)
}

type SessionStoreInterface interface {
	GetSession(ctx context.Context, id string) (*types.UserSession, error)
	TouchSession(ctx context.Context, id string, expiry time.Time) error
	GetUserByID(ctx context.Context, id string) (*types.User, error)
}

type OIDCClientInterface interface {
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for the verified identity of the user
	Exchange(ctx context.Context, code string) (*IdentityClaims, error)
}

type OIDCClientFactoryInterface interface {
	NewClient(ctx context.Context, config *types.SSOConfig, redirectURL string) (OIDCClientInterface, error)
}
