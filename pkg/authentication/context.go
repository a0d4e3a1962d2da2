// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/app-builder/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var userContextKey = contextKey{}

// SessionUser is the authenticated user of a request along with the session it came with
type SessionUser struct {
	*types.User

	SessionID       string
	OrganizationID  string
	OrganizationIDs []string
	IsSSOLogin      bool
	IsPasswordLogin bool
}

// WithSessionUser returns a new context carrying the session user
func WithSessionUser(ctx context.Context, user *SessionUser) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetSessionUser retrieves the session user from the context.
// Returns nil and false if the request is not authenticated.
func GetSessionUser(ctx context.Context) (*SessionUser, bool) {
	u, ok := ctx.Value(userContextKey).(*SessionUser)
	return u, ok && u != nil
}

// GetUserID retrieves the authenticated user ID from the context.
func GetUserID(ctx context.Context) (string, bool) {
	u, ok := GetSessionUser(ctx)
	if !ok {
		return "", false
	}
	return u.ID, true
}
