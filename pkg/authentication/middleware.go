// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/canonical/app-builder/internal/http/types"
	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
	domain "github.com/canonical/app-builder/internal/types"
)

const (
	// WorkspaceHeader selects the organization a request acts on
	WorkspaceHeader = "tj-workspace-id"

	// SessionTTL is the sliding expiry of a user session row
	SessionTTL = 10 * 24 * time.Hour
)

var errUnauthenticated = errors.New("unauthenticated")

type Middleware struct {
	verifier TokenVerifierInterface
	sessions SessionStoreInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate rejects requests without a valid session cookie
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			user, err := m.sessionUser(ctx, r)
			if err != nil {
				m.unauthorizedResponse(w, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSessionUser(ctx, user)))
		})
	}
}

// OptionalAuthenticate injects the session user when the cookie is valid and never rejects
func (m *Middleware) OptionalAuthenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.OptionalAuthenticate")
			defer span.End()

			if user, err := m.sessionUser(ctx, r); err == nil {
				ctx = WithSessionUser(ctx, user)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) sessionUser(ctx context.Context, r *http.Request) (*SessionUser, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, errors.New("missing session cookie")
	}

	claims, err := m.verifier.VerifyToken(ctx, cookie.Value)
	if err != nil {
		m.logger.Debugf("session token verification failed: %v", err)
		return nil, errors.New("invalid token")
	}

	session, err := m.sessions.GetSession(ctx, claims.SessionID)
	if err != nil {
		m.logger.Debugf("session %s lookup failed: %v", claims.SessionID, err)
		return nil, errUnauthenticated
	}

	now := m.now()
	if session.UserID != claims.Username || !session.Expiry.After(now) {
		return nil, errors.New("session expired")
	}

	user, err := m.sessions.GetUserByID(ctx, claims.Username)
	if err != nil {
		m.logger.Debugf("session user %s lookup failed: %v", claims.Username, err)
		return nil, errUnauthenticated
	}

	if user.Status == domain.UserStatusArchived {
		m.logger.Security().AuthzFailure(user.ID, "session")
		return nil, errUnauthenticated
	}

	organizationID := r.Header.Get(WorkspaceHeader)
	switch {
	case organizationID == "":
		organizationID = user.DefaultOrganizationID
		if !claims.HasOrganization(organizationID) {
			organizationID = ""
		}
	case !claims.HasOrganization(organizationID):
		m.logger.Security().AuthzFailure(user.ID, organizationID)
		return nil, errUnauthenticated
	}

	if err := m.sessions.TouchSession(ctx, session.ID, now.Add(SessionTTL)); err != nil {
		// a stale expiry only shortens the session
		m.logger.Errorf("failed to extend session %s: %v", session.ID, err)
	}

	return &SessionUser{
		User:            user,
		SessionID:       session.ID,
		OrganizationID:  organizationID,
		OrganizationIDs: claims.OrganizationIDs,
		IsSSOLogin:      claims.IsSSOLogin,
		IsPasswordLogin: claims.IsPasswordLogin,
	}, nil
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	types.WriteError(w, http.StatusUnauthorized, message)
}

func NewMiddleware(verifier TokenVerifierInterface, sessions SessionStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.verifier = verifier
	m.sessions = sessions
	m.now = time.Now

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
