// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/app-builder/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	validClaims := func() *SessionClaims {
		return &SessionClaims{
			SessionID:       "session-1",
			Username:        "user-1",
			OrganizationIDs: []string{"org-1", "org-2"},
			IsPasswordLogin: true,
		}
	}
	validSession := &types.UserSession{ID: "session-1", UserID: "user-1", Expiry: now.Add(time.Hour)}
	activeUser := func() *types.User {
		return &types.User{ID: "user-1", Email: "a@x.com", Status: types.UserStatusActive, DefaultOrganizationID: "org-1"}
	}

	tests := []struct {
		name               string
		cookie             string
		workspace          string
		setupMocks         func(*MockTokenVerifierInterface, *MockSessionStoreInterface, *MockSecurityLoggerInterface)
		expectedStatusCode int
		expectedOrg        string
	}{
		{
			name:               "Missing cookie - rejects request",
			setupMocks:         func(*MockTokenVerifierInterface, *MockSessionStoreInterface, *MockSecurityLoggerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "Token verification fails - rejects request",
			cookie: "invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockSessionStoreInterface, _ *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return(nil, ErrInvalidToken)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "Unknown session - rejects request",
			cookie: "valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockSessionStoreInterface, _ *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(validClaims(), nil)
				s.EXPECT().GetSession(gomock.Any(), "session-1").Return(nil, errors.New("resource not found"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "Expired session - rejects request",
			cookie: "valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockSessionStoreInterface, _ *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(validClaims(), nil)
				s.EXPECT().GetSession(gomock.Any(), "session-1").Return(&types.UserSession{ID: "session-1", UserID: "user-1", Expiry: now.Add(-time.Minute)}, nil)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "Session of another user - rejects request",
			cookie: "valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockSessionStoreInterface, _ *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(validClaims(), nil)
				s.EXPECT().GetSession(gomock.Any(), "session-1").Return(&types.UserSession{ID: "session-1", UserID: "user-2", Expiry: now.Add(time.Hour)}, nil)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "Archived user - rejects request",
			cookie: "valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockSessionStoreInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(validClaims(), nil)
				s.EXPECT().GetSession(gomock.Any(), "session-1").Return(validSession, nil)
				u := activeUser()
				u.Status = types.UserStatusArchived
				s.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(u, nil)
				sec.EXPECT().AuthzFailure("user-1", "session")
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:      "Workspace outside of the session - rejects request",
			cookie:    "valid-token",
			workspace: "org-3",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockSessionStoreInterface, sec *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(validClaims(), nil)
				s.EXPECT().GetSession(gomock.Any(), "session-1").Return(validSession, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(activeUser(), nil)
				sec.EXPECT().AuthzFailure("user-1", "org-3")
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "Valid session - uses default organization",
			cookie: "valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockSessionStoreInterface, _ *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(validClaims(), nil)
				s.EXPECT().GetSession(gomock.Any(), "session-1").Return(validSession, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(activeUser(), nil)
				s.EXPECT().TouchSession(gomock.Any(), "session-1", now.Add(SessionTTL)).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedOrg:        "org-1",
		},
		{
			name:      "Valid session - uses workspace header",
			cookie:    "valid-token",
			workspace: "org-2",
			setupMocks: func(v *MockTokenVerifierInterface, s *MockSessionStoreInterface, _ *MockSecurityLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(validClaims(), nil)
				s.EXPECT().GetSession(gomock.Any(), "session-1").Return(validSession, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(activeUser(), nil)
				s.EXPECT().TouchSession(gomock.Any(), "session-1", now.Add(SessionTTL)).Return(fmt.Errorf("connection reset"))
			},
			expectedStatusCode: http.StatusOK,
			expectedOrg:        "org-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockSessions := NewMockSessionStoreInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()

			tt.setupMocks(mockVerifier, mockSessions, mockSecurity)

			middleware := NewMiddleware(mockVerifier, mockSessions, mockTracer, mockMonitor, mockLogger)
			middleware.now = func() time.Time { return now }

			var seen *SessionUser
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = GetSessionUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			if tt.workspace != "" {
				req.Header.Set(WorkspaceHeader, tt.workspace)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Fatalf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedStatusCode != http.StatusOK {
				return
			}

			if seen == nil {
				t.Fatalf("expected session user in context")
			}

			if seen.OrganizationID != tt.expectedOrg {
				t.Errorf("expected organization %q, got %q", tt.expectedOrg, seen.OrganizationID)
			}

			if seen.SessionID != "session-1" || !seen.IsPasswordLogin {
				t.Errorf("unexpected session user %+v", seen)
			}
		})
	}
}

func TestMiddleware_OptionalAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockVerifier := NewMockTokenVerifierInterface(ctrl)
	mockSessions := NewMockSessionStoreInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.OptionalAuthenticate").Return(ctx, trace.SpanFromContext(ctx))
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockVerifier.EXPECT().VerifyToken(gomock.Any(), "garbage").Return(nil, ErrInvalidToken)

	middleware := NewMiddleware(mockVerifier, mockSessions, mockTracer, mockMonitor, mockLogger)

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := GetSessionUser(r.Context()); ok {
			t.Errorf("expected no session user")
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/authenticate", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})

	middleware.OptionalAuthenticate()(handler).ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatalf("expected the request to go through")
	}
}
