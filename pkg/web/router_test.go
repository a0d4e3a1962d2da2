// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/app-builder/internal/http/types"
	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
	"github.com/canonical/app-builder/pkg/authentication"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(context.Context) error {
	return p.err
}

// rejectSessions stands in for the session middleware, refusing every request
type rejectSessions struct{}

func (rejectSessions) Authenticate() func(http.Handler) http.Handler {
	return func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		})
	}
}

func (rejectSessions) OptionalAuthenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

func newTestRouter(database *fakePinger) http.Handler {
	return NewRouter(
		nil,
		nil,
		rejectSessions{},
		authentication.NewCookieManager(false),
		database,
		[]string{"https://builder.example.com"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("app-builder"),
		logging.NewNoopLogger(),
	)
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		pingErr        error
		expectedStatus int
	}{
		{
			name:           "Status with a healthy database",
			method:         http.MethodGet,
			path:           "/api/v0/status",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Status with the database down",
			method:         http.MethodGet,
			path:           "/api/v0/status",
			pingErr:        errors.New("connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "Version",
			method:         http.MethodGet,
			path:           "/api/v0/version",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Layouts require a session",
			method:         http.MethodGet,
			path:           "/api/apps/version-1/layouts",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Unknown route",
			method:         http.MethodGet,
			path:           "/api/unknown",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			router := newTestRouter(&fakePinger{err: test.pingErr})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(test.method, test.path, nil))

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	router := newTestRouter(new(fakePinger))

	req := httptest.NewRequest(http.MethodOptions, "/api/apps/version-1/layouts/drag", nil)
	req.Header.Set("Origin", "https://builder.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	req.Header.Set("Access-Control-Request-Headers", authentication.WorkspaceHeader)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://builder.example.com" {
		t.Errorf("expected the origin to be allowed, got %q", got)
	}

	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials to be allowed, got %q", got)
	}
}
