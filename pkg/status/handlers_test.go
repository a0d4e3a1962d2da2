// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/app-builder/internal/version"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestAPI_Status(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   Status
		expectedValue  float64
	}{
		{
			name:           "Database reachable",
			expectedStatus: http.StatusOK,
			expectedBody:   Status{Status: "ok", Database: "ok"},
			expectedValue:  1,
		},
		{
			name:           "Database down",
			pingErr:        errors.New("connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   Status{Status: "degraded", Database: "unavailable"},
			expectedValue:  0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPinger := NewMockPingerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "status.API.alive").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			mockPinger.EXPECT().Ping(gomock.Any()).Return(test.pingErr)
			mockMonitor.EXPECT().SetDependencyAvailability(map[string]string{"component": "database"}, test.expectedValue).Return(nil)

			if test.pingErr != nil {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			}

			mux := chi.NewMux()
			NewAPI(mockPinger, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			body := new(Status)
			if err := json.Unmarshal(rr.Body.Bytes(), body); err != nil {
				t.Fatalf("unexpected body %s", rr.Body.String())
			}

			if body.Status != test.expectedBody.Status || body.Database != test.expectedBody.Database {
				t.Errorf("expected %+v, got %+v", test.expectedBody, body)
			}

			if body.BuildInfo == nil || body.BuildInfo.Version != version.Version {
				t.Errorf("expected build info with version %s", version.Version)
			}
		})
	}
}

func TestAPI_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := chi.NewMux()
	NewAPI(NewMockPingerInterface(ctrl), NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/version", nil))

	info := new(BuildInfo)
	if err := json.Unmarshal(rr.Body.Bytes(), info); err != nil || info.Version != version.Version {
		t.Errorf("unexpected version response %s", rr.Body.String())
	}
}
