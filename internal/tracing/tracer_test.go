// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/app-builder/internal/logging"
)

func TestNewTracerDisabled(t *testing.T) {
	tracer := NewTracer(NewConfig(false, "", "", logging.NewNoopLogger()))

	ctx, span := tracer.Start(context.Background(), "test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Fatal("expected a noop span")
	}
}

func TestNewNoopTracer(t *testing.T) {
	_, span := NewNoopTracer().Start(context.Background(), "test")
	defer span.End()

	if span.IsRecording() {
		t.Fatal("expected a non recording span")
	}
}

func TestTracedFilter(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{path: "/api/authenticate", expected: true},
		{path: "/api/v0/metrics", expected: false},
		{path: "/api/v0/status", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)

			if got := traced(r); got != tt.expected {
				t.Errorf("expected %v for %s, got %v", tt.expected, tt.path, got)
			}
		})
	}
}
