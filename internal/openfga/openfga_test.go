// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"testing"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
)

func TestConfigApiURL(t *testing.T) {
	tests := []struct {
		name     string
		scheme   string
		host     string
		expected string
	}{
		{name: "explicit scheme", scheme: "https", host: "fga.example.com", expected: "https://fga.example.com"},
		{name: "default scheme", host: "localhost:8080", expected: "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.scheme, tt.host, "", "", "", false, nil, nil, nil)

			if got := cfg.ApiURL(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestTupleClientKey(t *testing.T) {
	key := NewTuple("user:1", "admin", "organization:2").toClientTupleKey()
	if key.User != "user:1" || key.Relation != "admin" || key.Object != "organization:2" {
		t.Fatalf("unexpected tuple key %+v", key)
	}
}

func TestNoopClientAcceptsEverything(t *testing.T) {
	logger := logging.NewNoopLogger()
	c := NewNoopClient(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logger)

	equal, err := c.CompareModel(context.Background(), fga.AuthorizationModel{SchemaVersion: "1.1"})
	if err != nil || !equal {
		t.Fatalf("expected noop model to match, got %v %v", equal, err)
	}

	if err := c.WriteTuple(context.Background(), "user:1", "admin", "organization:1"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
