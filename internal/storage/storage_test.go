// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
	"github.com/canonical/app-builder/internal/types"
)

func TestStorage_MalformedOrganizationID(t *testing.T) {
	// no database client, the lookups must not reach one
	s := NewStorage(nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("app-builder"), logging.NewNoopLogger())

	t.Run("User by email", func(t *testing.T) {
		u, err := s.GetUserByEmail(context.Background(), "jane@example.com", "not-a-uuid", types.WorkspaceUserActive)
		if !errors.Is(err, ErrNotFound) || u != nil {
			t.Errorf("expected not found, got %v %v", u, err)
		}
	})

	t.Run("Widget layouts", func(t *testing.T) {
		layouts, err := s.ListWidgetLayouts(context.Background(), "not-a-uuid", "app-1", "desktop")
		if err != nil || len(layouts) != 0 {
			t.Errorf("expected no layouts, got %v %v", layouts, err)
		}
	})
}
