// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"context"
	"net/http"

	"github.com/canonical/app-builder/internal/types"
)

// ServiceInterface reads and writes the layouts of app versions owned by organizationID
type ServiceInterface interface {
	ListLayouts(ctx context.Context, organizationID, appVersionID string, breakpoint Breakpoint) ([]*types.WidgetLayout, error)
	ApplyDrag(ctx context.Context, organizationID, appVersionID string, breakpoint Breakpoint, records []DragRecord) ([]*types.WidgetLayout, error)
	ApplyResize(ctx context.Context, organizationID, appVersionID string, breakpoint Breakpoint, records []ResizeRecord) ([]*types.WidgetLayout, error)
}

type StorageInterface interface {
	ListWidgetLayouts(ctx context.Context, organizationID, appVersionID, breakpoint string) ([]*types.WidgetLayout, error)
	GetAppVersionOrganization(ctx context.Context, appVersionID string) (string, error)
	UpsertWidgetLayouts(ctx context.Context, layouts []*types.WidgetLayout) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// CommitterInterface receives the records of finished gestures
type CommitterInterface interface {
	CommitDrag(ctx context.Context, records []DragRecord) error
	CommitResize(ctx context.Context, records []ResizeRecord) error
}

// RefresherInterface triggers a full re-layout of the canvas
type RefresherInterface interface {
	Refresh()
}

type AuthenticatorInterface interface {
	Authenticate() func(http.Handler) http.Handler
}
