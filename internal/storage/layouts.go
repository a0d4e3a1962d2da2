// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/app-builder/internal/types"
)

// ListWidgetLayouts returns the layouts of an app version owned by the organization
func (s *Storage) ListWidgetLayouts(ctx context.Context, organizationID, appVersionID, breakpoint string) ([]*types.WidgetLayout, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWidgetLayouts")
	defer span.End()

	if _, err := uuid.Parse(organizationID); err != nil {
		return nil, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("organization_id", "app_version_id", "widget_id", "component_type", "breakpoint", "left_pos", "top_pos", "width", "height", "parent_id").
		From("widget_layouts").
		Where(sq.Eq{"organization_id": organizationID, "app_version_id": appVersionID, "breakpoint": breakpoint}).
		OrderBy("widget_id").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list widget layouts: %w", err)
	}
	defer rows.Close()

	var layouts []*types.WidgetLayout
	for rows.Next() {
		var (
			l      types.WidgetLayout
			parent sql.NullString
		)
		if err := rows.Scan(&l.OrganizationID, &l.AppVersionID, &l.WidgetID, &l.ComponentType, &l.Breakpoint, &l.Left, &l.Top, &l.Width, &l.Height, &parent); err != nil {
			return nil, fmt.Errorf("failed to scan widget layout: %w", err)
		}
		l.ParentID = parent.String
		layouts = append(layouts, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return layouts, nil
}

// GetAppVersionOrganization returns the organization owning the layouts of an
// app version, ErrNotFound when the app version has no layout yet.
func (s *Storage) GetAppVersionOrganization(ctx context.Context, appVersionID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAppVersionOrganization")
	defer span.End()

	var organizationID string
	err := s.db.Statement(ctx).
		Select("organization_id").
		From("widget_layouts").
		Where(sq.Eq{"app_version_id": appVersionID}).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&organizationID)

	if IsNoRows(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get app version organization: %w", err)
	}

	return organizationID, nil
}

// UpsertWidgetLayouts writes all the layouts in a single statement, replacing
// geometry and parent of rows that already exist. Rows of another
// organization are left untouched.
func (s *Storage) UpsertWidgetLayouts(ctx context.Context, layouts []*types.WidgetLayout) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertWidgetLayouts")
	defer span.End()

	if len(layouts) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("widget_layouts").
		Columns("organization_id", "app_version_id", "widget_id", "component_type", "breakpoint", "left_pos", "top_pos", "width", "height", "parent_id")

	for _, l := range layouts {
		query = query.Values(l.OrganizationID, l.AppVersionID, l.WidgetID, l.ComponentType, l.Breakpoint, l.Left, l.Top, l.Width, l.Height, nullable(l.ParentID))
	}

	_, err := query.
		Suffix(`ON CONFLICT (app_version_id, widget_id, breakpoint) DO UPDATE SET
			left_pos = EXCLUDED.left_pos,
			top_pos = EXCLUDED.top_pos,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			parent_id = EXCLUDED.parent_id,
			updated_at = NOW()
		WHERE widget_layouts.organization_id = EXCLUDED.organization_id`).
		ExecContext(ctx)

	if err != nil {
		return mapWriteError(err, "failed to upsert widget layouts")
	}

	return nil
}
