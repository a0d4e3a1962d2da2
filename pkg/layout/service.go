// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/storage"
	"github.com/canonical/app-builder/internal/tracing"
	"github.com/canonical/app-builder/internal/types"
)

// Service persists gesture records. Stored rows are loaded into a Model so
// records go through the same validation as in the editor, only rows that
// actually changed are written back.
type Service struct {
	storage StorageInterface
	tx      TxInterface
	columns int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListLayouts(ctx context.Context, organizationID, appVersionID string, breakpoint Breakpoint) ([]*types.WidgetLayout, error) {
	ctx, span := s.tracer.Start(ctx, "layout.Service.ListLayouts")
	defer span.End()

	if !breakpoint.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrBreakpoint, breakpoint)
	}

	if err := s.authorize(ctx, organizationID, appVersionID); err != nil {
		return nil, err
	}

	return s.storage.ListWidgetLayouts(ctx, organizationID, appVersionID, string(breakpoint))
}

func (s *Service) ApplyDrag(ctx context.Context, organizationID, appVersionID string, breakpoint Breakpoint, records []DragRecord) ([]*types.WidgetLayout, error) {
	ctx, span := s.tracer.Start(ctx, "layout.Service.ApplyDrag")
	defer span.End()

	return s.persist(ctx, organizationID, appVersionID, breakpoint, func(model *Model) ([]string, error) {
		return ApplyDrag(model, breakpoint, s.columns, records)
	})
}

func (s *Service) ApplyResize(ctx context.Context, organizationID, appVersionID string, breakpoint Breakpoint, records []ResizeRecord) ([]*types.WidgetLayout, error) {
	ctx, span := s.tracer.Start(ctx, "layout.Service.ApplyResize")
	defer span.End()

	return s.persist(ctx, organizationID, appVersionID, breakpoint, func(model *Model) ([]string, error) {
		return ApplyResize(model, breakpoint, s.columns, records)
	})
}

// authorize hides app versions whose layouts belong to another organization
func (s *Service) authorize(ctx context.Context, organizationID, appVersionID string) error {
	owner, err := s.storage.GetAppVersionOrganization(ctx, appVersionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if owner != organizationID {
		return fmt.Errorf("%w: %s", ErrAppVersionNotFound, appVersionID)
	}
	return nil
}

func (s *Service) persist(ctx context.Context, organizationID, appVersionID string, breakpoint Breakpoint, change func(*Model) ([]string, error)) ([]*types.WidgetLayout, error) {
	if !breakpoint.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrBreakpoint, breakpoint)
	}

	var changed []*types.WidgetLayout

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.authorize(ctx, organizationID, appVersionID); err != nil {
			return err
		}

		rows, err := s.storage.ListWidgetLayouts(ctx, organizationID, appVersionID, string(breakpoint))
		if err != nil {
			return err
		}

		model := NewModel()
		for _, r := range rows {
			model.AddWidget(r.WidgetID, r.ComponentType, r.ParentID)
			g := Geometry{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
			if err := model.SetGeometry(r.WidgetID, breakpoint, g); err != nil {
				return err
			}
		}

		ids, err := change(model)
		if err != nil {
			return err
		}

		for _, id := range ids {
			w, _ := model.Widget(id)
			g, _ := model.GetGeometry(id, breakpoint)

			changed = append(changed, &types.WidgetLayout{
				OrganizationID: organizationID,
				AppVersionID:   appVersionID,
				WidgetID:       id,
				ComponentType:  w.Type,
				Breakpoint:     string(breakpoint),
				Left:           g.Left,
				Top:            g.Top,
				Width:          g.Width,
				Height:         g.Height,
				ParentID:       w.Parent,
			})
		}

		return s.storage.UpsertWidgetLayouts(ctx, changed)
	})

	if err != nil {
		return nil, err
	}

	s.logger.Debugf("app version %s: %d widget layouts changed", appVersionID, len(changed))

	return changed, nil
}

// Committer binds the service to one app version and breakpoint so it can
// receive the records of an Engine.
type Committer struct {
	service        ServiceInterface
	organizationID string
	appVersionID   string
	breakpoint     Breakpoint
}

func (c *Committer) CommitDrag(ctx context.Context, records []DragRecord) error {
	_, err := c.service.ApplyDrag(ctx, c.organizationID, c.appVersionID, c.breakpoint, records)
	return err
}

func (c *Committer) CommitResize(ctx context.Context, records []ResizeRecord) error {
	_, err := c.service.ApplyResize(ctx, c.organizationID, c.appVersionID, c.breakpoint, records)
	return err
}

func NewCommitter(service ServiceInterface, organizationID, appVersionID string, breakpoint Breakpoint) *Committer {
	c := new(Committer)

	c.service = service
	c.organizationID = organizationID
	c.appVersionID = appVersionID
	c.breakpoint = breakpoint

	return c
}

func NewService(storage StorageInterface, tx TxInterface, columns int, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.columns = columns
	if s.columns <= 0 {
		s.columns = DefaultGridColumns
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
