// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/app-builder/internal/types"
)

func (s *Storage) CreateSession(ctx context.Context, userID, device string, expiry time.Time) (*types.UserSession, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSession")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	var session types.UserSession
	err = s.db.Statement(ctx).
		Insert("user_sessions").
		Columns("id", "user_id", "device", "expiry").
		Values(id.String(), userID, device, expiry.UTC()).
		Suffix("RETURNING id, user_id, device, created_at, expiry, last_logged_in").
		QueryRowContext(ctx).
		Scan(&session.ID, &session.UserID, &session.Device, &session.CreatedAt, &session.Expiry, &session.LastLoggedIn)

	if err != nil {
		return nil, mapWriteError(err, "failed to insert session")
	}

	return &session, nil
}

func (s *Storage) GetSession(ctx context.Context, id string) (*types.UserSession, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSession")
	defer span.End()

	var session types.UserSession
	err := s.db.Statement(ctx).
		Select("id", "user_id", "device", "created_at", "expiry", "last_logged_in").
		From("user_sessions").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&session.ID, &session.UserID, &session.Device, &session.CreatedAt, &session.Expiry, &session.LastLoggedIn)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// TouchSession records activity on the session and extends its expiry.
func (s *Storage) TouchSession(ctx context.Context, id string, expiry time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchSession")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("user_sessions").
		Set("expiry", expiry.UTC()).
		Set("last_logged_in", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	return nil
}

func (s *Storage) DeleteSession(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSession")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_sessions").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
