// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "Unique violation",
			err:      fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}),
			expected: ErrDuplicateKey,
		},
		{
			name:     "Foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			expected: ErrForeignKeyViolation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := mapWriteError(test.err, "failed to create user")
			if !errors.Is(err, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, err)
			}
		})
	}

	t.Run("Other errors keep their cause", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "40001"}

		err := mapWriteError(cause, "failed to create user")
		if errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrForeignKeyViolation) || !errors.Is(err, cause) {
			t.Errorf("unexpected mapping %v", err)
		}
	})
}

func TestIsNoRows(t *testing.T) {
	if !IsNoRows(sql.ErrNoRows) || !IsNoRows(fmt.Errorf("get user: %w", pgx.ErrNoRows)) {
		t.Errorf("expected no rows errors to be detected")
	}

	if IsNoRows(errors.New("connection reset")) {
		t.Errorf("unexpected no rows")
	}
}
