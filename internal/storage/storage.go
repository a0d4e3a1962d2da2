// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/app-builder/internal/db"
	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
	"github.com/canonical/app-builder/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var userColumns = []string{
	"u.id",
	"u.email",
	"u.first_name",
	"u.last_name",
	"u.password_digest",
	"u.status",
	"u.source",
	"u.invitation_token",
	"u.forgot_password_token",
	"u.password_retry_count",
	"u.default_organization_id",
	"u.company_name",
	"u.company_size",
	"u.role",
	"u.phone_number",
	"u.created_at",
	"u.updated_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

// rowScanner is satisfied by both sq.RowScanner and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*types.User, error) {
	var (
		u                                           types.User
		firstName, lastName, password               sql.NullString
		invitationToken, forgotToken, defaultOrgID  sql.NullString
		companyName, companySize, role, phoneNumber sql.NullString
	)

	err := row.Scan(
		&u.ID,
		&u.Email,
		&firstName,
		&lastName,
		&password,
		&u.Status,
		&u.Source,
		&invitationToken,
		&forgotToken,
		&u.PasswordRetryCount,
		&defaultOrgID,
		&companyName,
		&companySize,
		&role,
		&phoneNumber,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.FirstName = firstName.String
	u.LastName = lastName.String
	u.PasswordDigest = password.String
	u.InvitationToken = invitationToken.String
	u.ForgotPasswordToken = forgotToken.String
	u.DefaultOrganizationID = defaultOrgID.String
	u.CompanyName = companyName.String
	u.CompanySize = companySize.String
	u.Role = role.String
	u.PhoneNumber = phoneNumber.String

	return &u, nil
}

// nullable stores empty strings as NULL
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns(
			"id", "email", "first_name", "last_name", "password_digest", "status", "source",
			"invitation_token", "default_organization_id", "company_name", "company_size", "role", "phone_number",
		).
		Values(
			id.String(), normalizeEmail(u.Email), u.FirstName, u.LastName, nullable(u.PasswordDigest), string(u.Status), string(u.Source),
			nullable(u.InvitationToken), nullable(u.DefaultOrganizationID), nullable(u.CompanyName), nullable(u.CompanySize),
			nullable(u.Role), nullable(u.PhoneNumber),
		).
		Suffix("RETURNING " + strings.Join(unaliased(userColumns), ", ")).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert user")
	}

	return created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, s.selectUsers(ctx).Where(sq.Eq{"u.id": id}))
}

// GetUserByEmail looks up a user by email. When organizationID is set the
// user must hold a membership with the given status in that organization.
func (s *Storage) GetUserByEmail(ctx context.Context, email, organizationID string, status types.WorkspaceUserStatus) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	if organizationID != "" {
		if _, err := uuid.Parse(organizationID); err != nil {
			return nil, ErrNotFound
		}
	}

	query := s.selectUsers(ctx).Where(sq.Eq{"u.email": normalizeEmail(email)})

	if organizationID != "" {
		membership := sq.Eq{"ou.organization_id": organizationID}
		if status != "" {
			membership["ou.status"] = string(status)
		}
		query = query.
			Join("organization_users ou ON ou.user_id = u.id").
			Where(membership)
	}

	return s.getUser(ctx, query)
}

func (s *Storage) GetUserByInvitationToken(ctx context.Context, token string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByInvitationToken")
	defer span.End()

	if token == "" {
		return nil, ErrNotFound
	}

	return s.getUser(ctx, s.selectUsers(ctx).Where(sq.Eq{"u.invitation_token": token}))
}

func (s *Storage) GetUserByForgotPasswordToken(ctx context.Context, token string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByForgotPasswordToken")
	defer span.End()

	if token == "" {
		return nil, ErrNotFound
	}

	return s.getUser(ctx, s.selectUsers(ctx).Where(sq.Eq{"u.forgot_password_token": token}))
}

// UpdateUser applies the non nil fields of the update.
func (s *Storage) UpdateUser(ctx context.Context, id string, update *types.UserUpdate) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	updateMap := userUpdateMap(update)
	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = time.Now().UTC()

	res, err := s.db.Statement(ctx).
		Update("users").
		SetMap(updateMap).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return mapWriteError(err, "failed to update user")
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}

func userUpdateMap(update *types.UserUpdate) map[string]interface{} {
	m := make(map[string]interface{})
	if update == nil {
		return m
	}

	if update.FirstName != nil {
		m["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		m["last_name"] = *update.LastName
	}
	if update.PasswordDigest != nil {
		// hashed by the caller
		m["password_digest"] = *update.PasswordDigest
	}
	if update.Status != nil {
		m["status"] = string(*update.Status)
	}
	if update.Source != nil {
		m["source"] = string(*update.Source)
	}
	if update.InvitationToken != nil {
		m["invitation_token"] = nullable(*update.InvitationToken)
	}
	if update.ForgotPasswordToken != nil {
		m["forgot_password_token"] = nullable(*update.ForgotPasswordToken)
	}
	if update.PasswordRetryCount != nil {
		m["password_retry_count"] = *update.PasswordRetryCount
	}
	if update.DefaultOrganizationID != nil {
		m["default_organization_id"] = nullable(*update.DefaultOrganizationID)
	}
	if update.CompanyName != nil {
		m["company_name"] = nullable(*update.CompanyName)
	}
	if update.CompanySize != nil {
		m["company_size"] = nullable(*update.CompanySize)
	}
	if update.Role != nil {
		m["role"] = nullable(*update.Role)
	}
	if update.PhoneNumber != nil {
		m["phone_number"] = nullable(*update.PhoneNumber)
	}

	return m
}

func (s *Storage) IncrementPasswordRetryCount(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.IncrementPasswordRetryCount")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("users").
		Set("password_retry_count", sq.Expr("password_retry_count + 1")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to increment password retry count: %w", err)
	}

	return nil
}

func (s *Storage) CountActiveUsers(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveUsers")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("users").
		Where(sq.Eq{"status": string(types.UserStatusActive)}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}

	return count, nil
}

func (s *Storage) selectUsers(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(userColumns...).
		From("users u")
}

// getUser runs a single user query and attaches every membership of the user.
func (s *Storage) getUser(ctx context.Context, query sq.SelectBuilder) (*types.User, error) {
	u, err := scanUser(query.Limit(1).QueryRowContext(ctx))
	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	memberships, err := s.listOrganizationUsers(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.OrganizationUsers = memberships

	return u, nil
}

func unaliased(columns []string) []string {
	ret := make([]string, 0, len(columns))
	for _, c := range columns {
		ret = append(ret, strings.TrimPrefix(c, "u."))
	}
	return ret
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
