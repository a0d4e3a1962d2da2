// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/app-builder/internal/types"
)

var organizationColumns = []string{"o.id", "o.name", "o.slug", "o.enable_sign_up", "o.domain", "o.inherit_sso", "o.created_at", "o.updated_at"}

var organizationUserColumns = []string{"ou.id", "ou.organization_id", "ou.user_id", "ou.status", "ou.source", "ou.invitation_token", "ou.role", "ou.created_at", "ou.updated_at"}

func scanOrganization(row rowScanner) (*types.Organization, error) {
	var (
		o      types.Organization
		domain sql.NullString
	)

	if err := row.Scan(&o.ID, &o.Name, &o.Slug, &o.EnableSignUp, &domain, &o.InheritSSO, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.Domain = domain.String

	return &o, nil
}

func scanOrganizationUser(row rowScanner) (*types.OrganizationUser, error) {
	var (
		ou          types.OrganizationUser
		token, role sql.NullString
	)

	err := row.Scan(&ou.ID, &ou.OrganizationID, &ou.UserID, &ou.Status, &ou.Source, &token, &role, &ou.CreatedAt, &ou.UpdatedAt)
	if err != nil {
		return nil, err
	}
	ou.InvitationToken = token.String
	ou.Role = role.String

	return &ou, nil
}

// CreateOrganization inserts the organization along with its SSO configs.
// Organizations created without configs get form login enabled.
func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "slug", "enable_sign_up", "domain", "inherit_sso").
		Values(id.String(), o.Name, o.Slug, o.EnableSignUp, nullable(o.Domain), o.InheritSSO).
		Suffix("RETURNING id, name, slug, enable_sign_up, domain, inherit_sso, created_at, updated_at").
		QueryRowContext(ctx)

	created, err := scanOrganization(row)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert organization")
	}

	configs := o.SSOConfigs
	if len(configs) == 0 {
		configs = []*types.SSOConfig{{SSO: types.SSOForm, Enabled: true}}
	}

	for _, c := range configs {
		config, err := s.createSSOConfig(ctx, created.ID, c)
		if err != nil {
			return nil, err
		}
		created.SSOConfigs = append(created.SSOConfigs, config)
	}

	return created, nil
}

func (s *Storage) createSSOConfig(ctx context.Context, organizationID string, c *types.SSOConfig) (*types.SSOConfig, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate sso config ID: %w", err)
	}

	configs := c.Configs
	if configs == nil {
		configs = map[string]string{}
	}

	raw, err := json.Marshal(configs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sso configs: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("sso_configs").
		Columns("id", "organization_id", "sso", "enabled", "configs").
		Values(id.String(), organizationID, c.SSO, c.Enabled, raw).
		ExecContext(ctx)

	if err != nil {
		return nil, mapWriteError(err, "failed to insert sso config")
	}

	return &types.SSOConfig{ID: id.String(), OrganizationID: organizationID, SSO: c.SSO, Enabled: c.Enabled, Configs: configs}, nil
}

// GetOrganization resolves an organization either by id or by slug.
func (s *Storage) GetOrganization(ctx context.Context, idOrSlug string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganization")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(organizationColumns...).
		From("organizations o")

	if _, err := uuid.Parse(idOrSlug); err == nil {
		query = query.Where(sq.Eq{"o.id": idOrSlug})
	} else {
		query = query.Where(sq.Eq{"o.slug": idOrSlug})
	}

	o, err := scanOrganization(query.QueryRowContext(ctx))
	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.attachSSOConfigs(ctx, []*types.Organization{o}); err != nil {
		return nil, err
	}

	return o, nil
}

// OrganizationExists reports if either the name or the slug is taken.
func (s *Storage) OrganizationExists(ctx context.Context, name, slug string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.OrganizationExists")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("organizations").
		Where(sq.Or{sq.Eq{"name": name}, sq.Eq{"slug": slug}}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to look up organization: %w", err)
	}

	return count > 0, nil
}

// ListOrganizationsWithLogin returns the organizations the user is an active
// member of which have the given login method enabled, oldest first.
func (s *Storage) ListOrganizationsWithLogin(ctx context.Context, userID, sso string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationsWithLogin")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(organizationColumns...).
		From("organizations o").
		Join("organization_users ou ON ou.organization_id = o.id").
		Join("sso_configs sc ON sc.organization_id = o.id").
		Where(sq.Eq{
			"ou.user_id": userID,
			"ou.status":  string(types.WorkspaceUserActive),
			"sc.sso":     sso,
			"sc.enabled": true,
		}).
		OrderBy("o.created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var organizations []*types.Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		organizations = append(organizations, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	if err := s.attachSSOConfigs(ctx, organizations); err != nil {
		return nil, err
	}

	return organizations, nil
}

func (s *Storage) GetSSOConfig(ctx context.Context, id string) (*types.SSOConfig, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSSOConfig")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "organization_id", "sso", "enabled", "configs").
		From("sso_configs").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	c, err := scanSSOConfig(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sso config: %w", err)
	}

	return c, nil
}

func scanSSOConfig(row rowScanner) (*types.SSOConfig, error) {
	var (
		c   types.SSOConfig
		raw []byte
	)

	if err := row.Scan(&c.ID, &c.OrganizationID, &c.SSO, &c.Enabled, &raw); err != nil {
		return nil, err
	}

	c.Configs = map[string]string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c.Configs); err != nil {
			return nil, fmt.Errorf("failed to decode sso configs: %w", err)
		}
	}

	return &c, nil
}

func (s *Storage) attachSSOConfigs(ctx context.Context, organizations []*types.Organization) error {
	if len(organizations) == 0 {
		return nil
	}

	byID := make(map[string]*types.Organization, len(organizations))
	ids := make([]string, 0, len(organizations))
	for _, o := range organizations {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "organization_id", "sso", "enabled", "configs").
		From("sso_configs").
		Where(sq.Eq{"organization_id": ids}).
		QueryContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to list sso configs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanSSOConfig(rows)
		if err != nil {
			return fmt.Errorf("failed to scan sso config: %w", err)
		}
		if o, ok := byID[c.OrganizationID]; ok {
			o.SSOConfigs = append(o.SSOConfigs, c)
		}
	}

	return rows.Err()
}

func (s *Storage) CreateOrganizationUser(ctx context.Context, ou *types.OrganizationUser) (*types.OrganizationUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganizationUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("organization_users").
		Columns("id", "organization_id", "user_id", "status", "source", "invitation_token", "role").
		Values(id.String(), ou.OrganizationID, ou.UserID, string(ou.Status), string(ou.Source), nullable(ou.InvitationToken), nullable(ou.Role)).
		Suffix("RETURNING id, organization_id, user_id, status, source, invitation_token, role, created_at, updated_at").
		QueryRowContext(ctx)

	created, err := scanOrganizationUser(row)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert membership")
	}

	return created, nil
}

// GetOrganizationUserByToken returns the membership holding the invitation
// token, with its user attached.
func (s *Storage) GetOrganizationUserByToken(ctx context.Context, token string) (*types.OrganizationUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationUserByToken")
	defer span.End()

	if token == "" {
		return nil, ErrNotFound
	}

	row := s.db.Statement(ctx).
		Select(organizationUserColumns...).
		From("organization_users ou").
		Where(sq.Eq{"ou.invitation_token": token}).
		QueryRowContext(ctx)

	ou, err := scanOrganizationUser(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	user, err := s.getUser(ctx, s.selectUsers(ctx).Where(sq.Eq{"u.id": ou.UserID}))
	if err != nil {
		return nil, err
	}
	ou.User = user

	return ou, nil
}

// ActivateOrganizationUser marks the membership active and consumes its invitation token.
func (s *Storage) ActivateOrganizationUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ActivateOrganizationUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("organization_users").
		SetMap(map[string]interface{}{
			"status":           string(types.WorkspaceUserActive),
			"invitation_token": nil,
			"updated_at":       sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to activate membership: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}

// CountPersonalWorkspaces counts the workspaces the user created through instance signup.
func (s *Storage) CountPersonalWorkspaces(ctx context.Context, userID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountPersonalWorkspaces")
	defer span.End()

	return s.countMemberships(ctx, sq.Eq{"user_id": userID, "source": string(types.SourceSignup)})
}

func (s *Storage) CountActiveWorkspaces(ctx context.Context, userID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveWorkspaces")
	defer span.End()

	return s.countMemberships(ctx, sq.Eq{"user_id": userID, "status": string(types.WorkspaceUserActive)})
}

func (s *Storage) countMemberships(ctx context.Context, where sq.Eq) (int, error) {
	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("organization_users").
		Where(where).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}

	return count, nil
}

func (s *Storage) listOrganizationUsers(ctx context.Context, userID string) ([]*types.OrganizationUser, error) {
	rows, err := s.db.Statement(ctx).
		Select(organizationUserColumns...).
		From("organization_users ou").
		Where(sq.Eq{"ou.user_id": userID}).
		OrderBy("ou.created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.OrganizationUser
	for rows.Next() {
		ou, err := scanOrganizationUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, ou)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}
