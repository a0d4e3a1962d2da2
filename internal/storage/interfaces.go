// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/app-builder/internal/types"
)

type StorageInterface interface {
	UserStorageInterface
	OrganizationStorageInterface
	SessionStorageInterface
	LayoutStorageInterface
}

type UserStorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email, organizationID string, status types.WorkspaceUserStatus) (*types.User, error)
	GetUserByInvitationToken(ctx context.Context, token string) (*types.User, error)
	GetUserByForgotPasswordToken(ctx context.Context, token string) (*types.User, error)
	UpdateUser(ctx context.Context, id string, update *types.UserUpdate) error
	IncrementPasswordRetryCount(ctx context.Context, id string) error
	CountActiveUsers(ctx context.Context) (int, error)
}

type OrganizationStorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganization(ctx context.Context, idOrSlug string) (*types.Organization, error)
	OrganizationExists(ctx context.Context, name, slug string) (bool, error)
	ListOrganizationsWithLogin(ctx context.Context, userID, sso string) ([]*types.Organization, error)
	GetSSOConfig(ctx context.Context, id string) (*types.SSOConfig, error)

	CreateOrganizationUser(ctx context.Context, ou *types.OrganizationUser) (*types.OrganizationUser, error)
	GetOrganizationUserByToken(ctx context.Context, token string) (*types.OrganizationUser, error)
	ActivateOrganizationUser(ctx context.Context, id string) error
	CountPersonalWorkspaces(ctx context.Context, userID string) (int, error)
	CountActiveWorkspaces(ctx context.Context, userID string) (int, error)
}

type SessionStorageInterface interface {
	CreateSession(ctx context.Context, userID, device string, expiry time.Time) (*types.UserSession, error)
	GetSession(ctx context.Context, id string) (*types.UserSession, error)
	TouchSession(ctx context.Context, id string, expiry time.Time) error
	DeleteSession(ctx context.Context, id string) error
}

type LayoutStorageInterface interface {
	ListWidgetLayouts(ctx context.Context, organizationID, appVersionID, breakpoint string) ([]*types.WidgetLayout, error)
	GetAppVersionOrganization(ctx context.Context, appVersionID string) (string, error)
	UpsertWidgetLayouts(ctx context.Context, layouts []*types.WidgetLayout) error
}
