// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/canonical/app-builder/internal/types"
	"github.com/canonical/app-builder/pkg/authentication"
)

type ServiceInterface interface {
	ValidateUser(ctx context.Context, email, password, organizationID string) (*types.User, error)
	Login(ctx context.Context, req *LoginRequest, organizationID string, loggedIn *authentication.SessionUser) (*LoginResult, error)
	SwitchOrganization(ctx context.Context, organizationID string, session *authentication.SessionUser) (*LoginResult, error)
	AuthorizeOrganization(ctx context.Context, session *authentication.SessionUser) (*AuthorizeResult, error)
	Signup(ctx context.Context, req *SignupRequest) (*LoginResult, error)
	ResendInvite(ctx context.Context, email string) error
	ActivateAccountWithToken(ctx context.Context, req *ActivateAccountRequest) (*LoginResult, error)
	SetupAdmin(ctx context.Context, req *SetupAdminRequest) (*LoginResult, error)
	SetupAccountFromInvitationToken(ctx context.Context, req *SetupAccountRequest) (*LoginResult, error)
	AcceptOrganizationInvite(ctx context.Context, session *authentication.SessionUser, token string) (*LoginResult, error)
	VerifyInviteToken(ctx context.Context, token, organizationToken string) (*VerifyInviteResult, error)
	VerifyOrganizationToken(ctx context.Context, token string) (*VerifyInviteResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	Session(ctx context.Context, session *authentication.SessionUser) (*SessionPayload, error)
	SSOAuthorizationURL(ctx context.Context, configID, state string) (string, error)
	SSOLogin(ctx context.Context, configID, code string, loggedIn *authentication.SessionUser) (*LoginResult, error)
	Logout(ctx context.Context, session *authentication.SessionUser) error
}

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email, organizationID string, status types.WorkspaceUserStatus) (*types.User, error)
	GetUserByInvitationToken(ctx context.Context, token string) (*types.User, error)
	GetUserByForgotPasswordToken(ctx context.Context, token string) (*types.User, error)
	UpdateUser(ctx context.Context, id string, update *types.UserUpdate) error
	IncrementPasswordRetryCount(ctx context.Context, id string) error
	CountActiveUsers(ctx context.Context) (int, error)

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

	CreateSession(ctx context.Context, userID, device string, expiry time.Time) (*types.UserSession, error)
	DeleteSession(ctx context.Context, id string) error
}

// TxInterface runs fn in a single database transaction
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthzInterface interface {
	AssignOrganizationAdmin(ctx context.Context, organizationID, userID string) error
	AssignOrganizationMember(ctx context.Context, organizationID, userID string) error
}

type EmailInterface interface {
	SendWelcomeEmail(ctx context.Context, to, name, invitationToken, organizationToken, organizationID string) error
	SendOrganizationUserWelcomeEmail(ctx context.Context, to, name, invitationToken, organizationName, organizationID string) error
	SendPasswordResetEmail(ctx context.Context, to, token string) error
}

// SessionMiddlewareInterface resolves the session cookie into the request context
type SessionMiddlewareInterface interface {
	Authenticate() func(http.Handler) http.Handler
	OptionalAuthenticate() func(http.Handler) http.Handler
}
