// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/app-builder/internal/authorization"
	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/mail"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/requestctx"
	"github.com/canonical/app-builder/internal/storage"
	"github.com/canonical/app-builder/internal/tracing"
	"github.com/canonical/app-builder/internal/types"
	"github.com/canonical/app-builder/pkg/authentication"
)

const (
	defaultWorkspaceName = "My workspace"
	defaultWorkspaceSlug = "my-workspace"

	orgInviteRedirectPrefix = "/organization-invitations/"
	ssoSource               = "sso"
)

var _ ServiceInterface = (*Service)(nil)

type Config struct {
	PasswordRetryLimit        int
	DisablePasswordRetryLimit bool
	DisableSignups            bool
	OnboardingQuestionsForAll bool
}

type Service struct {
	storage StorageInterface
	tx      TxInterface
	authz   AuthzInterface
	mail    EmailInterface
	signer  authentication.TokenSignerInterface
	sso     authentication.OIDCClientFactoryInterface
	links   *mail.Links
	config  *Config

	hashCost int
	now      func() time.Time
	// nonce tells apart workspaces named within the same millisecond
	nonce func() string
	// dispatch runs best effort side effects such as emails
	dispatch func(func())

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ValidateUser checks the credentials of a user with an active membership,
// optionally restricted to one organization.
func (s *Service) ValidateUser(ctx context.Context, email, password, organizationID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.ValidateUser")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email, organizationID, types.WorkspaceUserActive)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Security().AuthnLoginFail(email)
		return nil, ErrUnauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}

	if user.Status != types.UserStatusActive {
		s.logger.Security().AuthnLoginFail(user.ID)
		return nil, ErrUnauthorized(types.UserErrorMessage(user.Status))
	}

	if !s.config.DisablePasswordRetryLimit && user.PasswordRetryCount >= s.retryLimit() {
		s.logger.Security().AuthnLoginLock(user.ID)
		return nil, ErrUnauthorized(msgRetryLimit)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)) != nil {
		if err := s.storage.IncrementPasswordRetryCount(ctx, user.ID); err != nil {
			return nil, err
		}
		s.logger.Security().AuthnLoginFail(user.ID)
		return nil, ErrUnauthorized(msgInvalidCredentials)
	}

	return user, nil
}

func (s *Service) retryLimit() int {
	if s.config.PasswordRetryLimit > 0 {
		return s.config.PasswordRetryLimit
	}
	return 5
}

// Login authenticates with email and password. Without an organization the
// default workspace is picked, falling back to any form enabled workspace and
// finally to a new personal workspace.
func (s *Service) Login(ctx context.Context, req *LoginRequest, organizationID string, loggedIn *authentication.SessionUser) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Login")
	defer span.End()

	user, err := s.ValidateUser(ctx, req.Email, req.Password, organizationID)
	if err != nil {
		return nil, err
	}

	var organization *types.Organization

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if organizationID == "" {
			organizations, err := s.storage.ListOrganizationsWithLogin(ctx, user.ID, types.SSOForm)
			if err != nil {
				return err
			}

			for _, o := range organizations {
				if o.ID == user.DefaultOrganizationID {
					organization = o
					break
				}
			}

			if organization == nil && len(organizations) > 0 {
				organization = organizations[0]
			}

			if organization == nil && !strings.HasPrefix(req.RedirectTo, orgInviteRedirectPrefix) {
				if organization, err = s.createPersonalWorkspace(ctx, user.ID, false); err != nil {
					return err
				}
			}
		} else {
			o, err := s.storage.GetOrganization(ctx, organizationID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return err
			}
			organization = o

			if !organization.FormLoginEnabled() {
				return ErrUnauthorized(msgPasswordLoginDisabled)
			}
		}

		retries := 0
		update := &types.UserUpdate{PasswordRetryCount: &retries}
		if organization != nil && user.DefaultOrganizationID != organization.ID {
			update.DefaultOrganizationID = &organization.ID
		}

		return s.storage.UpdateUser(ctx, user.ID, update)
	})

	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnLoginSuccess(user.ID)

	return s.GenerateLoginResultPayload(ctx, user, organization, false, true, loggedIn)
}

// SwitchOrganization moves the session to another workspace the user is active in
func (s *Service) SwitchOrganization(ctx context.Context, organizationID string, session *authentication.SessionUser) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.SwitchOrganization")
	defer span.End()

	if session == nil || !(session.IsPasswordLogin || session.IsSSOLogin) {
		return nil, ErrUnauthorized("")
	}

	user, err := s.storage.GetUserByEmail(ctx, session.Email, organizationID, types.WorkspaceUserActive)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Security().AuthzFailure(session.ID, organizationID)
		return nil, ErrUnauthorized(msgNoWorkspaceAccess)
	}
	if err != nil {
		return nil, err
	}

	organization, err := s.storage.GetOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if (session.IsPasswordLogin && !organization.FormLoginEnabled()) || (session.IsSSOLogin && !organization.InheritSSO) {
		return nil, ErrUnauthorized(msgLoginToContinue)
	}

	if err := s.storage.UpdateUser(ctx, user.ID, &types.UserUpdate{DefaultOrganizationID: &organization.ID}); err != nil {
		return nil, err
	}

	return s.GenerateLoginResultPayload(ctx, session.User, organization, session.IsSSOLogin, session.IsPasswordLogin, session)
}

// AuthorizeOrganization describes the workspace the session is acting on
func (s *Service) AuthorizeOrganization(ctx context.Context, session *authentication.SessionUser) (*AuthorizeResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.AuthorizeOrganization")
	defer span.End()

	if session == nil || session.OrganizationID == "" {
		return nil, ErrUnauthorized("")
	}

	membership := session.Membership(session.OrganizationID, types.WorkspaceUserActive)
	if membership == nil {
		s.logger.Security().AuthzFailure(session.ID, session.OrganizationID)
		return nil, ErrUnauthorized(msgNoWorkspaceAccess)
	}

	if session.DefaultOrganizationID != session.OrganizationID {
		if err := s.storage.UpdateUser(ctx, session.ID, &types.UserUpdate{DefaultOrganizationID: &session.OrganizationID}); err != nil {
			return nil, err
		}
	}

	organization, err := s.storage.GetOrganization(ctx, session.OrganizationID)
	if err != nil {
		return nil, err
	}

	// the authorizer admin tuple is written from the same membership role
	admin := membership.Role == types.RoleAdmin
	groups := []string{authorization.MEMBER_RELATION}
	if admin {
		groups = append(groups, authorization.ADMIN_RELATION)
	}

	return &AuthorizeResult{
		CurrentOrganizationID:   organization.ID,
		CurrentOrganizationSlug: organization.Slug,
		Admin:                   admin,
		GroupPermissions:        groups,
		CurrentUser: CurrentUser{
			ID:        session.ID,
			Email:     session.Email,
			FirstName: session.FirstName,
			LastName:  session.LastName,
		},
	}, nil
}

// Session returns the summary of the current session
func (s *Service) Session(ctx context.Context, session *authentication.SessionUser) (*SessionPayload, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Session")
	defer span.End()

	if session == nil {
		return nil, ErrUnauthorized("")
	}

	var organization *types.Organization
	if session.OrganizationID != "" {
		o, err := s.storage.GetOrganization(ctx, session.OrganizationID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		organization = o
	}

	return s.GenerateSessionPayload(ctx, session, organization)
}

func (s *Service) Logout(ctx context.Context, session *authentication.SessionUser) error {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Logout")
	defer span.End()

	if session == nil {
		return nil
	}

	if err := s.storage.DeleteSession(ctx, session.SessionID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	return nil
}

// GenerateLoginResultPayload issues the session token. A new session row is
// created unless the caller is already logged in as the same user, in which
// case the organization is appended to the existing session.
func (s *Service) GenerateLoginResultPayload(ctx context.Context, user *types.User, organization *types.Organization, isInstanceSSO, isPasswordLogin bool, loggedIn *authentication.SessionUser) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.GenerateLoginResultPayload")
	defer span.End()

	sameUser := loggedIn != nil && loggedIn.User != nil && loggedIn.ID == user.ID

	organizationIDs := make([]string, 0)
	if sameUser {
		organizationIDs = append(organizationIDs, loggedIn.OrganizationIDs...)
	}
	if organization != nil && !slices.Contains(organizationIDs, organization.ID) {
		organizationIDs = append(organizationIDs, organization.ID)
	}

	claims := &authentication.SessionClaims{
		Username:        user.ID,
		OrganizationIDs: organizationIDs,
		IsSSOLogin:      isInstanceSSO,
		IsPasswordLogin: isPasswordLogin,
	}
	claims.Subject = user.Email

	if sameUser {
		claims.SessionID = loggedIn.SessionID
		claims.IsSSOLogin = claims.IsSSOLogin || loggedIn.IsSSOLogin
		claims.IsPasswordLogin = claims.IsPasswordLogin || loggedIn.IsPasswordLogin
	} else {
		session, err := s.createSession(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		claims.SessionID = session.ID
	}

	token, err := s.signer.Sign(ctx, claims)
	if err != nil {
		return nil, err
	}

	result := &LoginResult{
		Token:     token,
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	if organization != nil {
		result.CurrentOrganizationID = organization.ID
		result.CurrentOrganizationSlug = organization.Slug
	} else {
		result.NoWorkspaceAttachedInTheSession = true
	}

	return result, nil
}

// GenerateInviteSignupPayload issues a session without any workspace for a user
// that still has to accept a workspace invite.
func (s *Service) GenerateInviteSignupPayload(ctx context.Context, user *types.User, source string) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.GenerateInviteSignupPayload")
	defer span.End()

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	claims := &authentication.SessionClaims{
		SessionID:       session.ID,
		Username:        user.ID,
		OrganizationIDs: []string{},
		IsSSOLogin:      source == ssoSource,
		IsPasswordLogin: source == string(types.SourceSignup),
	}
	claims.Subject = user.Email

	token, err := s.signer.Sign(ctx, claims)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

// GenerateSessionPayload falls back to the default organization, then to the
// first organization of the session, when no organization is given.
func (s *Service) GenerateSessionPayload(ctx context.Context, session *authentication.SessionUser, organization *types.Organization) (*SessionPayload, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.GenerateSessionPayload")
	defer span.End()

	current := ""
	switch {
	case organization != nil:
		current = organization.ID
	case slices.Contains(session.OrganizationIDs, session.DefaultOrganizationID):
		current = session.DefaultOrganizationID
	case len(session.OrganizationIDs) > 0:
		current = session.OrganizationIDs[0]
	}

	active, err := s.storage.CountActiveWorkspaces(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	payload := &SessionPayload{
		ID:                              session.ID,
		Email:                           session.Email,
		FirstName:                       session.FirstName,
		LastName:                        session.LastName,
		NoWorkspaceAttachedInTheSession: active == 0,
		CurrentOrganizationID:           current,
	}
	if organization != nil {
		payload.CurrentOrganizationSlug = organization.Slug
	}

	return payload, nil
}

func (s *Service) createSession(ctx context.Context, userID string) (*types.UserSession, error) {
	device := requestctx.FromContext(ctx).Device()

	session, err := s.storage.CreateSession(ctx, userID, device, s.now().Add(authentication.SessionTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// createPersonalWorkspace creates a workspace owned by the user, the membership
// is pending until the account is activated when invite is set.
func (s *Service) createPersonalWorkspace(ctx context.Context, userID string, invite bool) (*types.Organization, error) {
	name, slug := nextNameAndSlug(defaultWorkspaceName, s.now(), s.nonce())

	organization, err := s.storage.CreateOrganization(ctx, &types.Organization{Name: name, Slug: slug})
	if err != nil {
		return nil, err
	}

	if userID == "" {
		return organization, nil
	}

	if _, err := s.addMember(ctx, userID, organization.ID, true, invite, types.SourceSignup); err != nil {
		return nil, err
	}

	return organization, nil
}

// addMember creates the membership row and the matching authorization group
func (s *Service) addMember(ctx context.Context, userID, organizationID string, admin, invite bool, source types.Source) (*types.OrganizationUser, error) {
	ou := &types.OrganizationUser{
		OrganizationID: organizationID,
		UserID:         userID,
		Status:         types.WorkspaceUserActive,
		Source:         source,
		Role:           types.RoleMember,
	}

	if invite {
		ou.Status = types.WorkspaceUserInvited
		ou.InvitationToken = uuid.NewString()
	}

	if admin {
		ou.Role = types.RoleAdmin
	}

	membership, err := s.storage.CreateOrganizationUser(ctx, ou)
	if err != nil {
		return nil, err
	}

	if admin {
		err = s.authz.AssignOrganizationAdmin(ctx, organizationID, userID)
	} else {
		err = s.authz.AssignOrganizationMember(ctx, organizationID, userID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to assign organization group: %w", err)
	}

	return membership, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// sendEmail dispatches the email outside of the request lifecycle, failures are only logged
func (s *Service) sendEmail(ctx context.Context, kind string, send func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	s.dispatch(func() {
		if err := send(ctx); err != nil {
			s.logger.Errorf("failed to send %s email: %v", kind, err)
		}
	})
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	authz AuthzInterface,
	mailer EmailInterface,
	signer authentication.TokenSignerInterface,
	sso authentication.OIDCClientFactoryInterface,
	links *mail.Links,
	config *Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.authz = authz
	s.mail = mailer
	s.signer = signer
	s.sso = sso
	s.links = links
	s.config = config
	if s.config == nil {
		s.config = new(Config)
	}

	s.hashCost = bcrypt.DefaultCost
	s.now = time.Now
	s.nonce = func() string { return uuid.NewString()[:8] }
	s.dispatch = func(f func()) { go f() }

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
