// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"errors"

	"github.com/canonical/app-builder/internal/storage"
	"github.com/canonical/app-builder/internal/types"
	"github.com/canonical/app-builder/pkg/authentication"
)

func (s *Service) ssoClient(ctx context.Context, configID string) (*types.SSOConfig, authentication.OIDCClientInterface, error) {
	config, err := s.storage.GetSSOConfig(ctx, configID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, ErrNotFound("")
	}
	if err != nil {
		return nil, nil, err
	}

	if !config.Enabled {
		return nil, nil, ErrUnauthorized(msgSSODisabled)
	}

	client, err := s.sso.NewClient(ctx, config, s.links.SSOCallbackURL(config.ID))
	if err != nil {
		return nil, nil, err
	}

	return config, client, nil
}

// SSOAuthorizationURL returns the identity provider page the browser is sent to
func (s *Service) SSOAuthorizationURL(ctx context.Context, configID, state string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.SSOAuthorizationURL")
	defer span.End()

	_, client, err := s.ssoClient(ctx, configID)
	if err != nil {
		return "", err
	}

	return client.AuthCodeURL(state), nil
}

// SSOLogin completes an organization level OpenID Connect login. Only users
// that are already members of the organization can sign in.
func (s *Service) SSOLogin(ctx context.Context, configID, code string, loggedIn *authentication.SessionUser) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.SSOLogin")
	defer span.End()

	config, client, err := s.ssoClient(ctx, configID)
	if err != nil {
		return nil, err
	}

	identity, err := client.Exchange(ctx, code)
	if err != nil {
		s.logger.Errorf("sso exchange failed for config %s: %v", config.ID, err)
		s.logger.Security().AuthnLoginFail(configID)
		return nil, ErrUnauthorized("")
	}

	user, err := s.storage.GetUserByEmail(ctx, identity.Email, config.OrganizationID, types.WorkspaceUserActive)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Security().AuthnLoginFail(identity.Email)
		return nil, ErrUnauthorized(msgSSONotMember)
	}
	if err != nil {
		return nil, err
	}

	if user.Status == types.UserStatusArchived {
		s.logger.Security().AuthnLoginFail(user.ID)
		return nil, ErrUnauthorized(types.UserErrorMessage(user.Status))
	}

	organization, err := s.storage.GetOrganization(ctx, config.OrganizationID)
	if err != nil {
		return nil, err
	}

	update := &types.UserUpdate{DefaultOrganizationID: &organization.ID}
	if user.Status != types.UserStatusActive {
		noToken := ""
		update.InvitationToken = &noToken
		update.ApplyLifecycle(types.EventUserSSOActivate, user.Source)
	}

	if err := s.storage.UpdateUser(ctx, user.ID, update); err != nil {
		return nil, err
	}

	s.logger.Security().AuthnLoginSuccess(user.ID)

	return s.GenerateLoginResultPayload(ctx, user, organization, true, false, loggedIn)
}
