// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/canonical/app-builder/internal/storage"
	"github.com/canonical/app-builder/internal/types"
)

// SignupCase is the outcome of a signup by an email that already has an account
type SignupCase int

const (
	SignupNoAction SignupCase = iota
	SignupInvitedButNotActivated
	SignupActiveAccountNotInWorkspace
	SignupActiveUserWantsWorkspace
	SignupAdminInvitedWantsInstanceSignup
	SignupActivatedNoActiveWorkspace
	SignupInstanceSignupIncomplete
	SignupAlreadyExists
)

func (c SignupCase) String() string {
	switch c {
	case SignupInvitedButNotActivated:
		return "invited-but-not-activated"
	case SignupActiveAccountNotInWorkspace:
		return "active-account-not-in-workspace"
	case SignupActiveUserWantsWorkspace:
		return "active-user-wants-workspace"
	case SignupAdminInvitedWantsInstanceSignup:
		return "admin-invited-wants-instance-signup"
	case SignupActivatedNoActiveWorkspace:
		return "activated-no-active-workspace"
	case SignupInstanceSignupIncomplete:
		return "instance-signup-incomplete"
	case SignupAlreadyExists:
		return "already-exists"
	default:
		return "no-action"
	}
}

type signupParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ClassifySignupCase resolves the signup of an existing user into exactly one
// case. Checks run in priority order, the first match wins.
func ClassifySignupCase(user *types.User, organizationID string, personalWorkspaces int) SignupCase {
	var (
		hasToken           = user.InvitationToken != ""
		invitedHere        = organizationID != "" && user.Membership(organizationID, types.WorkspaceUserInvited) != nil
		activeHere         = organizationID != "" && user.Membership(organizationID, types.WorkspaceUserActive) != nil
		hasActiveWorkspace = user.HasMembershipWithStatus(types.WorkspaceUserActive)
		hasSomeInvites     = user.HasMembershipWithStatus(types.WorkspaceUserInvited)
	)

	switch {
	case invitedHere && hasToken:
		return SignupInvitedButNotActivated
	case invitedHere && !hasToken:
		return SignupActiveAccountNotInWorkspace
	case hasActiveWorkspace && organizationID != "" && !activeHere:
		return SignupActiveUserWantsWorkspace
	case hasToken && hasSomeInvites:
		return SignupAdminInvitedWantsInstanceSignup
	case !hasToken && hasSomeInvites:
		return SignupActivatedNoActiveWorkspace
	case hasToken && personalWorkspaces > 0:
		return SignupInstanceSignupIncomplete
	case activeHere || hasActiveWorkspace:
		return SignupAlreadyExists
	}

	return SignupNoAction
}

// Signup registers an account, either on the instance with a personal
// workspace or directly into a workspace that allows signups. A nil result
// without error means the user has to follow the emailed activation link.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Signup")
	defer span.End()

	if s.config.DisableSignups {
		return nil, ErrNotAcceptable("")
	}

	existing, err := s.storage.GetUserByEmail(ctx, req.Email, "", "")
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	var organization *types.Organization
	if req.OrganizationID != "" {
		organization, err = s.storage.GetOrganization(ctx, req.OrganizationID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound(msgOrganizationNotFound)
		}
		if err != nil {
			return nil, err
		}

		if !organization.EnableSignUp {
			return nil, ErrForbidden(msgWorkspaceSignupOff)
		}

		if !validDomain(req.Email, organization.Domain) {
			return nil, ErrForbidden(msgDomainMismatch)
		}
	}

	first, last := splitName(req.Name)
	params := signupParams{Email: req.Email, Password: req.Password, FirstName: first, LastName: last}

	if existing != nil {
		return s.workspaceLevelSignup(ctx, existing, organization, params)
	}

	return s.createUserOrPersonalWorkspace(ctx, params, nil, organization)
}

func (s *Service) workspaceLevelSignup(ctx context.Context, existing *types.User, organization *types.Organization, params signupParams) (*LoginResult, error) {
	organizationID := ""
	if organization != nil {
		organizationID = organization.ID
	}

	personalWorkspaces, err := s.storage.CountPersonalWorkspaces(ctx, existing.ID)
	if err != nil {
		return nil, err
	}

	signupCase := ClassifySignupCase(existing, organizationID, personalWorkspaces)
	s.logger.Debugf("signup of user %s resolved to %s", existing.ID, signupCase)

	switch signupCase {
	case SignupInvitedButNotActivated:
		return s.redeemWorkspaceInvite(ctx, existing, organization, params)

	case SignupActiveAccountNotInWorkspace:
		invited := existing.Membership(organizationID, types.WorkspaceUserInvited)
		s.sendOrgInvite(ctx, existing.Email, params.FirstName, organization, invited.InvitationToken)

		return nil, ErrNotAcceptable(msgAlreadyRegistered)

	case SignupActiveUserWantsWorkspace:
		var membership *types.OrganizationUser
		err := s.tx.WithTx(ctx, func(ctx context.Context) error {
			var err error
			membership, err = s.addMember(ctx, existing.ID, organizationID, false, true, types.SourceWorkspaceSignup)
			return err
		})
		if err != nil {
			return nil, err
		}

		var defaultOrganization *types.Organization
		if existing.DefaultOrganizationID != "" {
			defaultOrganization, err = s.storage.GetOrganization(ctx, existing.DefaultOrganizationID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, err
			}
		}

		return s.processOrganizationSignup(ctx, existing, membership.InvitationToken, organizationID, defaultOrganization)

	case SignupAdminInvitedWantsInstanceSignup:
		params.Email = existing.Email

		if personalWorkspaces == 0 {
			_, err := s.createUserOrPersonalWorkspace(ctx, params, existing, nil)
			return nil, err
		}

		digest, err := s.hashPassword(params.Password)
		if err != nil {
			return nil, err
		}

		source := types.SourceSignup
		update := &types.UserUpdate{LastName: &params.LastName, PasswordDigest: &digest, Source: &source}
		if params.FirstName != "" {
			update.FirstName = &params.FirstName
		}

		if err := s.storage.UpdateUser(ctx, existing.ID, update); err != nil {
			return nil, err
		}

		s.sendWelcome(ctx, existing, "", "")

		return nil, nil

	case SignupActivatedNoActiveWorkspace, SignupInstanceSignupIncomplete:
		if organizationID != "" {
			s.sendWelcome(ctx, existing, "", "")
			return nil, ErrNotAcceptable(msgFinishSetup)
		}

		for _, ou := range existing.OrganizationUsers {
			if ou.Status != types.WorkspaceUserInvited {
				continue
			}

			invitedTo, err := s.storage.GetOrganization(ctx, ou.OrganizationID)
			if err != nil {
				return nil, err
			}
			s.sendOrgInvite(ctx, existing.Email, params.FirstName, invitedTo, ou.InvitationToken)

			return nil, ErrNotAcceptable(msgAlreadyRegistered)
		}

		s.sendWelcome(ctx, existing, "", "")

		return nil, ErrNotAcceptable(msgAlreadyRegistered)

	case SignupAlreadyExists:
		if organizationID != "" {
			return nil, ErrNotAcceptable(msgAlreadyInWorkspace)
		}
		return nil, ErrNotAcceptable(msgEmailExistsDot)
	}

	return nil, nil
}

// redeemWorkspaceInvite activates an account invited by a workspace admin that
// signs up to that workspace. Activation consumes the membership invitation
// token, so the user is logged straight into the workspace with no invite link.
func (s *Service) redeemWorkspaceInvite(ctx context.Context, user *types.User, organization *types.Organization, params signupParams) (*LoginResult, error) {
	invited := user.Membership(organization.ID, types.WorkspaceUserInvited)

	digest, err := s.hashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	noToken := ""
	update := &types.UserUpdate{
		InvitationToken:       &noToken,
		PasswordDigest:        &digest,
		LastName:              &params.LastName,
		DefaultOrganizationID: &organization.ID,
	}
	if params.FirstName != "" {
		update.FirstName = &params.FirstName
	}
	update.ApplyLifecycle(types.EventUserRedeem, "")

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.UpdateUser(ctx, user.ID, update); err != nil {
			return err
		}

		return s.storage.ActivateOrganizationUser(ctx, invited.ID)
	})
	if err != nil {
		return nil, err
	}

	if params.FirstName != "" {
		user.FirstName = params.FirstName
	}
	user.LastName = params.LastName
	user.InvitationToken = ""
	invited.Status = types.WorkspaceUserActive
	invited.InvitationToken = ""

	return s.GenerateLoginResultPayload(ctx, user, organization, false, true, nil)
}

// createUserOrPersonalWorkspace creates the account. Instance signups also get
// a personal workspace and must confirm their email, workspace signups are
// active right away and receive the workspace invite link.
func (s *Service) createUserOrPersonalWorkspace(ctx context.Context, params signupParams, existing *types.User, organization *types.Organization) (*LoginResult, error) {
	digest, err := s.hashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	var (
		user       = existing
		workspace  = organization
		membership *types.OrganizationUser
	)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		if workspace == nil {
			if workspace, err = s.createPersonalWorkspace(ctx, "", false); err != nil {
				return err
			}
		}

		if user == nil {
			event := types.EventUserSignUp
			if organization != nil {
				event = types.EventUserSignupActivate
			}
			status, source := types.StatusAndSource(event, "")

			u := &types.User{
				Email:                 params.Email,
				FirstName:             params.FirstName,
				LastName:              params.LastName,
				PasswordDigest:        digest,
				Status:                status,
				Source:                source,
				DefaultOrganizationID: workspace.ID,
			}
			if organization == nil {
				u.InvitationToken = uuid.NewString()
			}

			if user, err = s.storage.CreateUser(ctx, u); err != nil {
				return err
			}
			s.logger.Security().UserCreated(user.ID)
		}

		memberSource := types.SourceSignup
		if organization != nil {
			memberSource = types.SourceWorkspaceSignup
		}

		membership, err = s.addMember(ctx, user.ID, workspace.ID, organization == nil, true, memberSource)
		if err != nil {
			return err
		}

		if existing == nil || organization != nil {
			return nil
		}

		source := types.SourceSignup
		update := &types.UserUpdate{
			LastName:              &params.LastName,
			DefaultOrganizationID: &workspace.ID,
			PasswordDigest:        &digest,
			Source:                &source,
		}
		if params.FirstName != "" {
			update.FirstName = &params.FirstName
		}

		return s.storage.UpdateUser(ctx, existing.ID, update)
	})

	if err != nil {
		return nil, err
	}

	if organization != nil {
		return s.processOrganizationSignup(ctx, user, membership.InvitationToken, organization.ID, nil)
	}

	s.sendWelcome(ctx, user, "", "")

	return nil, nil
}

// processOrganizationSignup issues a session for the user and hands back the
// workspace invite link the client redirects to.
func (s *Service) processOrganizationSignup(ctx context.Context, user *types.User, invitationToken, organizationID string, defaultOrganization *types.Organization) (*LoginResult, error) {
	var (
		result *LoginResult
		err    error
	)

	if defaultOrganization != nil {
		result, err = s.GenerateLoginResultPayload(ctx, user, defaultOrganization, false, true, nil)
	} else {
		result, err = s.GenerateInviteSignupPayload(ctx, user, string(types.SourceSignup))
	}

	if err != nil {
		return nil, err
	}

	result.OrganizationInviteURL = s.links.OrganizationInviteURL(invitationToken, organizationID, false)

	return result, nil
}

func (s *Service) sendOrgInvite(ctx context.Context, email, firstName string, organization *types.Organization, invitationToken string) {
	s.sendEmail(ctx, "organization invite", func(ctx context.Context) error {
		return s.mail.SendOrganizationUserWelcomeEmail(ctx, email, firstName, invitationToken, organization.Name, organization.ID)
	})
}

func (s *Service) sendWelcome(ctx context.Context, user *types.User, organizationToken, organizationID string) {
	email, name, token := user.Email, user.FirstName, user.InvitationToken

	s.sendEmail(ctx, "welcome", func(ctx context.Context) error {
		return s.mail.SendWelcomeEmail(ctx, email, name, token, organizationToken, organizationID)
	})
}
