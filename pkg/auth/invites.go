// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/canonical/app-builder/internal/storage"
	"github.com/canonical/app-builder/internal/types"
	"github.com/canonical/app-builder/pkg/authentication"
)

// ResendInvite resends the account activation email of a user that never activated
func (s *Service) ResendInvite(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "auth.Service.ResendInvite")
	defer span.End()

	if email == "" {
		return ErrBadRequest("")
	}

	existing, err := s.storage.GetUserByEmail(ctx, email, "", "")
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if existing.HasMembershipWithStatus(types.WorkspaceUserActive) {
		return ErrNotAcceptable(msgEmailExists)
	}

	if existing.InvitationToken != "" {
		s.sendWelcome(ctx, existing, "", "")
	}

	return nil
}

// ActivateAccountWithToken activates an invited account from the workspace
// invite page, the user still has to accept the workspace invite afterwards.
func (s *Service) ActivateAccountWithToken(ctx context.Context, req *ActivateAccountRequest) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.ActivateAccountWithToken")
	defer span.End()

	signupUser, err := s.storage.GetUserByEmail(ctx, req.Email, "", "")
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	invited, err := s.storage.GetOrganizationUserByToken(ctx, req.OrganizationToken)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if s.config.DisableSignups {
		return nil, ErrNotAcceptable(msgSignupDisabled)
	}

	if signupUser == nil || invited == nil || invited.User == nil || invited.User.Email != signupUser.Email {
		return nil, ErrNotAcceptable(msgIncorrectInvitedEmail)
	}

	if signupUser.HasMembershipWithStatus(types.WorkspaceUserActive) {
		return nil, ErrNotAcceptable(msgEmailExists)
	}

	digest, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	noToken := ""
	update := (&types.UserUpdate{PasswordDigest: &digest, InvitationToken: &noToken}).
		ApplyLifecycle(types.EventUserRedeem, types.SourceInvite)

	var defaultOrganization *types.Organization

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if dm := signupUser.Membership(signupUser.DefaultOrganizationID, ""); dm != nil {
			if err := s.storage.ActivateOrganizationUser(ctx, dm.ID); err != nil {
				return err
			}

			o, err := s.storage.GetOrganization(ctx, dm.OrganizationID)
			if err != nil {
				return err
			}
			defaultOrganization = o
		}

		return s.storage.UpdateUser(ctx, signupUser.ID, update)
	})

	if err != nil {
		return nil, err
	}

	return s.processOrganizationSignup(ctx, signupUser, req.OrganizationToken, invited.OrganizationID, defaultOrganization)
}

// SetupAdmin creates the first administrator of the instance with its workspace
func (s *Service) SetupAdmin(ctx context.Context, req *SetupAdminRequest) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.SetupAdmin")
	defer span.End()

	active, err := s.storage.CountActiveUsers(ctx)
	if err != nil {
		return nil, err
	}

	if active > 0 {
		return nil, ErrForbidden("")
	}

	digest, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	first, last := splitName(req.Name)
	name := req.Workspace
	if name == "" {
		name = defaultWorkspaceName
	}

	var (
		user         *types.User
		organization *types.Organization
	)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		organization, err = s.storage.CreateOrganization(ctx, &types.Organization{Name: name, Slug: defaultWorkspaceSlug})
		if err != nil {
			return err
		}

		status, source := types.StatusAndSource(types.EventUserAdminSetup, "")
		user, err = s.storage.CreateUser(ctx, &types.User{
			Email:                 req.Email,
			FirstName:             first,
			LastName:              last,
			PasswordDigest:        digest,
			Status:                status,
			Source:                source,
			DefaultOrganizationID: organization.ID,
			CompanyName:           req.CompanyName,
			CompanySize:           req.CompanySize,
			Role:                  req.Role,
			PhoneNumber:           req.PhoneNumber,
		})
		if err != nil {
			return err
		}

		_, err = s.addMember(ctx, user.ID, organization.ID, true, false, types.SourceSignup)
		return err
	})

	if err != nil {
		return nil, err
	}

	s.logger.Security().UserCreated(user.ID)

	return s.GenerateLoginResultPayload(ctx, user, organization, false, true, nil)
}

// SetupAccountFromInvitationToken finishes the account setup from the emailed
// activation link, optionally joining the workspace the user was invited to.
func (s *Service) SetupAccountFromInvitationToken(ctx context.Context, req *SetupAccountRequest) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.SetupAccountFromInvitationToken")
	defer span.End()

	if req.Token == "" {
		return nil, ErrBadRequest(msgInvalidToken)
	}

	var (
		user         *types.User
		organization *types.Organization
		invited      *types.OrganizationUser
		isSSOVerify  bool
	)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		user, err = s.storage.GetUserByInvitationToken(ctx, req.Token)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrBadRequest(msgInvalidInvitationLink)
		}
		if err != nil {
			return err
		}

		if req.OrganizationToken != "" {
			invited, err = s.storage.GetOrganizationUserByToken(ctx, req.OrganizationToken)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return err
			}
		}

		password := req.Password
		if password == "" && req.Source == ssoSource {
			// sso accounts never log in with it
			password = uuid.NewString()
		}

		mandatory := types.PasswordMandatory(user.Source)
		if mandatory && password == "" {
			return ErrBadRequest(msgEnterPassword)
		}

		defaultMembership := user.Membership(user.DefaultOrganizationID, "")
		if defaultMembership == nil {
			return ErrBadRequest(msgInvalidInvitationLink)
		}

		isSSOVerify = req.Source == ssoSource && (user.Source == types.SourceGoogle || user.Source == types.SourceGit)

		event, source := types.EventUserRedeem, types.SourceSignup
		if isSSOVerify {
			event = types.EventUserSSOActivate
		}
		if invited != nil {
			source = types.SourceInvite
		}

		noToken := ""
		update := &types.UserUpdate{
			CompanyName:     &req.CompanyName,
			CompanySize:     &req.CompanySize,
			PhoneNumber:     &req.PhoneNumber,
			InvitationToken: &noToken,
		}
		if req.Role != "" {
			update.Role = &req.Role
		}
		if mandatory {
			digest, err := s.hashPassword(password)
			if err != nil {
				return err
			}
			update.PasswordDigest = &digest
		}
		update.ApplyLifecycle(event, source)

		if err := s.storage.UpdateUser(ctx, user.ID, update); err != nil {
			return err
		}

		if err := s.storage.ActivateOrganizationUser(ctx, defaultMembership.ID); err != nil {
			return err
		}

		organizationID := user.DefaultOrganizationID
		if invited != nil {
			if err := s.storage.ActivateOrganizationUser(ctx, invited.ID); err != nil {
				return err
			}

			update := &types.UserUpdate{DefaultOrganizationID: &invited.OrganizationID}
			if err := s.storage.UpdateUser(ctx, invited.UserID, update); err != nil {
				return err
			}
			organizationID = invited.OrganizationID
		}

		organization, err = s.storage.GetOrganization(ctx, organizationID)
		return err
	})

	if err != nil {
		return nil, err
	}

	return s.GenerateLoginResultPayload(ctx, user, organization, invited == nil && isSSOVerify, !isSSOVerify, nil)
}

// AcceptOrganizationInvite joins the workspace of the invitation token
func (s *Service) AcceptOrganizationInvite(ctx context.Context, session *authentication.SessionUser, token string) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.AcceptOrganizationInvite")
	defer span.End()

	invited, err := s.storage.GetOrganizationUserByToken(ctx, token)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrBadRequest(msgInvalidInvitationLink)
	}
	if err != nil {
		return nil, err
	}

	user := invited.User
	if user == nil {
		return nil, ErrBadRequest(msgInvalidInvitationLink)
	}

	if user.InvitationToken != "" {
		// the account itself was never activated
		s.sendEmail(ctx, "welcome", func(ctx context.Context) error {
			return s.mail.SendWelcomeEmail(ctx, user.Email, user.FullName(), user.InvitationToken, invited.InvitationToken, invited.OrganizationID)
		})

		return nil, ErrUnauthorized(msgSetupBeforeAcceptance)
	}

	var organization *types.Organization

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		update := &types.UserUpdate{DefaultOrganizationID: &invited.OrganizationID}
		if err := s.storage.UpdateUser(ctx, user.ID, update); err != nil {
			return err
		}

		o, err := s.storage.GetOrganization(ctx, invited.OrganizationID)
		if err != nil {
			return err
		}
		organization = o

		return s.storage.ActivateOrganizationUser(ctx, invited.ID)
	})

	if err != nil {
		return nil, err
	}

	return s.GenerateLoginResultPayload(ctx, user, organization, false, false, session)
}

// VerifyInviteToken checks an account activation link and moves the account to verified
func (s *Service) VerifyInviteToken(ctx context.Context, token, organizationToken string) (*VerifyInviteResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.VerifyInviteToken")
	defer span.End()

	user, err := s.storage.GetUserByInvitationToken(ctx, token)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	var invited *types.OrganizationUser
	if organizationToken != "" {
		invited, err = s.storage.GetOrganizationUserByToken(ctx, organizationToken)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		switch {
		case user == nil && invited != nil:
			return &VerifyInviteResult{RedirectURL: s.links.OrganizationInviteURL(organizationToken, invited.OrganizationID, true)}, nil
		case user != nil && invited == nil:
			return &VerifyInviteResult{RedirectURL: s.links.InviteURL(token, "", "")}, nil
		}
	}

	if user == nil {
		return nil, ErrBadRequest(msgInvalidToken)
	}

	if user.Status == types.UserStatusArchived {
		return nil, ErrBadRequest(types.UserErrorMessage(user.Status))
	}

	update := new(types.UserUpdate).ApplyLifecycle(types.EventUserVerify, user.Source)
	if err := s.storage.UpdateUser(ctx, user.ID, update); err != nil {
		return nil, err
	}

	questions := s.config.OnboardingQuestionsForAll && invited == nil
	if !questions {
		active, err := s.storage.CountActiveUsers(ctx)
		if err != nil {
			return nil, err
		}
		questions = active == 0
	}

	return &VerifyInviteResult{
		Email: user.Email,
		Name:  fullName(user.FirstName, user.LastName),
		OnboardingDetails: &OnboardingDetails{
			Password:  types.PasswordMandatory(user.Source),
			Questions: &questions,
		},
	}, nil
}

// VerifyOrganizationToken checks a workspace invite link of an active account
func (s *Service) VerifyOrganizationToken(ctx context.Context, token string) (*VerifyInviteResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.VerifyOrganizationToken")
	defer span.End()

	invited, err := s.storage.GetOrganizationUserByToken(ctx, token)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if invited == nil || invited.User == nil {
		return nil, ErrBadRequest(msgInvalidToken)
	}

	user := invited.User
	if user.Status != types.UserStatusActive {
		return nil, ErrBadRequest(types.UserErrorMessage(user.Status))
	}

	return &VerifyInviteResult{
		Email:             user.Email,
		Name:              fullName(user.FirstName, user.LastName),
		OnboardingDetails: &OnboardingDetails{Password: false},
	}, nil
}
