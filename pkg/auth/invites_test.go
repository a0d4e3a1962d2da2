// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/app-builder/internal/storage"
	"github.com/canonical/app-builder/internal/types"
	"github.com/canonical/app-builder/pkg/authentication"
)

func TestService_ResendInvite(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		setupMocks func(*serviceMocks)
		expectErr  error
	}{
		{
			name:       "Empty email",
			setupMocks: func(*serviceMocks) {},
			expectErr:  ErrBadRequest(""),
		},
		{
			name:  "Unknown email is ignored",
			email: "nobody@example.com",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com", "", types.WorkspaceUserStatus("")).Return(nil, storage.ErrNotFound)
			},
		},
		{
			name:  "Active account",
			email: "jane@example.com",
			setupMocks: func(m *serviceMocks) {
				u := &types.User{ID: "user-1", OrganizationUsers: []*types.OrganizationUser{membership("org-1", types.WorkspaceUserActive)}}
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com", "", types.WorkspaceUserStatus("")).Return(u, nil)
			},
			expectErr: ErrNotAcceptable(msgEmailExists),
		},
		{
			name:  "Pending account gets the welcome email again",
			email: "jane@example.com",
			setupMocks: func(m *serviceMocks) {
				u := &types.User{ID: "user-1", Email: "jane@example.com", FirstName: "Jane", InvitationToken: "user-token"}
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com", "", types.WorkspaceUserStatus("")).Return(u, nil)
				m.mail.EXPECT().SendWelcomeEmail(gomock.Any(), "jane@example.com", "Jane", "user-token", "", "").Return(errors.New("smtp down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, nil)
			test.setupMocks(m)

			err := s.ResendInvite(context.Background(), test.email)

			if test.expectErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var expected *Error
			errors.As(test.expectErr, &expected)
			expectAuthError(t, err, expected.Kind, expected.Message)
		})
	}
}

func TestService_ActivateAccountWithToken(t *testing.T) {
	req := &ActivateAccountRequest{Email: "jane@example.com", Password: "secret", OrganizationToken: "token-org-2"}

	pending := func() *types.User {
		return &types.User{
			ID:                    "user-1",
			Email:                 "jane@example.com",
			InvitationToken:       "user-token",
			DefaultOrganizationID: "org-1",
			OrganizationUsers: []*types.OrganizationUser{
				membership("org-1", types.WorkspaceUserInvited),
				membership("org-2", types.WorkspaceUserInvited),
			},
		}
	}

	t.Run("Invitation issued to another email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl, nil)

		invited := membership("org-2", types.WorkspaceUserInvited)
		invited.User = &types.User{Email: "someone@example.com"}

		m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com", "", types.WorkspaceUserStatus("")).Return(pending(), nil)
		m.storage.EXPECT().GetOrganizationUserByToken(gomock.Any(), "token-org-2").Return(invited, nil)

		_, err := s.ActivateAccountWithToken(context.Background(), req)
		expectAuthError(t, err, KindNotAcceptable, msgIncorrectInvitedEmail)
	})

	t.Run("Activates the account and hands back the workspace invite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl, nil)

		user := pending()
		invited := membership("org-2", types.WorkspaceUserInvited)
		invited.User = user

		m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com", "", types.WorkspaceUserStatus("")).Return(user, nil)
		m.storage.EXPECT().GetOrganizationUserByToken(gomock.Any(), "token-org-2").Return(invited, nil)
		m.storage.EXPECT().ActivateOrganizationUser(gomock.Any(), "ou-org-1").Return(nil)
		m.storage.EXPECT().GetOrganization(gomock.Any(), "org-1").Return(formOrganization("org-1"), nil)
		m.storage.EXPECT().UpdateUser(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u *types.UserUpdate) error {
				if *u.InvitationToken != "" || *u.Status != types.UserStatusActive || *u.Source != types.SourceInvite {
					t.Errorf("expected active invited account")
				}
				return nil
			},
		)
		m.expectSession("user-1")

		result, err := s.ActivateAccountWithToken(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.CurrentOrganizationID != "org-1" {
			t.Errorf("expected default workspace, got %s", result.CurrentOrganizationID)
		}

		if result.OrganizationInviteURL != "/organization-invitations/token-org-2?oid=org-2" {
			t.Errorf("unexpected invite url %s", result.OrganizationInviteURL)
		}
	})
}

func TestService_SetupAccountFromInvitationToken(t *testing.T) {
	pending := func(source types.Source) *types.User {
		return &types.User{
			ID:                    "user-1",
			Email:                 "jane@example.com",
			Source:                source,
			InvitationToken:       "user-token",
			DefaultOrganizationID: "org-1",
			OrganizationUsers:     []*types.OrganizationUser{membership("org-1", types.WorkspaceUserInvited)},
		}
	}

	tests := []struct {
		name          string
		req           *SetupAccountRequest
		setupMocks    func(*testing.T, *serviceMocks)
		expectedError string
		expectedOrg   string
	}{
		{
			name:          "Missing token",
			req:           &SetupAccountRequest{},
			setupMocks:    func(*testing.T, *serviceMocks) {},
			expectedError: msgInvalidToken,
		},
		{
			name: "Unknown token",
			req:  &SetupAccountRequest{Token: "missing"},
			setupMocks: func(_ *testing.T, m *serviceMocks) {
				m.storage.EXPECT().GetUserByInvitationToken(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
			},
			expectedError: msgInvalidInvitationLink,
		},
		{
			name: "Password required for signup accounts",
			req:  &SetupAccountRequest{Token: "user-token"},
			setupMocks: func(_ *testing.T, m *serviceMocks) {
				m.storage.EXPECT().GetUserByInvitationToken(gomock.Any(), "user-token").Return(pending(types.SourceSignup), nil)
			},
			expectedError: msgEnterPassword,
		},
		{
			name: "Sets up the account in the default workspace",
			req:  &SetupAccountRequest{Token: "user-token", Password: "secret", CompanyName: "Acme"},
			setupMocks: func(t *testing.T, m *serviceMocks) {
				m.storage.EXPECT().GetUserByInvitationToken(gomock.Any(), "user-token").Return(pending(types.SourceSignup), nil)
				m.storage.EXPECT().UpdateUser(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, u *types.UserUpdate) error {
						if u.PasswordDigest == nil || *u.CompanyName != "Acme" || *u.Status != types.UserStatusActive {
							t.Errorf("unexpected account setup update")
						}
						return nil
					},
				)
				m.storage.EXPECT().ActivateOrganizationUser(gomock.Any(), "ou-org-1").Return(nil)
				m.storage.EXPECT().GetOrganization(gomock.Any(), "org-1").Return(formOrganization("org-1"), nil)
				m.expectSession("user-1")
			},
			expectedOrg: "org-1",
		},
		{
			name: "Sets up the account and joins the invited workspace",
			req:  &SetupAccountRequest{Token: "user-token", OrganizationToken: "token-org-2", Password: "secret"},
			setupMocks: func(t *testing.T, m *serviceMocks) {
				invited := membership("org-2", types.WorkspaceUserInvited)
				invited.UserID = "user-1"

				m.storage.EXPECT().GetUserByInvitationToken(gomock.Any(), "user-token").Return(pending(types.SourceInvite), nil)
				m.storage.EXPECT().GetOrganizationUserByToken(gomock.Any(), "token-org-2").Return(invited, nil)
				m.storage.EXPECT().UpdateUser(gomock.Any(), "user-1", gomock.Any()).Return(nil)
				m.storage.EXPECT().ActivateOrganizationUser(gomock.Any(), "ou-org-1").Return(nil)
				m.storage.EXPECT().ActivateOrganizationUser(gomock.Any(), "ou-org-2").Return(nil)
				m.storage.EXPECT().UpdateUser(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, u *types.UserUpdate) error {
						if u.DefaultOrganizationID == nil || *u.DefaultOrganizationID != "org-2" {
							t.Errorf("expected default workspace org-2")
						}
						return nil
					},
				)
				m.storage.EXPECT().GetOrganization(gomock.Any(), "org-2").Return(formOrganization("org-2"), nil)
				m.expectSession("user-1")
			},
			expectedOrg: "org-2",
		},
		{
			name: "SSO accounts skip the password",
			req:  &SetupAccountRequest{Token: "user-token", Source: "sso"},
			setupMocks: func(t *testing.T, m *serviceMocks) {
				m.storage.EXPECT().GetUserByInvitationToken(gomock.Any(), "user-token").Return(pending(types.SourceGoogle), nil)
				m.storage.EXPECT().UpdateUser(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, u *types.UserUpdate) error {
						if u.PasswordDigest != nil {
							t.Errorf("expected no password for google accounts")
						}
						return nil
					},
				)
				m.storage.EXPECT().ActivateOrganizationUser(gomock.Any(), "ou-org-1").Return(nil)
				m.storage.EXPECT().GetOrganization(gomock.Any(), "org-1").Return(formOrganization("org-1"), nil)
				m.storage.EXPECT().CreateSession(gomock.Any(), "user-1", testDevice, gomock.Any()).Return(&types.UserSession{ID: "session-1"}, nil)
				m.signer.EXPECT().Sign(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *authentication.SessionClaims) (string, error) {
						if !c.IsSSOLogin || c.IsPasswordLogin {
							t.Errorf("expected an sso session")
						}
						return "signed-token", nil
					},
				)
			},
			expectedOrg: "org-1",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, nil)
			test.setupMocks(t, m)

			result, err := s.SetupAccountFromInvitationToken(context.Background(), test.req)

			if test.expectedError != "" {
				expectAuthError(t, err, KindBadRequest, test.expectedError)
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.CurrentOrganizationID != test.expectedOrg {
				t.Errorf("expected %s, got %s", test.expectedOrg, result.CurrentOrganizationID)
			}
		})
	}
}

func TestService_AcceptOrganizationInvite(t *testing.T) {
	session := &authentication.SessionUser{
		User:            &types.User{ID: "user-1"},
		SessionID:       "session-1",
		OrganizationIDs: []string{"org-1"},
	}

	tests := []struct {
		name          string
		setupMocks    func(*serviceMocks)
		expectedKind  ErrorKind
		expectedError string
	}{
		{
			name: "Unknown token",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetOrganizationUserByToken(gomock.Any(), "token-org-2").Return(nil, storage.ErrNotFound)
			},
			expectedKind:  KindBadRequest,
			expectedError: msgInvalidInvitationLink,
		},
		{
			name: "Account not set up yet",
			setupMocks: func(m *serviceMocks) {
				invited := membership("org-2", types.WorkspaceUserInvited)
				invited.User = &types.User{ID: "user-1", Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", InvitationToken: "user-token"}

				m.storage.EXPECT().GetOrganizationUserByToken(gomock.Any(), "token-org-2").Return(invited, nil)
				m.mail.EXPECT().SendWelcomeEmail(gomock.Any(), "jane@example.com", "Jane Doe", "user-token", "token-org-2", "org-2").Return(nil)
			},
			expectedKind:  KindUnauthorized,
			expectedError: msgSetupBeforeAcceptance,
		},
		{
			name: "Joins the workspace within the current session",
			setupMocks: func(m *serviceMocks) {
				invited := membership("org-2", types.WorkspaceUserInvited)
				invited.User = &types.User{ID: "user-1", Email: "jane@example.com"}

				m.storage.EXPECT().GetOrganizationUserByToken(gomock.Any(), "token-org-2").Return(invited, nil)
				m.storage.EXPECT().UpdateUser(gomock.Any(), "user-1", gomock.Any()).Return(nil)
				m.storage.EXPECT().GetOrganization(gomock.Any(), "org-2").Return(formOrganization("org-2"), nil)
				m.storage.EXPECT().ActivateOrganizationUser(gomock.Any(), "ou-org-2").Return(nil)
				m.signer.EXPECT().Sign(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *authentication.SessionClaims) (string, error) {
						if c.SessionID != "session-1" || len(c.OrganizationIDs) != 2 {
							t.Errorf("expected org-2 added to session-1, got %s %v", c.SessionID, c.OrganizationIDs)
						}
						return "signed-token", nil
					},
				)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, nil)
			test.setupMocks(m)

			result, err := s.AcceptOrganizationInvite(context.Background(), session, "token-org-2")

			if test.expectedError != "" {
				expectAuthError(t, err, test.expectedKind, test.expectedError)
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.CurrentOrganizationID != "org-2" {
				t.Errorf("expected org-2, got %s", result.CurrentOrganizationID)
			}
		})
	}
}

func TestService_VerifyInviteToken(t *testing.T) {
	t.Run("Workspace invite of an activated account redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl, nil)

		m.storage.EXPECT().GetUserByInvitationToken(gomock.Any(), "stale").Return(nil, storage.ErrNotFound)
		m.storage.EXPECT().GetOrganizationUserByToken(gomock.Any(), "token-org-2").Return(membership("org-2", types.WorkspaceUserInvited), nil)

		result, err := s.VerifyInviteToken(context.Background(), "stale", "token-org-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.RedirectURL != testHost+"/organization-invitations/token-org-2?oid=org-2" {
			t.Errorf("unexpected redirect %s", result.RedirectURL)
		}
	})

	t.Run("Archived account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl, nil)

		m.storage.EXPECT().GetUserByInvitationToken(gomock.Any(), "user-token").Return(&types.User{ID: "user-1", Status: types.UserStatusArchived}, nil)

		_, err := s.VerifyInviteToken(context.Background(), "user-token", "")
		expectAuthError(t, err, KindBadRequest, types.UserErrorMessage(types.UserStatusArchived))
	})

	t.Run("First account of the instance gets the onboarding questions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl, nil)

		user := &types.User{ID: "user-1", Email: "jane@example.com", FirstName: "Jane", Status: types.UserStatusInvited, Source: types.SourceSignup}
		m.storage.EXPECT().GetUserByInvitationToken(gomock.Any(), "user-token").Return(user, nil)
		m.storage.EXPECT().UpdateUser(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u *types.UserUpdate) error {
				if *u.Status != types.UserStatusVerified {
					t.Errorf("expected verified account, got %s", *u.Status)
				}
				return nil
			},
		)
		m.storage.EXPECT().CountActiveUsers(gomock.Any()).Return(0, nil)

		result, err := s.VerifyInviteToken(context.Background(), "user-token", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Email != "jane@example.com" || !result.OnboardingDetails.Password || !*result.OnboardingDetails.Questions {
			t.Errorf("unexpected verification %+v", result)
		}
	})
}

func TestService_VerifyOrganizationToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, nil)

	invited := membership("org-2", types.WorkspaceUserInvited)
	invited.User = &types.User{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", Status: types.UserStatusActive}
	m.storage.EXPECT().GetOrganizationUserByToken(gomock.Any(), "token-org-2").Return(invited, nil)

	result, err := s.VerifyOrganizationToken(context.Background(), "token-org-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Name != "Jane Doe" || result.OnboardingDetails.Password {
		t.Errorf("unexpected verification %+v", result)
	}
}
