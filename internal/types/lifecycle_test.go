// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "testing"

func TestStatusAndSource(t *testing.T) {
	tests := []struct {
		name           string
		event          LifecycleEvent
		source         Source
		expectedStatus UserStatus
		expectedSource Source
	}{
		{name: "instance signup", event: EventUserSignUp, expectedStatus: UserStatusInvited, expectedSource: SourceSignup},
		{name: "workspace signup", event: EventUserSignupActivate, expectedStatus: UserStatusActive, expectedSource: SourceWorkspaceSignup},
		{name: "admin setup", event: EventUserAdminSetup, expectedStatus: UserStatusActive, expectedSource: SourceSignup},
		{name: "redeem keeps source", event: EventUserRedeem, source: SourceInvite, expectedStatus: UserStatusActive, expectedSource: SourceInvite},
		{name: "verify keeps source", event: EventUserVerify, source: SourceGoogle, expectedStatus: UserStatusVerified, expectedSource: SourceGoogle},
		{name: "sso activate", event: EventUserSSOActivate, source: SourceGit, expectedStatus: UserStatusActive, expectedSource: SourceGit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, source := StatusAndSource(tt.event, tt.source)

			if status != tt.expectedStatus {
				t.Errorf("expected status %s, got %s", tt.expectedStatus, status)
			}
			if source != tt.expectedSource {
				t.Errorf("expected source %s, got %s", tt.expectedSource, source)
			}
		})
	}
}

func TestUserMemberships(t *testing.T) {
	u := &User{
		OrganizationUsers: []*OrganizationUser{
			{OrganizationID: "org-1", Status: WorkspaceUserActive},
			{OrganizationID: "org-2", Status: WorkspaceUserInvited},
		},
	}

	if len(u.ActiveMemberships()) != 1 {
		t.Fatalf("expected one active membership, got %d", len(u.ActiveMemberships()))
	}

	if u.Membership("org-2", WorkspaceUserInvited) == nil {
		t.Fatal("expected invited membership for org-2")
	}

	if u.Membership("org-2", WorkspaceUserActive) != nil {
		t.Fatal("expected no active membership for org-2")
	}

	if !u.HasMembershipWithStatus(WorkspaceUserInvited) {
		t.Fatal("expected an invited membership")
	}
}

func TestOrganizationFormLogin(t *testing.T) {
	var missing *Organization
	if missing.FormLoginEnabled() {
		t.Fatal("nil organization must not allow form login")
	}

	org := &Organization{SSOConfigs: []*SSOConfig{{SSO: SSOForm, Enabled: true}}}
	if !org.FormLoginEnabled() {
		t.Fatal("expected form login enabled")
	}

	org.SSOConfigs[0].Enabled = false
	if org.FormLoginEnabled() {
		t.Fatal("expected form login disabled")
	}
}

func TestPasswordMandatory(t *testing.T) {
	if !PasswordMandatory(SourceSignup) {
		t.Error("signup users need a password")
	}
	if PasswordMandatory(SourceGoogle) {
		t.Error("google users do not need a password")
	}
}
