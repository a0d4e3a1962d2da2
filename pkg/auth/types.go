// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RedirectTo string `json:"redirect_to"`
}

type SignupRequest struct {
	Name           string `json:"name" validate:"max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=5,max=100"`
	OrganizationID string `json:"organization_id"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ActivateAccountRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=5,max=100"`
	OrganizationToken string `json:"organization_token" validate:"required"`
}

type SetupAdminRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=5,max=100"`
	Workspace   string `json:"workspace" validate:"max=50"`
	CompanyName string `json:"company_name"`
	CompanySize string `json:"company_size"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
}

type SetupAccountRequest struct {
	Token             string `json:"token" validate:"required"`
	OrganizationToken string `json:"organization_token"`
	Password          string `json:"password" validate:"omitempty,min=5,max=100"`
	Source            string `json:"source"`
	CompanyName       string `json:"company_name"`
	CompanySize       string `json:"company_size"`
	Role              string `json:"role"`
	PhoneNumber       string `json:"phone_number"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=5,max=100"`
}

// LoginResult is returned by every flow issuing a session, Token goes into the auth cookie
type LoginResult struct {
	Token string `json:"-"`

	ID                              string `json:"id"`
	Email                           string `json:"email"`
	FirstName                       string `json:"first_name"`
	LastName                        string `json:"last_name"`
	CurrentOrganizationID           string `json:"current_organization_id,omitempty"`
	CurrentOrganizationSlug         string `json:"current_organization_slug,omitempty"`
	NoWorkspaceAttachedInTheSession bool   `json:"no_workspace_attached_in_the_session,omitempty"`
	OrganizationInviteURL           string `json:"organization_invite_url,omitempty"`
}

type SessionPayload struct {
	ID                              string `json:"id"`
	Email                           string `json:"email"`
	FirstName                       string `json:"first_name"`
	LastName                        string `json:"last_name"`
	NoWorkspaceAttachedInTheSession bool   `json:"no_workspace_attached_in_the_session"`
	CurrentOrganizationID           string `json:"current_organization_id,omitempty"`
	CurrentOrganizationSlug         string `json:"current_organization_slug,omitempty"`
}

type CurrentUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AuthorizeResult struct {
	CurrentOrganizationID   string      `json:"current_organization_id"`
	CurrentOrganizationSlug string      `json:"current_organization_slug"`
	Admin                   bool        `json:"admin"`
	GroupPermissions        []string    `json:"group_permissions"`
	CurrentUser             CurrentUser `json:"current_user"`
}

type OnboardingDetails struct {
	Password  bool  `json:"password"`
	Questions *bool `json:"questions,omitempty"`
}

// VerifyInviteResult either describes the invited account or redirects to the matching invite page
type VerifyInviteResult struct {
	RedirectURL       string             `json:"redirect_url,omitempty"`
	Email             string             `json:"email,omitempty"`
	Name              string             `json:"name,omitempty"`
	OnboardingDetails *OnboardingDetails `json:"onboarding_details,omitempty"`
}
