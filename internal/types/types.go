// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type UserStatus string

const (
	UserStatusInvited  UserStatus = "invited"
	UserStatusVerified UserStatus = "verified"
	UserStatusActive   UserStatus = "active"
	UserStatusArchived UserStatus = "archived"
)

type WorkspaceUserStatus string

const (
	WorkspaceUserInvited  WorkspaceUserStatus = "invited"
	WorkspaceUserActive   WorkspaceUserStatus = "active"
	WorkspaceUserArchived WorkspaceUserStatus = "archived"
)

type Source string

const (
	SourceSignup          Source = "signup"
	SourceInvite          Source = "invite"
	SourceGoogle          Source = "google"
	SourceGit             Source = "git"
	SourceSSO             Source = "sso"
	SourceWorkspaceSignup Source = "workspace_signup"
)

const (
	SSOForm   = "form"
	SSOGoogle = "google"
	SSOGit    = "git"
	SSOOpenID = "openid"
)

type User struct {
	ID                    string     `db:"id"`
	Email                 string     `db:"email"`
	FirstName             string     `db:"first_name"`
	LastName              string     `db:"last_name"`
	PasswordDigest        string     `db:"password_digest"`
	Status                UserStatus `db:"status"`
	Source                Source     `db:"source"`
	InvitationToken       string     `db:"invitation_token"`
	ForgotPasswordToken   string     `db:"forgot_password_token"`
	PasswordRetryCount    int        `db:"password_retry_count"`
	DefaultOrganizationID string     `db:"default_organization_id"`
	CompanyName           string     `db:"company_name"`
	CompanySize           string     `db:"company_size"`
	Role                  string     `db:"role"`
	PhoneNumber           string     `db:"phone_number"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`

	OrganizationUsers []*OrganizationUser
}

// ActiveMemberships returns the memberships in the active state
func (u *User) ActiveMemberships() []*OrganizationUser {
	var ret []*OrganizationUser
	for _, ou := range u.OrganizationUsers {
		if ou.Status == WorkspaceUserActive {
			ret = append(ret, ou)
		}
	}
	return ret
}

// Membership returns the membership row for the given organization and status, nil if missing.
// An empty status matches any.
func (u *User) Membership(organizationID string, status WorkspaceUserStatus) *OrganizationUser {
	for _, ou := range u.OrganizationUsers {
		if ou.OrganizationID == organizationID && (status == "" || ou.Status == status) {
			return ou
		}
	}
	return nil
}

// HasMembershipWithStatus reports if any membership is in the given status
func (u *User) HasMembershipWithStatus(status WorkspaceUserStatus) bool {
	for _, ou := range u.OrganizationUsers {
		if ou.Status == status {
			return true
		}
	}
	return false
}

// FullName joins first and last name skipping empty parts
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserUpdate describes a partial update, nil fields are left untouched.
// Pointers to empty strings on nullable columns reset them to NULL.
type UserUpdate struct {
	FirstName             *string
	LastName              *string
	PasswordDigest        *string
	Status                *UserStatus
	Source                *Source
	InvitationToken       *string
	ForgotPasswordToken   *string
	PasswordRetryCount    *int
	DefaultOrganizationID *string
	CompanyName           *string
	CompanySize           *string
	Role                  *string
	PhoneNumber           *string
}

type Organization struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Slug         string    `db:"slug"`
	EnableSignUp bool      `db:"enable_sign_up"`
	Domain       string    `db:"domain"`
	InheritSSO   bool      `db:"inherit_sso"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`

	SSOConfigs []*SSOConfig
}

// SSOConfig returns the configuration for the given sso type, nil if missing
func (o *Organization) SSOConfig(sso string) *SSOConfig {
	if o == nil {
		return nil
	}

	for _, c := range o.SSOConfigs {
		if c.SSO == sso {
			return c
		}
	}
	return nil
}

// FormLoginEnabled reports if password login is allowed for the organization
func (o *Organization) FormLoginEnabled() bool {
	c := o.SSOConfig(SSOForm)
	return c != nil && c.Enabled
}

type SSOConfig struct {
	ID             string            `db:"id"`
	OrganizationID string            `db:"organization_id"`
	SSO            string            `db:"sso"`
	Enabled        bool              `db:"enabled"`
	Configs        map[string]string `db:"configs"`
}

// membership roles, admins also belong to the all_users group
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type OrganizationUser struct {
	ID              string              `db:"id"`
	OrganizationID  string              `db:"organization_id"`
	UserID          string              `db:"user_id"`
	Status          WorkspaceUserStatus `db:"status"`
	Source          Source              `db:"source"`
	InvitationToken string              `db:"invitation_token"`
	Role            string              `db:"role"`
	CreatedAt       time.Time           `db:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at"`

	// populated by lookups joining the users table
	User *User
}

type UserSession struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	Device       string    `db:"device"`
	CreatedAt    time.Time `db:"created_at"`
	Expiry       time.Time `db:"expiry"`
	LastLoggedIn time.Time `db:"last_logged_in"`
}

type WidgetLayout struct {
	OrganizationID string `db:"organization_id"`
	AppVersionID   string `db:"app_version_id"`
	WidgetID       string `db:"widget_id"`
	ComponentType  string `db:"component_type"`
	Breakpoint     string `db:"breakpoint"`
	Left           int    `db:"left_pos"`
	Top            int    `db:"top_pos"`
	Width          int    `db:"width"`
	Height         int    `db:"height"`
	ParentID       string `db:"parent_id"`
}
