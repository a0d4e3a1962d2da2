// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

type LifecycleEvent string

const (
	EventUserSignUp         LifecycleEvent = "USER_SIGN_UP"
	EventUserSignupActivate LifecycleEvent = "USER_SIGNUP_ACTIVATE"
	EventUserAdminSetup     LifecycleEvent = "USER_ADMIN_SETUP"
	EventUserRedeem         LifecycleEvent = "USER_REDEEM"
	EventUserVerify         LifecycleEvent = "USER_VERIFY"
	EventUserSSOActivate    LifecycleEvent = "USER_SSO_ACTIVATE"
	EventUserInvite         LifecycleEvent = "USER_INVITE"
)

// StatusAndSource returns the status and source a user moves to on a lifecycle event.
// Events that keep the current source use the one passed by the caller.
func StatusAndSource(event LifecycleEvent, source Source) (UserStatus, Source) {
	switch event {
	case EventUserSignUp:
		return UserStatusInvited, SourceSignup
	case EventUserSignupActivate:
		return UserStatusActive, SourceWorkspaceSignup
	case EventUserAdminSetup:
		return UserStatusActive, SourceSignup
	case EventUserInvite:
		return UserStatusInvited, SourceInvite
	case EventUserVerify:
		return UserStatusVerified, source
	case EventUserRedeem, EventUserSSOActivate:
		return UserStatusActive, source
	}

	return UserStatusInvited, source
}

// ApplyLifecycle fills status and source on the update for the given event
func (u *UserUpdate) ApplyLifecycle(event LifecycleEvent, source Source) *UserUpdate {
	status, src := StatusAndSource(event, source)
	u.Status = &status
	if src != "" {
		u.Source = &src
	}
	return u
}

// UserErrorMessage returns the user facing message for an account that cannot sign in
func UserErrorMessage(status UserStatus) string {
	switch status {
	case UserStatusArchived:
		return "User has been archived, please contact the administrator"
	case UserStatusInvited, UserStatusVerified:
		return "User has not been activated yet, please check your inbox for the activation link"
	}
	return "Invalid credentials"
}

// PasswordMandatory reports if users coming from the given source must set a password
func PasswordMandatory(source Source) bool {
	return source != SourceGoogle && source != SourceGit && source != SourceSSO
}
