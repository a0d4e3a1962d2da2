// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindNotAcceptable
)

// Error is a user facing failure of an auth flow
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return http.StatusText(e.StatusCode())
	}
	return e.Message
}

func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindNotAcceptable:
		return http.StatusNotAcceptable
	default:
		return http.StatusBadRequest
	}
}

func ErrBadRequest(message string) error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func ErrUnauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func ErrForbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func ErrNotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func ErrNotAcceptable(message string) error {
	return &Error{Kind: KindNotAcceptable, Message: message}
}

// IsKind reports whether err carries an auth error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

const (
	msgInvalidCredentials    = "Invalid credentials"
	msgRetryLimit            = "Maximum password retry limit reached, please reset your password using forgot password option"
	msgPasswordLoginDisabled = "Password login is disabled for the organization"
	msgNoWorkspaceAccess     = "User doesn't have access to this workspace"
	msgLoginToContinue       = "Please log in to continue"
	msgEmailExists           = "Email already exists"
	msgEmailExistsDot        = "Email already exists."
	msgOrganizationNotFound  = "Could not found organization details. Please verify the orgnization id"
	msgWorkspaceSignupOff    = "Workspace signup has been disabled. Please contact the workspace admin."
	msgDomainMismatch        = "You cannot sign up using the email address - Domain verification failed."
	msgAlreadyRegistered     = "The user is already registered. Please check your inbox for the activation link"
	msgFinishSetup           = "Please finish setting up your account before signing in to this workspace. Check your inbox for the activation link."
	msgAlreadyInWorkspace    = "User already extsts in the workspace."
	msgSignupDisabled        = "Signup has been disabled for this workspace. Please contact admin"
	msgIncorrectInvitedEmail = "The email address you entered does not match the email address on the invitation"
	msgEmailNotFound         = "Email address not found"
	msgInvalidResetURL       = "Invalid Reset Password URL. Please ensure you have the correct URL for resetting your password."
	msgInvalidToken          = "Invalid token"
	msgEnterPassword         = "Please enter password"
	msgInvalidInvitationLink = "Invalid invitation link"
	msgSetupBeforeAcceptance = "Please setup your account using account setup link shared via email before accepting the invite"
	msgSSONotMember          = "User does not exist in the workspace"
	msgSSODisabled           = "SSO login is disabled for the organization"
)
