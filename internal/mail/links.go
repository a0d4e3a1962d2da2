// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"net/url"
	"strings"
)

// Links builds the public URLs embedded in emails and API responses
type Links struct {
	host    string
	subPath string
}

func (l *Links) base() string {
	return strings.TrimSuffix(l.host, "/") + l.subPath
}

// InviteURL points to the account setup page, optionally chained with a workspace invite
func (l *Links) InviteURL(invitationToken, organizationToken, organizationID string) string {
	u := l.base() + "invitations/" + invitationToken
	if organizationToken != "" {
		u += "/workspaces/" + organizationToken
		if organizationID != "" {
			u += "?oid=" + url.QueryEscape(organizationID)
		}
	}
	return u
}

// OrganizationInviteURL points to the workspace invite page, as a path when full is false
func (l *Links) OrganizationInviteURL(invitationToken, organizationID string, full bool) string {
	path := "organization-invitations/" + invitationToken
	if organizationID != "" {
		path += "?oid=" + url.QueryEscape(organizationID)
	}

	if !full {
		return "/" + path
	}
	return l.base() + path
}

func (l *Links) PasswordResetURL(token string) string {
	return l.base() + "reset-password/" + token
}

// SSOCallbackURL is the redirect URL registered with an organization identity provider
func (l *Links) SSOCallbackURL(configID string) string {
	return l.base() + "api/oauth/sign-in/" + url.PathEscape(configID)
}

func NewLinks(host, subPath string) *Links {
	l := new(Links)

	l.host = host
	l.subPath = "/" + strings.Trim(subPath, "/")
	if l.subPath != "/" {
		l.subPath += "/"
	}

	return l
}
