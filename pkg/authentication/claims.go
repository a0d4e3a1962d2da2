// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of the auth cookie token, sub carries the user email
type SessionClaims struct {
	SessionID       string   `json:"sessionId"`
	Username        string   `json:"username"`
	OrganizationIDs []string `json:"organizationIds"`
	IsSSOLogin      bool     `json:"isSSOLogin"`
	IsPasswordLogin bool     `json:"isPasswordLogin"`

	jwt.RegisteredClaims
}

func (c *SessionClaims) HasOrganization(organizationID string) bool {
	return slices.Contains(c.OrganizationIDs, organizationID)
}

// IdentityClaims are the claims read from an SSO id token
type IdentityClaims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}
