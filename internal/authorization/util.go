// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	// ADMIN_RELATION is the admin group of an organization
	ADMIN_RELATION = "admin"
	// MEMBER_RELATION is the all_users group every member of an organization belongs to
	MEMBER_RELATION = "all_users"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func OrganizationTuple(organizationId string) string {
	return "organization:" + organizationId
}
