// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type EmailServiceInterface interface {
	SendWelcomeEmail(ctx context.Context, to, name, invitationToken, organizationToken, organizationID string) error
	SendOrganizationUserWelcomeEmail(ctx context.Context, to, name, invitationToken, organizationName, organizationID string) error
	SendPasswordResetEmail(ctx context.Context, to, token string) error
}
