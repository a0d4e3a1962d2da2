// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/canonical/app-builder/internal/storage"
	"github.com/canonical/app-builder/internal/types"
)

// ForgotPassword stores a reset token on the account and emails the reset link
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "auth.Service.ForgotPassword")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email, "", "")
	if errors.Is(err, storage.ErrNotFound) {
		return ErrBadRequest(msgEmailNotFound)
	}
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := s.storage.UpdateUser(ctx, user.ID, &types.UserUpdate{ForgotPasswordToken: &token}); err != nil {
		return err
	}

	s.sendEmail(ctx, "password reset", func(ctx context.Context) error {
		return s.mail.SendPasswordResetEmail(ctx, user.Email, token)
	})

	return nil
}

// ResetPassword sets a new password from a reset token and unlocks the account
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	ctx, span := s.tracer.Start(ctx, "auth.Service.ResetPassword")
	defer span.End()

	user, err := s.storage.GetUserByForgotPasswordToken(ctx, token)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound(msgInvalidResetURL)
	}
	if err != nil {
		return err
	}

	digest, err := s.hashPassword(password)
	if err != nil {
		return err
	}

	noToken := ""
	retries := 0
	update := &types.UserUpdate{
		PasswordDigest:      &digest,
		ForgotPasswordToken: &noToken,
		PasswordRetryCount:  &retries,
	}

	if err := s.storage.UpdateUser(ctx, user.ID, update); err != nil {
		return err
	}

	s.logger.Security().AuthnPasswordChange(user.ID)

	return nil
}
