// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
)

var _ EmailServiceInterface = (*EmailService)(nil)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Disabled bool
}

type EmailService struct {
	config *Config
	links  *Links

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *EmailService) SendWelcomeEmail(ctx context.Context, to, name, invitationToken, organizationToken, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "mail.EmailService.SendWelcomeEmail")
	defer span.End()

	body, err := render(welcomeTemplate, templateData{
		Name:   name,
		Link:   s.links.InviteURL(invitationToken, organizationToken, organizationID),
		Action: "Set up your account",
	})
	if err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}

	return s.send(ctx, to, "Welcome", body)
}

func (s *EmailService) SendOrganizationUserWelcomeEmail(ctx context.Context, to, name, invitationToken, organizationName, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "mail.EmailService.SendOrganizationUserWelcomeEmail")
	defer span.End()

	body, err := render(welcomeTemplate, templateData{
		Name:             name,
		OrganizationName: organizationName,
		Link:             s.links.OrganizationInviteURL(invitationToken, organizationID, true),
		Action:           "Accept invite",
	})
	if err != nil {
		return fmt.Errorf("failed to render invite email: %w", err)
	}

	return s.send(ctx, to, fmt.Sprintf("Welcome to %s", organizationName), body)
}

func (s *EmailService) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	ctx, span := s.tracer.Start(ctx, "mail.EmailService.SendPasswordResetEmail")
	defer span.End()

	body, err := render(passwordResetTemplate, templateData{Link: s.links.PasswordResetURL(token)})
	if err != nil {
		return fmt.Errorf("failed to render password reset email: %w", err)
	}

	return s.send(ctx, to, "Password reset instructions", body)
}

func (s *EmailService) send(ctx context.Context, to, subject, body string) error {
	if s.config.Disabled {
		s.logger.Infof("smtp disabled, email to %s with subject %q not sent: %s", to, subject, body)
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.config.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	client, err := s.client()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		_ = s.monitor.SetDependencyAvailability(map[string]string{"component": "smtp"}, 0)
		return fmt.Errorf("failed to send email: %w", err)
	}

	_ = s.monitor.SetDependencyAvailability(map[string]string{"component": "smtp"}, 1)
	return nil
}

func (s *EmailService) client() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(s.config.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}

	if s.config.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.config.Username),
			gomail.WithPassword(s.config.Password),
		)
	}

	client, err := gomail.NewClient(s.config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return client, nil
}

func NewEmailService(config *Config, links *Links, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *EmailService {
	s := new(EmailService)

	s.config = config
	s.links = links

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
