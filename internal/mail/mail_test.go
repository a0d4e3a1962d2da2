// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
)

func TestLinks(t *testing.T) {
	tests := []struct {
		name     string
		links    *Links
		build    func(*Links) string
		expected string
	}{
		{
			name:     "account invite",
			links:    NewLinks("http://localhost:8082", ""),
			build:    func(l *Links) string { return l.InviteURL("abc", "", "") },
			expected: "http://localhost:8082/invitations/abc",
		},
		{
			name:     "account and workspace invite",
			links:    NewLinks("http://localhost:8082/", "builder"),
			build:    func(l *Links) string { return l.InviteURL("abc", "def", "org-1") },
			expected: "http://localhost:8082/builder/invitations/abc/workspaces/def?oid=org-1",
		},
		{
			name:     "relative organization invite",
			links:    NewLinks("http://localhost:8082", ""),
			build:    func(l *Links) string { return l.OrganizationInviteURL("def", "org-1", false) },
			expected: "/organization-invitations/def?oid=org-1",
		},
		{
			name:     "full organization invite",
			links:    NewLinks("https://example.com", "/sub/"),
			build:    func(l *Links) string { return l.OrganizationInviteURL("def", "org-1", true) },
			expected: "https://example.com/sub/organization-invitations/def?oid=org-1",
		},
		{
			name:     "password reset",
			links:    NewLinks("https://example.com", ""),
			build:    func(l *Links) string { return l.PasswordResetURL("tok") },
			expected: "https://example.com/reset-password/tok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build(tt.links); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestRenderWelcome(t *testing.T) {
	body, err := render(welcomeTemplate, templateData{Name: "Ada", OrganizationName: "Acme", Link: "http://x/y", Action: "Accept invite"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, expected := range []string{"Hi Ada", "workspace Acme", `href="http://x/y"`, "Accept invite"} {
		if !strings.Contains(body, expected) {
			t.Errorf("expected %q in body %s", expected, body)
		}
	}
}

func TestDisabledServiceDoesNotDial(t *testing.T) {
	logger := logging.NewNoopLogger()
	s := NewEmailService(
		&Config{Disabled: true, From: "hello@example.com"},
		NewLinks("http://localhost:8082", ""),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logger,
	)

	if err := s.SendPasswordResetEmail(context.Background(), "ada@example.com", "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SendWelcomeEmail(context.Background(), "ada@example.com", "Ada", "abc", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
