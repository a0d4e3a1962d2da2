// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"testing"
	"time"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name, first, last string
	}{
		{"", "", ""},
		{"Jane", "Jane", ""},
		{"Jane Doe", "Jane", "Doe"},
		{"Jane van Doe", "Jane", "van Doe"},
	}

	for _, test := range tests {
		first, last := splitName(test.name)
		if first != test.first || last != test.last {
			t.Errorf("splitName(%q) = %q %q", test.name, first, last)
		}
	}
}

func TestValidDomain(t *testing.T) {
	tests := []struct {
		email      string
		restricted string
		expected   bool
	}{
		{"jane@example.com", "", true},
		{"jane@example.com", "example.com", true},
		{"jane@example.com", "other.org, example.com", true},
		{"jane@example.com", "other.org", false},
		{"", "", false},
		{"jane@", "example.com", false},
	}

	for _, test := range tests {
		if got := validDomain(test.email, test.restricted); got != test.expected {
			t.Errorf("validDomain(%q, %q) = %v", test.email, test.restricted, got)
		}
	}
}

func TestNextNameAndSlug(t *testing.T) {
	now := time.UnixMilli(1772366400000)

	tests := []struct {
		nonce, name, slug string
	}{
		{"", "My workspace 1772366400000", "my-workspace-1772366400000"},
		{"1A2b3c4d", "My workspace 1772366400000-1A2b3c4d", "my-workspace-1772366400000-1a2b3c4d"},
	}

	for _, test := range tests {
		name, slug := nextNameAndSlug("My workspace", now, test.nonce)
		if name != test.name || slug != test.slug {
			t.Errorf("nextNameAndSlug(%q) = %q %q", test.nonce, name, slug)
		}
	}
}

func TestService_PersonalWorkspacesInSameMillisecond(t *testing.T) {
	s := NewService(nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	s.now = func() time.Time { return time.UnixMilli(1772366400000) }

	first, firstSlug := nextNameAndSlug(defaultWorkspaceName, s.now(), s.nonce())
	second, secondSlug := nextNameAndSlug(defaultWorkspaceName, s.now(), s.nonce())

	if first == second || firstSlug == secondSlug {
		t.Errorf("expected distinct workspaces, got %q and %q", first, second)
	}
}
