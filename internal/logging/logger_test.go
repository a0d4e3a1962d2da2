// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerIsAvailable(t *testing.T) {
	logger := NewNoopLogger()

	if logger.Security() == nil {
		t.Fatal("expected security logger")
	}

	logger.Security().AuthnLoginFail("user@example.com")
	logger.Security().AuthnLoginLock("user@example.com")
}
