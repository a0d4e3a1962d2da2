// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	appID = "app-builder"

	levelInfo     = "INFO"
	levelWarn     = "WARN"
	levelCritical = "CRITICAL"
)

// SecurityLogger writes events following the OWASP logging vocabulary
// (https://cheatsheetseries.owasp.org/cheatsheets/Logging_Vocabulary_Cheat_Sheet.html)
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) log(event, level, description string, fields ...zap.Field) {
	fields = append(
		fields,
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", event),
		zap.String("level", level),
	)

	s.l.Info(description, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.log("sys_startup", levelWarn, "application started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.log("sys_shutdown", levelWarn, "application shut down")
}

func (s *SecurityLogger) AuthnLoginSuccess(user string) {
	s.log("authn_login_success:"+user, levelInfo, "user login succeeded", zap.String("user", user))
}

func (s *SecurityLogger) AuthnLoginFail(user string) {
	s.log("authn_login_fail:"+user, levelWarn, "user login failed", zap.String("user", user))
}

func (s *SecurityLogger) AuthnLoginLock(user string) {
	s.log("authn_login_lock:"+user+",maxretries", levelWarn, "user account locked after too many failed attempts", zap.String("user", user))
}

func (s *SecurityLogger) AuthnPasswordChange(user string) {
	s.log("authn_password_change:"+user, levelInfo, "user password changed", zap.String("user", user))
}

func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.log("authz_fail:"+user+","+resource, levelCritical, "user attempted to access a resource without entitlement", zap.String("user", user), zap.String("resource", resource))
}

func (s *SecurityLogger) UserCreated(user string) {
	s.log("user_created:"+user, levelWarn, "user created", zap.String("user", user))
}
