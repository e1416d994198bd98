// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	levelInfo     = "INFO"
	levelWarn     = "WARN"
	appIdentifier = "linkforge"
)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnLoginSuccess(userID string) {
	s.emit(levelInfo, "authn_login_success:"+userID, "user logged in")
}

func (s *SecurityLogger) AuthnLoginFail(identifier string) {
	s.emit(levelWarn, "authn_login_fail:"+identifier, "login attempt failed")
}

func (s *SecurityLogger) AuthnTokenRefreshed(userID string) {
	s.emit(levelInfo, "authn_token_refreshed:"+userID, "access credential refreshed")
}

func (s *SecurityLogger) AuthnLogout(userID string) {
	s.emit(levelInfo, "authn_logout:"+userID, "user logged out")
}

func (s *SecurityLogger) SessionExpired(userID, reason string) {
	s.emit(levelWarn, "session_expired:"+userID, reason)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.emit(levelWarn, "authz_fail:"+userID+","+resource, "permission denied")
}

func (s *SecurityLogger) SystemStartup() {
	s.emit(levelInfo, "sys_startup", "session runtime started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.emit(levelInfo, "sys_shutdown", "session runtime stopped")
}

func (s *SecurityLogger) emit(level, event, description string) {
	fields := []zap.Field{
		zap.String("type", "security"),
		zap.String("appid", appIdentifier),
		zap.String("event", event),
		zap.String("level", level),
		zap.String("description", description),
	}

	if level == levelWarn {
		s.l.Warn(description, fields...)
		return
	}
	s.l.Info(description, fields...)
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
