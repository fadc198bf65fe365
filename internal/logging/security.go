// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

const (
	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
	eventAdminAction    = "authz_admin"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger emits events in the OWASP logging vocabulary
// https://cheatsheetseries.owasp.org/cheatsheets/Logging_Vocabulary_Cheat_Sheet.html
type SecurityLogger struct {
	logger *zap.Logger
	app    string
}

func (s *SecurityLogger) SystemStartup() {
	s.logger.Warn(
		"system startup",
		zap.String("type", "security"),
		zap.String("event", fmt.Sprintf("%s:%s", eventSystemStartup, s.app)),
	)
}

func (s *SecurityLogger) SystemShutdown() {
	s.logger.Warn(
		"system shutdown",
		zap.String("type", "security"),
		zap.String("event", fmt.Sprintf("%s:%s", eventSystemShutdown, s.app)),
	)
}

func (s *SecurityLogger) AdminAction(actor, action, resource string) {
	s.logger.Info(
		fmt.Sprintf("%s performed %s on %s", actor, action, resource),
		zap.String("type", "security"),
		zap.String("event", fmt.Sprintf("%s:%s,%s", eventAdminAction, actor, action)),
		zap.String("resource", resource),
	)
}

func NewSecurityLogger(logger *zap.Logger) *SecurityLogger {
	s := new(SecurityLogger)

	s.logger = logger
	s.app = "user-migrator"

	if host, err := os.Hostname(); err == nil {
		s.logger = s.logger.With(zap.String("hostname", host))
	}

	return s
}
