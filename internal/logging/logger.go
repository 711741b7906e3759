// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() *SecurityLogger {
	return l.security
}

func NewLogger(level string) *Logger {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.SetLevel(zapcore.ErrorLevel)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      &SecurityLogger{l: logger.Named("security")},
	}
}

// SecurityLogger emits audit events that operators alert on, separate from
// application diagnostics.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) AccessDenied(identityID, resource string) {
	s.l.Warn(
		"access denied",
		zap.String("event", "authz.denied"),
		zap.String("identity_id", identityID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) InvariantViolation(resource, detail string) {
	s.l.Error(
		"invariant violation",
		zap.String("event", "integrity.violation"),
		zap.String("resource", resource),
		zap.String("detail", detail),
	)
}
