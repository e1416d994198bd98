// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a JSON logger writing to stderr at the given level.
// It panics when the level cannot be parsed.
func NewLogger(l string) *Logger {
	level, err := zapcore.ParseLevel(strings.ToLower(l))
	if err != nil {
		panic(err)
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(level)
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// stdout is reserved for command output
	c.OutputPaths = []string{"stderr"}

	if level == zapcore.DebugLevel {
		c.Development = true
		c.Sampling = nil
	}

	lg := zap.Must(c.Build())

	return &Logger{
		SugaredLogger: lg.Sugar(),
		security:      NewSecurityLogger(lg.Named("security")),
	}
}
