// Copyright 2025 Canonical Ltd.
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

func parseLevel(l string) zapcore.Level {
	switch strings.ToLower(l) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.ErrorLevel
	}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.MessageKey = "message"
	cfg.LevelKey = "severity"
	cfg.TimeKey = "@timestamp"
	cfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}

// NewLogger creates a new default logger writing JSON to stdout
// it will need to be closed with
// ```
// defer logger.Sync()
// ```
// to make sure all has been piped out before terminating
func NewLogger(l string) *Logger {
	return NewLoggerWithEncoding(l, "json")
}

// NewLoggerWithEncoding is NewLogger with a choice between the "json" and
// "console" encoders.
func NewLoggerWithEncoding(l, encoding string) *Logger {
	if encoding != "console" {
		encoding = "json"
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(l)),
		Encoding:         encoding,
		EncoderConfig:    encoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	z := zap.Must(cfg.Build())

	logger := new(Logger)
	logger.SugaredLogger = z.Sugar()
	logger.security = NewSecurityLogger(z.Named("security"))

	logger.Debugf("Logging level set to %s", cfg.Level.String())

	return logger
}

// NewNoopLogger returns a logger that discards everything.
func NewNoopLogger() *Logger {
	z := zap.NewNop()

	logger := new(Logger)
	logger.SugaredLogger = z.Sugar()
	logger.security = NewSecurityLogger(z)

	return logger
}

// NewLoggerFromCore wraps an existing zap core, mostly useful to observe
// logs in tests.
func NewLoggerFromCore(core zapcore.Core) *Logger {
	z := zap.New(core)

	logger := new(Logger)
	logger.SugaredLogger = z.Sugar()
	logger.security = NewSecurityLogger(z.Named("security"))

	return logger
}
