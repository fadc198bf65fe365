// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"
	"strings"
)

// LeveledLogger adapts LoggerInterface to the key/value style used by
// github.com/hashicorp/go-retryablehttp.
type LeveledLogger struct {
	logger LoggerInterface
}

func (l *LeveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorf("%s%s", msg, formatKeysAndValues(keysAndValues))
}

func (l *LeveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugf("%s%s", msg, formatKeysAndValues(keysAndValues))
}

func (l *LeveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugf("%s%s", msg, formatKeysAndValues(keysAndValues))
}

func (l *LeveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnf("%s%s", msg, formatKeysAndValues(keysAndValues))
}

func formatKeysAndValues(kv []interface{}) string {
	if len(kv) == 0 {
		return ""
	}

	b := new(strings.Builder)
	for i := 0; i < len(kv); i += 2 {
		if i+1 < len(kv) {
			fmt.Fprintf(b, " %v=%v", kv[i], kv[i+1])
		} else {
			fmt.Fprintf(b, " %v", kv[i])
		}
	}
	return b.String()
}

func NewLeveledLogger(logger LoggerInterface) *LeveledLogger {
	l := new(LeveledLogger)
	l.logger = logger

	return l
}
