// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LogFormatter plugs the logger into chi's RequestLogger middleware,
// entries are written at debug level
type LogFormatter struct {
	Logger LoggerInterface
}

func (f *LogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	entry := new(LogEntry)

	entry.logger = f.Logger
	entry.method = r.Method
	entry.path = r.URL.Path
	entry.remote = r.RemoteAddr
	entry.requestID = middleware.GetReqID(r.Context())

	return entry
}

type LogEntry struct {
	logger LoggerInterface

	method    string
	path      string
	remote    string
	requestID string
}

func (e *LogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	e.logger.Debugf(
		"request_id=%s method=%s path=%s remote=%s status=%d bytes=%d elapsed=%s",
		e.requestID, e.method, e.path, e.remote, status, bytes, elapsed,
	)
}

func (e *LogEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error(fmt.Sprintf("panic serving %s %s: %v\n%s", e.method, e.path, v, stack))
}

func NewLogFormatter(logger LoggerInterface) *LogFormatter {
	f := new(LogFormatter)
	f.Logger = logger

	return f
}
