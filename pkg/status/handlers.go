// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/user-migrator/internal/logging"
	"github.com/canonical/user-migrator/internal/monitoring"
	"github.com/canonical/user-migrator/internal/tracing"
	"github.com/canonical/user-migrator/internal/version"
)

type Status struct {
	Status  string `json:"status"`
	RunID   string `json:"run_id"`
	Version string `json:"version"`
}

// API answers liveness probes while a long migration pass is running.
type API struct {
	runID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(
		Status{
			Status:  "ok",
			RunID:   a.runID,
			Version: version.Version,
		},
	); err != nil {
		a.logger.Errorf("failed to write status response: %v", err)
	}
}

func NewAPI(runID string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.runID = runID

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
