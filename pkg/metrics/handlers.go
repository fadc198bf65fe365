// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/canonical/user-migrator/internal/logging"
)

type API struct {
	handler http.Handler

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/metrics", a.prometheusHTTP)
}

func (a *API) prometheusHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// NewAPI serves the collectors of gatherer, the run keeps its metrics in a
// dedicated registry instead of the global one
func NewAPI(gatherer prometheus.Gatherer, logger logging.LoggerInterface) *API {
	a := new(API)

	a.handler = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	a.logger = logger

	return a
}
