// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/user-migrator/internal/logging"
	"github.com/canonical/user-migrator/internal/monitoring/prometheus"
	"github.com/canonical/user-migrator/internal/tracing"
	"github.com/canonical/user-migrator/pkg/status"
)

func newTestRouter(t *testing.T) (http.Handler, *prometheus.Monitor) {
	t.Helper()

	logger := logging.NewNoopLogger()
	monitor := prometheus.NewMonitor("user-migrator", logger)

	return NewRouter("run-1", monitor.Registry(), tracing.NewNoopTracer(), monitor, logger), monitor
}

func TestRouterStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	s := new(status.Status)
	if err := json.NewDecoder(res.Body).Decode(s); err != nil {
		t.Fatalf("unexpected error decoding response: %v", err)
	}
	if s.Status != "ok" || s.RunID != "run-1" {
		t.Fatalf("unexpected status %+v", s)
	}
}

func TestRouterMetrics(t *testing.T) {
	router, monitor := newTestRouter(t)

	if err := monitor.IncOutcomeMetric(map[string]string{"status": "roles_associated"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), `migrated_users_total{service="user-migrator",status="roles_associated"} 1`) {
		t.Fatalf("expected outcome counter in metrics output, got:\n%s", body)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestRouterRecordsResponseTime(t *testing.T) {
	router, _ := newTestRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/metrics", nil))

	expected := `call_duration_seconds_count{dependency="status-listener",operation="GET /api/v0/status",service="user-migrator"} 1`
	if !strings.Contains(w.Body.String(), expected) {
		t.Fatalf("expected %q in metrics output, got:\n%s", expected, w.Body.String())
	}
}
