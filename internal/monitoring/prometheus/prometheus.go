// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/canonical/user-migrator/internal/logging"
	"github.com/canonical/user-migrator/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	registry *prometheus.Registry

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	outcomes               *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

// Registry exposes the collectors registered by the monitor, it backs both
// the /metrics handler and the pushgateway
func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	h, err := m.responseTime.GetMetricWith(m.labels(tags, "dependency", "operation"))
	if err != nil {
		return err
	}

	h.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	g, err := m.dependencyAvailability.GetMetricWith(m.labels(tags, "component"))
	if err != nil {
		return err
	}

	g.Set(value)

	return nil
}

func (m *Monitor) IncOutcomeMetric(tags map[string]string) error {
	if m.outcomes == nil {
		return fmt.Errorf("metric not instantiated")
	}

	c, err := m.outcomes.GetMetricWith(m.labels(tags, "status"))
	if err != nil {
		return err
	}

	c.Inc()

	return nil
}

// Push sends the current state of the registry to a pushgateway, grouped
// by the migration run so consecutive runs do not overwrite each other
func (m *Monitor) Push(ctx context.Context, url, runID string) error {
	return push.New(url, m.service).
		Gatherer(m.registry).
		Grouping("run_id", runID).
		PushContext(ctx)
}

func (m *Monitor) labels(tags map[string]string, keys ...string) prometheus.Labels {
	l := prometheus.Labels{"service": m.service}
	for _, k := range keys {
		l[k] = tags[k]
	}
	return l
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "call_duration_seconds",
			Help:    "duration of the calls to the identity providers and of the requests served by the status listener",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "dependency", "operation"},
	)

	m.registry.MustRegister(m.responseTime)
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "whether the upstream dependency answered during the run",
		},
		[]string{"service", "component"},
	)

	m.registry.MustRegister(m.dependencyAvailability)
}

func (m *Monitor) registerCounters() {
	m.outcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "migrated_users_total",
			Help: "number of users processed, by terminal outcome",
		},
		[]string{"service", "status"},
	)

	m.registry.MustRegister(m.outcomes)
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger
	m.registry = prometheus.NewRegistry()

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
