// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	attempts     *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec

	registerer prometheus.Registerer
	logger     logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetRequestAttempts(tags map[string]string, value float64) error {
	if m.attempts == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.attempts.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(tags).Set(value)

	return nil
}

func (m *Monitor) registerHistograms() {
	histograms := make([]*prometheus.HistogramVec, 0)

	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.attempts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "backend_request_attempts",
			Help:        "transport attempts per logical backend request",
			ConstLabels: prometheus.Labels{"service": m.service},
			Buckets:     []float64{1, 2, 3, 4},
		},
		[]string{"route", "outcome"},
	)

	histograms = append(histograms, m.responseTime, m.attempts)

	for i, h := range histograms {
		if err := m.registerer.Register(h); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
					histograms[i] = existing
					continue
				}
			}
			m.logger.Errorf("metric %v could not be registered: %v", h, err)
		}
	}

	m.responseTime, m.attempts = histograms[0], histograms[1]
}

func (m *Monitor) registerGauges() {
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	if err := m.registerer.Register(m.dependencies); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				m.dependencies = existing
				return
			}
		}
		m.logger.Errorf("metric %v could not be registered: %v", m.dependencies, err)
	}
}

// NewMonitor registers its collectors with the default prometheus registerer
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	return NewMonitorWithRegisterer(service, prometheus.DefaultRegisterer, logger)
}

func NewMonitorWithRegisterer(service string, registerer prometheus.Registerer, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.registerer = registerer
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()

	return m
}
