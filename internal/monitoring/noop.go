// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"github.com/canonical/lending-service/internal/logging"
)

var _ MonitorInterface = (*NoopMonitor)(nil)

// NoopMonitor discards every metric. Used by CLI subcommands that share
// code with the server but have no scrape endpoint.
type NoopMonitor struct {
	service string

	logger logging.LoggerInterface
}

func NewNoopMonitor(service string, logger logging.LoggerInterface) *NoopMonitor {
	return &NoopMonitor{service: service, logger: logger}
}

func (m *NoopMonitor) GetService() string {
	return m.service
}

func (m *NoopMonitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	return nil
}

func (m *NoopMonitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	return nil
}
