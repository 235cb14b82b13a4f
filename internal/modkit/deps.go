// Package modkit provides module wiring and core deps
package modkit

import (
	"reviewtrust/internal/platform/config"
	"reviewtrust/internal/platform/logger"
	"reviewtrust/internal/platform/store"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil when the backend is not configured
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	PG      store.TxRunner
	CH      store.Clickhouse
	Metrics prometheus.Registerer
}

// HasPG reports whether a Postgres backend is wired
func (d Deps) HasPG() bool { return d.PG != nil }

// HasCH reports whether a ClickHouse backend is wired
func (d Deps) HasCH() bool { return d.CH != nil }

// Registerer returns Metrics or a throwaway registry so modules never nil check
func (d Deps) Registerer() prometheus.Registerer {
	if d.Metrics != nil {
		return d.Metrics
	}
	return prometheus.NewRegistry()
}
