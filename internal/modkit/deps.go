// Package modkit provides module wiring and core deps
package modkit

import (
	"figurefriday/internal/modkit/repokit"
	"figurefriday/internal/platform/cache"
	"figurefriday/internal/platform/config"
	"figurefriday/internal/platform/logger"
	"figurefriday/internal/platform/store"
)

// Deps holds the shared dependencies handed to every module.
// the zero value works: stores are optional and a nil Cache always recomputes
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	CH    store.Clickhouse
	Cache *cache.Cache

	// Ready are the backends the readiness probe pings, by name
	Ready map[string]store.Pinger
}
