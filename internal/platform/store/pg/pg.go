// Package pg opens the pgx pool that holds the violation snapshot table
package pg

import (
	"context"
	"time"

	"figurefriday/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL      string
	MaxConns int32
	// LogSQL attaches the statement logger; Slow marks statements at or above it as warn
	LogSQL bool
	Slow   time.Duration
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL and builds a pool without waiting for the server
func Open(ctx context.Context, cfg Config, log logger.Logger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.LogSQL {
		pcfg.ConnConfig.Tracer = NewQueryLog(log, cfg.Slow)
	}
	return newPool(ctx, pcfg)
}
