// Package store opens the optional backends dataset loaders and the cache read from
package store

import (
	"context"
	"errors"
	"maps"
	"slices"

	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Store holds whichever backends Config enabled; the rest stay nil
type Store struct {
	Log logger.Logger

	PG    TxRunner      // violation snapshots
	CH    Clickhouse    // survey responses
	Redis *redis.Client // chart view-model cache
}

// Option adjusts a Store before any backend is dialled
type Option func(*Store) error

// WithLogger sets the parent logger; Open adds component=store
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// Open dials every enabled backend in order pg, ch, redis
// on failure the backends already opened are closed again
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	steps := []struct {
		on   bool
		open func() error
	}{
		{cfg.PG.Enabled, func() (err error) { s.PG, err = openPG(ctx, cfg, s); return }},
		{cfg.CH.Enabled, func() (err error) { s.CH, err = openCH(ctx, cfg); return }},
		{cfg.Redis.Enabled, func() (err error) { s.Redis, err = openRedis(ctx, cfg); return }},
	}
	for _, st := range steps {
		if !st.on {
			continue
		}
		if err := st.open(); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
	}
	return s, nil
}

// Guard pings every open backend; failures come back joined, prefixed with the backend name
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return perr.New(perr.ErrorCodeUnavailable, "store not opened")
	}
	pingers := s.Pingers()
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(pingers)) {
		if err := pingers[name].Ping(ctx); err != nil {
			errs = append(errs, perr.Wrap(err, perr.ErrorCodeUnavailable, name))
		}
	}
	return errors.Join(errs...)
}

// Pingers names the open backends for readiness probes
func (s *Store) Pingers() map[string]Pinger {
	out := make(map[string]Pinger, 3)
	if s == nil {
		return out
	}
	if p, ok := s.PG.(Pinger); ok {
		out["pg"] = p
	}
	if p, ok := s.CH.(Pinger); ok {
		out["ch"] = p
	}
	if s.Redis != nil {
		out["redis"] = redisPing{s.Redis}
	}
	return out
}

// Close releases redis, clickhouse and postgres in reverse open order
func (s *Store) Close(context.Context) error {
	var errs []error
	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}
	if s.CH != nil {
		errs = append(errs, s.CH.Close())
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

type redisPing struct{ c *redis.Client }

func (p redisPing) Ping(ctx context.Context) error { return p.c.Ping(ctx).Err() }
