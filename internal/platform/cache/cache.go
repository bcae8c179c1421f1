// Package cache is a Redis backed JSON read-through cache for computed view models
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL applies when New receives a non-positive ttl
const DefaultTTL = 10 * time.Minute

const keyRoot = "figurefriday"

// Loader computes a value on a miss
type Loader func(context.Context) (any, error)

// Cache wraps a redis client; a nil *Cache or nil client always calls the loader
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a cache over client with ttl per entry
func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Enabled reports whether lookups reach redis
func (c *Cache) Enabled() bool { return c != nil && c.client != nil }

// Key joins parts under the process key root, e.g. figurefriday:survey:bar:<version>:Age
func Key(parts ...string) string {
	return keyRoot + ":" + strings.Join(parts, ":")
}

// FetchJSON fills dest from key, running loader and storing its result on a miss.
// view labels the metrics. Redis failures degrade to the loader and are logged,
// loader errors are returned untouched
func (c *Cache) FetchJSON(ctx context.Context, view, key string, dest any, loader Loader) error {
	if loader == nil {
		return perr.New(perr.ErrorCodeUnknown, "cache: loader required")
	}
	if !c.Enabled() {
		return load(ctx, view, dest, loader)
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jerr := json.Unmarshal(payload, dest); jerr == nil {
			recordHit(view)
			return nil
		}
		// a stale shape from an older build; fall through and overwrite
		logger.C(ctx).Warn().Str("key", key).Msg("cache entry undecodable; reloading")
	case err != redis.Nil:
		logger.C(ctx).Warn().Err(err).Str("key", key).Msg("cache get failed; bypassing")
		return load(ctx, view, dest, loader)
	}

	recordMiss(view)
	raw, err := build(ctx, view, loader)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.C(ctx).Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
	return json.Unmarshal(raw, dest)
}

// Purge removes every key under prefix, returning how many were deleted
func (c *Cache) Purge(ctx context.Context, prefix string) (int64, error) {
	if !c.Enabled() {
		return 0, nil
	}
	var n int64
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		d, err := c.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return n, perr.Wrap(err, perr.ErrorCodeUnavailable, "cache purge")
		}
		n += d
	}
	if err := iter.Err(); err != nil {
		return n, perr.Wrap(err, perr.ErrorCodeUnavailable, "cache scan")
	}
	return n, nil
}

func load(ctx context.Context, view string, dest any, loader Loader) error {
	raw, err := build(ctx, view, loader)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func build(ctx context.Context, view string, loader Loader) ([]byte, error) {
	start := time.Now()
	v, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	observeBuild(view, time.Since(start))
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "cache: encode %s", view)
	}
	return raw, nil
}
