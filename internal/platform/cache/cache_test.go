package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X string `json:"x"`
	N int    `json:"n"`
}

func newCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, time.Minute), mr
}

func counting(calls *int, v any, err error) Loader {
	return func(context.Context) (any, error) {
		*calls++
		return v, err
	}
}

func TestFetchJSON_MissThenHit(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()
	key := Key("survey", "bar", "v1", "Age")

	calls := 0
	var first []point
	require.NoError(t, c.FetchJSON(ctx, "bar", key, &first, counting(&calls, []point{{"Sun", 3}}, nil)))
	assert.Equal(t, []point{{"Sun", 3}}, first)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	var second []point
	require.NoError(t, c.FetchJSON(ctx, "bar", key, &second, counting(&calls, nil, errors.New("should not run"))))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestFetchJSON_LoaderErrorNotCached(t *testing.T) {
	c, mr := newCache(t)
	boom := errors.New("boom")
	calls := 0
	var dst point

	err := c.FetchJSON(context.Background(), "view", Key("k"), &dst, counting(&calls, nil, boom))
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists(Key("k")))
}

func TestFetchJSON_UndecodableEntryIsReplaced(t *testing.T) {
	c, mr := newCache(t)
	key := Key("violations", "view", "v1", "0")
	require.NoError(t, mr.Set(key, "not json"))

	calls := 0
	var dst point
	require.NoError(t, c.FetchJSON(context.Background(), "view", key, &dst, counting(&calls, point{"Mon", 1}, nil)))
	assert.Equal(t, point{"Mon", 1}, dst)
	assert.Equal(t, 1, calls)

	got, err := mr.Get(key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":"Mon","n":1}`, got)
}

func TestFetchJSON_RedisDownFallsBackToLoader(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	c := New(client, time.Minute)
	mr.Close()

	calls := 0
	var dst point
	require.NoError(t, c.FetchJSON(context.Background(), "view", Key("k"), &dst, counting(&calls, point{"Tue", 2}, nil)))
	assert.Equal(t, point{"Tue", 2}, dst)
	assert.Equal(t, 1, calls)
}

func TestFetchJSON_Disabled(t *testing.T) {
	var c *Cache
	assert.False(t, c.Enabled())

	calls := 0
	var dst point
	require.NoError(t, c.FetchJSON(context.Background(), "view", "k", &dst, counting(&calls, point{"Wed", 4}, nil)))
	require.NoError(t, c.FetchJSON(context.Background(), "view", "k", &dst, counting(&calls, point{"Wed", 4}, nil)))
	assert.Equal(t, 2, calls)

	assert.Error(t, New(nil, 0).FetchJSON(context.Background(), "view", "k", &dst, nil))
}

func TestPurge(t *testing.T) {
	c, mr := newCache(t)
	require.NoError(t, mr.Set(Key("survey", "bar", "a"), "1"))
	require.NoError(t, mr.Set(Key("survey", "crosstab", "b"), "1"))
	require.NoError(t, mr.Set(Key("violations", "view", "c"), "1"))

	n, err := c.Purge(context.Background(), Key("survey"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.True(t, mr.Exists(Key("violations", "view", "c")))

	var off *Cache
	n, err = off.Purge(context.Background(), "x")
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestSetupMetrics_CountsHitsAndMisses(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, SetupMetrics(reg))
	require.NoError(t, SetupMetrics(reg))

	c, _ := newCache(t)
	ctx := context.Background()
	hits0 := testutil.ToFloat64(hitCounter.WithLabelValues("menu"))
	miss0 := testutil.ToFloat64(missCounter.WithLabelValues("menu"))

	calls := 0
	var dst []int
	for i := 0; i < 3; i++ {
		require.NoError(t, c.FetchJSON(ctx, "menu", Key("menu"), &dst, counting(&calls, []int{1}, nil)))
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(missCounter.WithLabelValues("menu"))-miss0)
	assert.Equal(t, 2.0, testutil.ToFloat64(hitCounter.WithLabelValues("menu"))-hits0)
}

func TestSetupMetrics_EachRegistryExposesCollectors(t *testing.T) {
	first, second := prometheus.NewRegistry(), prometheus.NewRegistry()
	require.NoError(t, SetupMetrics(first))
	require.NoError(t, SetupMetrics(second))
	recordMiss("fresh-registry")

	for _, reg := range []*prometheus.Registry{first, second} {
		n, err := testutil.GatherAndCount(reg, "figurefriday_cache_miss_total")
		require.NoError(t, err)
		assert.Positive(t, n)
	}
}

func TestSetupMetrics_RejectsForeignCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "figurefriday",
		Name:      "cache_hits_total",
		Help:      "View model cache hits.",
	}, []string{"view"}))
	assert.Error(t, SetupMetrics(reg))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "figurefriday:survey:bar:v1", Key("survey", "bar", "v1"))
}
