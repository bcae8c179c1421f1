package cache

import (
	"errors"
	"fmt"
	"time"

	"figurefriday/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// one set of collectors per process; SetupMetrics exposes it on each registerer
var (
	hitCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Name:      "cache_hits_total",
		Help:      "View model cache hits.",
	}, []string{"view"})
	missCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Name:      "cache_miss_total",
		Help:      "View model cache misses.",
	}, []string{"view"})
	buildHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Name:      "vm_build_duration_seconds",
		Help:      "Time spent computing a view model.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"view"})
)

// SetupMetrics registers the cache collectors on reg (default registerer when nil).
// repeat calls with the same registerer are no-ops
func SetupMetrics(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{hitCounter, missCounter, buildHistogram} {
		if err := register(reg, c); err != nil {
			return err
		}
	}
	return nil
}

// register tolerates c already being on reg; a foreign collector under the same name is an error
func register(reg prometheus.Registerer, c prometheus.Collector) error {
	err := reg.Register(c)
	if err == nil {
		return nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if already.ExistingCollector == c {
			return nil
		}
		return fmt.Errorf("cache metrics: name taken by %T", already.ExistingCollector)
	}
	return fmt.Errorf("cache metrics: %w", err)
}

func recordHit(view string) { hitCounter.WithLabelValues(view).Inc() }

func recordMiss(view string) { missCounter.WithLabelValues(view).Inc() }

func observeBuild(view string, d time.Duration) {
	buildHistogram.WithLabelValues(view).Observe(d.Seconds())
}
