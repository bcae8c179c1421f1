// Package api assembles the dashboard API: meta, survey and violations under /api/v1
package api

import (
	"context"
	"fmt"

	"figurefriday/internal/platform/cache"
	"figurefriday/internal/platform/config"
	"figurefriday/internal/platform/logger"
	"figurefriday/internal/platform/metrics"
	phttp "figurefriday/internal/platform/net/http"
	"figurefriday/internal/platform/net/middleware"
	"figurefriday/internal/platform/store"

	"figurefriday/internal/modkit"
	"figurefriday/internal/modkit/httpkit"
	"figurefriday/internal/modkit/module"
	"figurefriday/internal/modkit/swaggerkit"

	metamod "figurefriday/internal/services/api/meta/module"
	surveymod "figurefriday/internal/services/api/survey/module"
	violationsmod "figurefriday/internal/services/api/violations/module"
)

// Options is everything Mount needs from main
type Options struct {
	// Config is the root view; modules read DATA_* from it
	Config config.Conf
	Store  *store.Store
	Cache  *cache.Cache
	Logger *logger.Logger

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
	// RateLimit is requests per minute per client IP, 0 disables
	RateLimit   int
	CORSOrigins []string
}

// OptionsFrom reads the CORE_API_* switches
func OptionsFrom(root config.Conf) Options {
	c := root.Prefix("CORE_API_")
	return Options{
		Config:         root,
		EnableSwagger:  c.MayBool("SWAGGER", true),
		EnableProfiler: c.MayBool("PROFILER", false),
		EnableMetrics:  c.MayBool("METRICS", true),
		RateLimit:      c.MayInt("RATE_LIMIT", 120),
		CORSOrigins:    c.MayCSV("CORS_ORIGINS", nil),
	}
}

// Mount builds the modules, loads their datasets and mounts the API onto r.
// a dataset that fails to load aborts the mount
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	st := opt.Store
	if st == nil {
		st = &store.Store{}
	}

	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    st.PG,
		CH:    st.CH,
		Cache: opt.Cache,
		Ready: st.Pingers(),
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		surveymod.New(deps),
		violationsmod.New(deps),
	}
	if err := module.LoadAll(ctx, mods...); err != nil {
		return fmt.Errorf("api: load datasets: %w", err)
	}

	// root level so it answers before any /api/v1 middleware
	r.Use(middleware.Heartbeat("/health"))

	m := metrics.New()
	if err := cache.SetupMetrics(m.Registerer()); err != nil {
		return fmt.Errorf("api: cache metrics: %w", err)
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		RateLimit:   opt.RateLimit,
		CORSOrigins: opt.CORSOrigins,
		Metrics:     m,
	})

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, mod := range mods {
			module.Register(mod.Name(), mod.Ports())
			mod.MountRoutes(api)
		}
	})

	// operator surfaces stay outside the rate limited stack
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", m.Handler())
	}
	return nil
}
