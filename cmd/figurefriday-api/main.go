// Command figurefriday-api serves read only chart payloads for the steak survey
// and NYC parking violation dashboards
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"figurefriday/internal/platform/cache"
	"figurefriday/internal/platform/config"
	"figurefriday/internal/platform/logger"
	phttp "figurefriday/internal/platform/net/http"
	"figurefriday/internal/platform/store"

	"figurefriday/internal/services/api"

	"golang.org/x/sync/errgroup"
)

func main() {
	// .env first so LOG_* and CORE_API_* see it
	loaded, dotErr := config.LoadDotenv()

	l := logger.Get()
	if dotErr != nil {
		l.Warn().Err(dotErr).Msg("dotenv not loaded")
	} else if len(loaded) > 0 {
		l.Debug().Strs("files", loaded).Msg("dotenv loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// optional backends: PG/CH only when a dataset source asks for them, Redis for the cache
	st, err := store.Open(ctx, store.ConfigFrom(root, "api"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	gctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := st.Guard(gctx); err != nil {
		cancel()
		l.Fatal().Err(err).Msg("store guard failed")
	}
	cancel()

	opt := api.OptionsFrom(root)
	opt.Store = st
	opt.Logger = l
	opt.Cache = cache.New(st.Redis, root.Prefix("SERVICE_REDIS_").MayDuration("TTL", cache.DefaultTTL))

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)
	if err := api.Mount(ctx, srv.Router(), opt); err != nil {
		l.Fatal().Err(err).Msg("api mount failed")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		l.Info().Msg("http shutting down")
		return srv.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
