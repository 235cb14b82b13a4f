// @title         reviewtrust API
// @version       0.1.0
// @description   Review manipulation heuristics and bounded trust scores for map listings

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"reviewtrust/internal/platform/config"
	"reviewtrust/internal/platform/logger"
	phttp "reviewtrust/internal/platform/net/http"
	"reviewtrust/internal/platform/store"

	"reviewtrust/internal/services/api"
	trustmod "reviewtrust/internal/services/api/trust/module"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// both backends are optional; an empty DBURL disables one
	pgURL := pgCfg.MayString("DBURL", "")
	chURL := chCfg.MayString("DBURL", "")
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "reviewtrust-api",
			PG: store.PGConfig{
				Enabled:     pgURL != "",
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled:   chURL != "",
				URL:       chURL,
				ClientTag: "api",
				Role:      "events",
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// a bad profile is fatal here instead of a silent fallback
	trustOpts := trustmod.FromConfig(root)
	set, err := trustOpts.LoadProfile()
	if err != nil {
		l.Fatal().Err(err).Str("path", trustOpts.ProfilePath).Msg("analysis profile rejected")
	}
	trustOpts.Profile = &set
	l.Info().Str("profile", set.Describe()).Bool("pg", st.PG != nil).Bool("ch", st.CH != nil).Msg("trust analysis ready")

	opts := api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		EnableMetrics:  apiCfg.MayBool("METRICS", true),
		Trust:          trustOpts,
	}

	if trustOpts.AutoMigrate {
		if err := trustmod.Migrate(ctx, api.Deps(opts)); err != nil {
			l.Fatal().Err(err).Msg("trust schema migration failed")
		}
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(phttp.ServerOptions{Addr: apiCfg.MayAddr("PORT", ":4000")})

	// mount our API
	api.Mount(srv.Router(), opts)

	// run until SIGINT or SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
