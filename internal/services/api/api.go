// Package api provides the HTTP API for the application
package api

import (
	"time"

	"reviewtrust/internal/platform/config"
	"reviewtrust/internal/platform/logger"
	"reviewtrust/internal/platform/net/middleware"
	phttp "reviewtrust/internal/platform/net/http"
	"reviewtrust/internal/platform/store"

	"reviewtrust/internal/modkit"
	"reviewtrust/internal/modkit/httpkit"
	"reviewtrust/internal/modkit/module"
	"reviewtrust/internal/modkit/swaggerkit"

	metamod "reviewtrust/internal/services/api/meta/module"
	trustmod "reviewtrust/internal/services/api/trust/module"

	"github.com/prometheus/client_golang/prometheus"
)

// Options are the API options
type Options struct {
	// Config is the root view; modules and the api scope add their own prefixes
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool

	// Registry backs /metrics; nil means a fresh registry
	Registry *prometheus.Registry

	// Trust overrides the CORE_TRUST_* options
	Trust trustmod.Options
}

// Deps builds the shared module deps; a nil store leaves both backends disabled
func Deps(opt Options) modkit.Deps {
	d := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		d.Log = *opt.Logger
	}
	if opt.Registry != nil {
		d.Metrics = opt.Registry
	}
	if opt.Store != nil {
		d.PG = opt.Store.PG
		d.CH = opt.Store.CH
	}
	return d
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	if opt.Registry == nil {
		opt.Registry = prometheus.NewRegistry()
	}
	// shared deps for modules
	deps := Deps(opt)

	// trust owns the Defaults port that meta reports
	trust := trustmod.New(deps, opt.Trust)
	defaults := module.MustPortsOf[trustmod.Ports](trust).Defaults

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Defaults: defaults})),
		trust,
	}

	apiCfg := opt.Config.Prefix("CORE_API_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		MaxInFlight: apiCfg.MayInt("MAX_IN_FLIGHT", 256),
		CORS: middleware.CORSOptions{
			AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
		},
	})

	// Swagger + profiler + metrics live outside the versioned scope
	swaggerkit.Mount(r, opt.EnableSwagger, "reviewtrust API")
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	phttp.MountMetrics(r, "/metrics", opt.Registry, opt.EnableMetrics)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
