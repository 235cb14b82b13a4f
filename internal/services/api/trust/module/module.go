// Package module wires trust analysis into the API using modkit
package module

import (
	"context"
	"net/http"

	"reviewtrust/internal/core/profile"
	modkit "reviewtrust/internal/modkit"
	"reviewtrust/internal/modkit/httpkit"
	"reviewtrust/internal/platform/logger"
	str "reviewtrust/internal/platform/strings"
	trusthttp "reviewtrust/internal/services/api/trust/http"
	trustrepo "reviewtrust/internal/services/api/trust/repo"
	trustsvc "reviewtrust/internal/services/api/trust/service"
)

// Module implements the trust module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	svc *trustsvc.Svc
}

// New constructs the trust module. A profile that fails to load falls back to the defaults;
// callers that must fail fast resolve it first with Options.LoadProfile and pass it in
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("trust"), modkit.WithPrefix("/trust")}, opts...)...)

	o := merge(FromConfig(deps.Cfg), overrides)
	set, err := o.LoadProfile()
	if err != nil {
		logger.Named("trust").Error().Err(err).Str("path", o.ProfilePath).Msg("profile rejected, using defaults")
		set = profile.Defaults()
	}

	svcOpts := []trustsvc.Option{trustsvc.WithMetrics(trustsvc.NewMetrics(deps.Registerer()))}
	if deps.HasPG() {
		svcOpts = append(svcOpts, trustsvc.WithHistory(deps.PG, trustrepo.NewPG()))
	}
	if deps.HasCH() {
		svcOpts = append(svcOpts, trustsvc.WithEvents(trustrepo.NewCH(deps.CH)))
	}

	svc := trustsvc.New(trustsvc.NewAnalyzer(set), trustsvc.Config{
		Defaults:         o.Settings(),
		HistoryLimit:     o.HistoryLimit,
		StatementTimeout: o.StatementTimeout,
		WriteTimeout:     o.WriteTimeout,
	}, svcOpts...)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Service: svc, Defaults: svc}
	return m
}

// merge applies the non zero fields of ov over base
func merge(base, ov Options) Options {
	if ov.Mode != "" {
		base.Mode = ov.Mode
	}
	if ov.MinReviews != 0 {
		base.MinReviews = ov.MinReviews
	}
	if ov.ProfilePath != "" {
		base.ProfilePath = ov.ProfilePath
	}
	if ov.HistoryLimit != 0 {
		base.HistoryLimit = ov.HistoryLimit
	}
	if ov.StatementTimeout != 0 {
		base.StatementTimeout = ov.StatementTimeout
	}
	if ov.WriteTimeout != 0 {
		base.WriteTimeout = ov.WriteTimeout
	}
	if ov.Profile != nil {
		base.Profile = ov.Profile
	}
	// bools cannot be told apart from unset; config owns them
	return base
}

// Migrate creates the history and event tables on the configured backends
func Migrate(ctx context.Context, deps modkit.Deps) error {
	if deps.HasPG() {
		if err := trustrepo.MigratePG(ctx, deps.PG); err != nil {
			return err
		}
	}
	if deps.HasCH() {
		if err := trustrepo.MigrateCH(ctx, deps.CH); err != nil {
			return err
		}
	}
	return nil
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		trusthttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
