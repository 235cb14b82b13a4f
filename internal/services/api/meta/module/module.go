// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "reviewtrust/internal/modkit"
	"reviewtrust/internal/modkit/httpkit"
	str "reviewtrust/internal/platform/strings"
	metahttp "reviewtrust/internal/services/api/meta/http"
	trust "reviewtrust/internal/services/api/trust/domain"
)

// Ports are the cross module ports meta consumes
type Ports struct {
	Defaults trust.DefaultsPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	in     Ports

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		startedAt: time.Now(),
	}
	if p, ok := b.Ports.(Ports); ok {
		m.in = p
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: "reviewtrust-api",
		StartedAt:   m.startedAt,
		Defaults:    m.in.Defaults,
	}
	// typed nils would defeat the skipped check
	if m.deps.HasPG() {
		d.PG = m.deps.PG
	}
	if m.deps.HasCH() {
		d.CH = m.deps.CH
	}
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		metahttp.Register(rr, d)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.name }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
