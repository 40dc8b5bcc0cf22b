// Package module wires organisations into the API using modkit
package module

import (
	"net/http"

	modkit "orggate/internal/modkit"
	"orggate/internal/modkit/httpkit"
	str "orggate/internal/platform/strings"
	orgshttp "orggate/internal/services/organisations/http"
	orgssvc "orggate/internal/services/organisations/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc orgssvc.Service
}

// New constructs an organisations module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("organisations"), modkit.WithPrefix("/organisations")}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok {
		panic("organisations module requires Ports with a Gateway")
	}
	svc := orgssvc.New(p.Gateway)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptServicePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		orgshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
