// Package module wires correct into the API using modkit
package module

import (
	"net/http"

	modkit "redpen/internal/modkit"
	"redpen/internal/modkit/httpkit"
	str "redpen/internal/platform/strings"

	"redpen/internal/core/corrector"
	correcthttp "redpen/internal/services/api/correct/http"
	correctsvc "redpen/internal/services/api/correct/service"
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

	svc correctsvc.Service
}

// New constructs a correct module with the provided dependencies and options.
// A remote corrector may be injected through Ports, see ports.go
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("correct"), modkit.WithPrefix("/correct")}, opts...)...)

	if deps.Rules == nil {
		panic("correct module requires a compiled rulepack in deps")
	}

	var remote corrector.Corrector
	if p, ok := b.Ports.(Ports); ok {
		remote = p.Remote
	}

	svc := correctsvc.New(corrector.NewRules(deps.Rules), remote)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptCorrectPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		correcthttp.Register(r, m.svc)
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
