// Package module wires the violations dashboard into the API using modkit
package module

import (
	"context"

	modkit "figurefriday/internal/modkit"
	"figurefriday/internal/modkit/httpkit"
	str "figurefriday/internal/platform/strings"
	violationshttp "figurefriday/internal/services/api/violations/http"
	violationsrepo "figurefriday/internal/services/api/violations/repo"
	violationssvc "figurefriday/internal/services/api/violations/service"
)

// Module implements the violations module
type Module struct {
	b     modkit.Built
	svc   violationssvc.Service
	ports adaptViolationsPort
}

var defaults = []modkit.Option{modkit.WithName("violations"), modkit.WithPrefix("/violations")}

// New constructs the violations module reading the snapshot named by DATA_VIOLATIONS_*
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	repo, err := violationsrepo.FromConfig(deps.Cfg, deps.PG)
	if err != nil {
		panic(err)
	}
	return NewWithService(deps, violationssvc.New(repo, deps.Cache), opts...)
}

// NewWithService wires a prepared service
func NewWithService(_ modkit.Deps, svc violationssvc.Service, opts ...modkit.Option) modkit.Module {
	return &Module{
		b:     modkit.Build(defaults, opts...),
		svc:   svc,
		ports: adaptViolationsPort{svc: svc},
	}
}

// Load reads the violation snapshot
func (m *Module) Load(ctx context.Context) error { return m.svc.Load(ctx) }

// MountRoutes mounts the violations endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { violationshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
