// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "figurefriday/internal/modkit"
	"figurefriday/internal/modkit/httpkit"
	str "figurefriday/internal/platform/strings"

	metahttp "figurefriday/internal/services/api/meta/http"
)

// ServiceName is reported by /meta/health and /meta/service
const ServiceName = "figurefriday-api"

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	checks    map[string]metahttp.Pinger
	startedAt time.Time
}

// New constructs a meta module; deps.Ready feeds the readiness probe
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	checks := make(map[string]metahttp.Pinger, len(deps.Ready))
	for name, p := range deps.Ready {
		checks[name] = p
	}
	return &Module{
		b:         modkit.Build([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...),
		checks:    checks,
		startedAt: time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Checks:      m.checks,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Ports implements the modkit.Module interface; meta exposes none
func (m *Module) Ports() any { return nil }
