// Package module wires the survey dashboard into the API using modkit
package module

import (
	"context"

	"figurefriday/internal/core/survey"
	modkit "figurefriday/internal/modkit"
	"figurefriday/internal/modkit/httpkit"
	str "figurefriday/internal/platform/strings"
	surveyhttp "figurefriday/internal/services/api/survey/http"
	surveyrepo "figurefriday/internal/services/api/survey/repo"
	surveysvc "figurefriday/internal/services/api/survey/service"
)

// Module implements the survey module
type Module struct {
	b     modkit.Built
	svc   surveysvc.Service
	ports adaptSurveyPort
}

var defaults = []modkit.Option{modkit.WithName("survey"), modkit.WithPrefix("/survey")}

// New constructs the survey module; the data source comes from DATA_SURVEY_*
// it panics on a misconfigured source, like the other startup checks
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	reg := survey.MustDefault()
	repo, err := surveyrepo.FromConfig(deps.Cfg, reg, deps.CH)
	if err != nil {
		panic(err)
	}
	return NewWithService(deps, surveysvc.New(reg, repo, deps.Cache), opts...)
}

// NewWithService wires a prepared service, mainly for tests
func NewWithService(_ modkit.Deps, svc surveysvc.Service, opts ...modkit.Option) modkit.Module {
	return &Module{
		b:     modkit.Build(defaults, opts...),
		svc:   svc,
		ports: adaptSurveyPort{svc: svc},
	}
}

// Load reads the survey dataset
func (m *Module) Load(ctx context.Context) error { return m.svc.Load(ctx) }

// MountRoutes mounts the survey endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { surveyhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }
