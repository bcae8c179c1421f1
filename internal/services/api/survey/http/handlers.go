// Package http provides http transport for the survey dashboard
package http

import (
	stdhttp "net/http"

	"figurefriday/internal/modkit/httpkit"
	"figurefriday/internal/services/api/survey/domain"
)

// Register mounts survey endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// dropdown sources
	httpkit.Get(r, "/fields", h.fields)
	httpkit.Get(r, "/selection/default", h.defaultSelection)

	// chart payloads
	httpkit.PostJSON[domain.Selection](r, "/bar-chart", h.barChart)
	httpkit.PostJSON[domain.Selection](r, "/crosstab", h.crossTab)
}

type handlers struct{ svc domain.ServicePort }

// fields serves GET /survey/fields: survey fields grouped by type
func (h *handlers) fields(r *stdhttp.Request) (any, error) {
	return h.svc.Fields(r.Context())
}

// defaultSelection serves GET /survey/selection/default: initial dashboard selection
func (h *handlers) defaultSelection(r *stdhttp.Request) (any, error) {
	return h.svc.DefaultSelection(r.Context())
}

// barChart serves POST /survey/bar-chart: stacked bar chart for an attribute and a variable
func (h *handlers) barChart(r *stdhttp.Request, in domain.Selection) (any, error) {
	return h.svc.BarChart(r.Context(), in)
}

// crossTab serves POST /survey/crosstab: raw cross-tab counts and cumulative fractions
func (h *handlers) crossTab(r *stdhttp.Request, in domain.Selection) (any, error) {
	return h.svc.CrossTab(r.Context(), in)
}
