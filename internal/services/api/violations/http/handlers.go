// Package http provides http transport for the violations dashboard
package http

import (
	stdhttp "net/http"

	"figurefriday/internal/modkit/httpkit"
	"figurefriday/internal/platform/net/http/bind"
	"figurefriday/internal/services/api/violations/domain"
)

// Register mounts violations endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.menu)
	httpkit.Get(r, "/selection/default", h.defaultSelection)
	httpkit.PostJSON[domain.SelectRequest](r, "/select", h.sel)
	httpkit.Get(r, "/{index}", h.view)
}

type handlers struct{ svc domain.ServicePort }

// menu serves GET /violations: selector entries in snapshot order
func (h *handlers) menu(r *stdhttp.Request) (any, error) {
	return h.svc.Menu(r.Context())
}

// view serves GET /violations/{index}: dashboard view for one violation code
func (h *handlers) view(r *stdhttp.Request) (any, error) {
	i, err := bind.PathInt(r, "index")
	if err != nil {
		return nil, err
	}
	return h.svc.View(r.Context(), i)
}

// sel serves POST /violations/select: move the selector
func (h *handlers) sel(r *stdhttp.Request, in domain.SelectRequest) (any, error) {
	return h.svc.Select(r.Context(), in)
}

// defaultSelection serves GET /violations/selection/default: initial selector state
func (h *handlers) defaultSelection(r *stdhttp.Request) (any, error) {
	return h.svc.DefaultSelection(r.Context())
}
