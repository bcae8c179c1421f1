// Package http serves /meta: liveness, readiness, build and uptime
package http

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"time"

	"figurefriday/internal/core/version"
	"figurefriday/internal/modkit/httpkit"

	"golang.org/x/sync/errgroup"
)

// Pinger is one backend the readiness probe asks
type Pinger interface {
	Ping(context.Context) error
}

// Deps feeds the meta handlers
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      map[string]Pinger // pg, ch, redis; only the ones configured
	ReadyWithin time.Duration     // per probe deadline, 2s when zero
}

type handlers struct{ Deps }

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	if d.ReadyWithin <= 0 {
		d.ReadyWithin = 2 * time.Second
	}
	h := handlers{d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// HealthResponse answers /meta/health
type HealthResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Service string `json:"service" example:"figurefriday-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now" example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck is one backend's probe result; Status is "ok" or "fail"
type ReadyCheck struct {
	Name   string `json:"name" example:"pg"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse is "fail" as soon as one check fails
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now" example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse answers /meta/service; Uptime is in seconds
type ServiceResponse struct {
	Name    string `json:"name" example:"figurefriday-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime" example:"300"`
}

// health serves GET /meta/health: liveness
func (h handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(time.Now())}, nil
}

// ready serves GET /meta/ready: readiness of the configured backends
func (h handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), h.ReadyWithin)
	defer cancel()

	names := slices.Sorted(maps.Keys(h.Checks))
	checks := make([]ReadyCheck, len(names))

	// probes run side by side; a failure never cancels its siblings
	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			checks[i] = ReadyCheck{Name: name, Status: "ok"}
			if err := h.Checks[name].Ping(ctx); err != nil {
				checks[i].Status, checks[i].Error = "fail", err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	resp := ReadyResponse{Status: "ok", Checks: checks, Now: stamp(time.Now())}
	for _, c := range checks {
		if c.Status != "ok" {
			resp.Status = "fail"
			return httpkit.Response{Status: http.StatusServiceUnavailable, Body: resp}, nil
		}
	}
	return resp, nil
}

// version serves GET /meta/version: build stamp
func (h handlers) version(*http.Request) (any, error) { return version.Info(), nil }

// service serves GET /meta/service: service name and uptime
func (h handlers) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(time.Since(h.StartedAt) / time.Second),
	}, nil
}
