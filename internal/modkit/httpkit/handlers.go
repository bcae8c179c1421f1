// Package httpkit is what service modules build routes with; they never import
// platform/net/http or chi themselves
package httpkit

import (
	"net/http"

	phttp "figurefriday/internal/platform/net/http"
	"figurefriday/internal/platform/net/http/bind"
)

type (
	Router   = phttp.Router
	Handler  = phttp.Handler
	Envelope = phttp.Envelope
	// Response lets a handler choose the status, e.g. 503 from /meta/ready
	Response = phttp.Response
)

// Call turns (data, err) into an envelope: err picks the status, a Response is written as is,
// anything else is 200
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// JSON decodes and validates the request body into T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Call(func(r *http.Request) (any, error) {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}

// Get mounts a bodiless endpoint
func Get(r Router, path string, fn func(*http.Request) (any, error)) { r.Get(path, Call(fn)) }

// PostJSON mounts an endpoint whose body binds into T
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(fn))
}
