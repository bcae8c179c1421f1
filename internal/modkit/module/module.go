// Package module holds the contract every API module satisfies and the port registry
package module

import phttp "figurefriday/internal/platform/net/http"

// Module is mounted by api.Mount; Ports may be nil for modules nobody depends on
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	Ports() any
}
