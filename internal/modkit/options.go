package modkit

import (
	"net/http"

	"figurefriday/internal/modkit/httpkit"
)

// Option overrides one piece of a module's defaults
type Option func(*Built)

func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix moves the module, e.g. "/survey" to "/steak"
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends middleware applied to the module's routes only
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithRegister mounts extra endpoints under the module prefix after its own
func WithRegister(fn func(httpkit.Router)) Option { return func(b *Built) { b.Register = fn } }
