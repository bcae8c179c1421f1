package module

import "sync"

// ports published by mounted modules, keyed by module name
// api.Mount fills it once at boot; other modules look peers up by name
var ports sync.Map

// Register publishes the port set of a mounted module
func Register(name string, p any) { ports.Store(name, p) }

// PortsAs returns the port set registered under name when it has type T
func PortsAs[T any](name string) (T, bool) {
	var zero T
	v, ok := ports.Load(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Reset drops every registration; tests only
func Reset() { ports.Clear() }
