// Package raw reads environment variables without logging.
// the logger bootstraps from it and config adds its warnings on top
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Env is a namespaced view over the process environment, e.g. Env("LOG_")
type Env string

// Prefix nests another namespace
func (e Env) Prefix(p string) Env { return e + Env(p) }

// Key is the fully-qualified variable name
func (e Env) Key(k string) string { return string(e) + k }

// Lookup returns the trimmed value; blank counts as unset
func (e Env) Lookup(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(e.Key(k)))
	return v, v != ""
}

// String returns the value or def
func (e Env) String(k, def string) string {
	if v, ok := e.Lookup(k); ok {
		return v
	}
	return def
}

// Bool parses with strconv.ParseBool; unset or invalid is def
func (e Env) Bool(k string, def bool) bool {
	v, ok := e.Lookup(k)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Int parses a base 10 integer; unset or invalid is def
func (e Env) Int(k string, def int) int {
	v, ok := e.Lookup(k)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
