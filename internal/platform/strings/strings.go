// Package strings holds the few string helpers module wiring needs
package strings

import std "strings"

// IfEmpty falls back to def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustString panics with "<what> is required" when s is blank
func MustString(s, what string) string {
	if std.TrimSpace(s) != "" {
		return s
	}
	panic(what + " is required")
}

// MustPrefix turns " survey/ " into "/survey" and panics on an empty or root prefix
func MustPrefix(s string) string {
	p := std.Trim(std.TrimSpace(s), "/ ")
	if p == "" {
		panic("route prefix is required")
	}
	return "/" + p
}
