package middleware

import (
	"net/http"

	pstrings "figurefriday/internal/platform/strings"

	chicors "github.com/go-chi/cors"
)

// CORSOptions is the slice of go-chi/cors the dashboards configure
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string // GET, POST, OPTIONS when empty
	AllowedHeaders []string // Accept, Content-Type, X-Request-ID when empty
	MaxAge         int      // seconds; 300 when zero
}

// CORS lets the dashboard front end call the API from another origin
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	maxAge := o.MaxAge
	if maxAge == 0 {
		maxAge = 300
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         maxAge,
	})
}
