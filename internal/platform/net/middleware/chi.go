package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// chi middlewares re-exported so modules never import chi directly
var (
	// RequestID attaches or propagates X-Request-ID
	RequestID = chimw.RequestID
	// RealIP rewrites RemoteAddr from X-Forwarded-For / X-Real-IP
	RealIP = chimw.RealIP
	// NoCache marks every response as not cacheable by clients or proxies
	NoCache = chimw.NoCache
	// StripSlashes routes /survey/fields/ as /survey/fields
	StripSlashes = chimw.StripSlashes
)

// Timeout cancels the request context after d and answers 504 if nothing was written
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// Heartbeat answers GET path with 200 before routing, for load balancer checks
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// Compress gzips JSON responses at level (flate.BestSpeed for chart payloads)
func Compress(level int) func(http.Handler) http.Handler {
	return chimw.Compress(level, "application/json")
}
