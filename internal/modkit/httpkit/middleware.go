package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"figurefriday/internal/platform/metrics"
	"figurefriday/internal/platform/net/middleware"
)

// StackOptions tunes the per-API middleware chain; the zero value is usable
type StackOptions struct {
	// RateLimit is requests per minute per client IP, 0 disables
	RateLimit int
	// CORSOrigins defaults to any origin when empty
	CORSOrigins []string
	// SlowRequest marks access log lines as warn at or above this duration
	SlowRequest time.Duration
	// Metrics records request counters when set
	Metrics *metrics.Metrics
}

// CommonStack returns the baseline middleware slice mounted under /api/v1
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	origins := o.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	slow := o.SlowRequest
	if slow == 0 {
		slow = 500 * time.Millisecond
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID,
		middleware.RealIP,
		middleware.RequestContext,

		// safety
		middleware.RecoverJSON,
		middleware.SecureHeaders(middleware.SecureOptions{}),
		middleware.RateLimit(o.RateLimit),

		// cache / freshness
		middleware.NoCache,

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: slow}),
		o.Metrics.Middleware,

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes,
		middleware.Timeout(30 * time.Second),
	}
}
