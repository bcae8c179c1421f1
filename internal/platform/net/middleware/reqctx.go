package middleware

import (
	"net"
	"net/http"

	"figurefriday/internal/platform/logger"
	pnet "figurefriday/internal/platform/net"
)

// RequestContext copies the chi request id and the caller address onto the
// request context and the request scoped logger. Mount it after RequestID and RealIP
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rid := pnet.RequestID(ctx)
		ip := hostOnly(r.RemoteAddr)

		ctx = pnet.WithRequest(ctx, rid, ip)
		ctx = logger.WithRequest(ctx, rid, ip)
		if rid != "" {
			w.Header().Set("X-Request-ID", rid)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// hostOnly strips the port; RealIP leaves a bare address, net/http leaves host:port
func hostOnly(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
