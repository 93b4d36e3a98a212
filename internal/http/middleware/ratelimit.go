package middleware

import (
	"net"
	"net/http"

	rl "github.com/rogerio-castellano/smart-retail-ops/internal/http/rate_limiter"
	"github.com/rogerio-castellano/smart-retail-ops/internal/logging"
)

// RateLimit rejects clients that exceed their token bucket with 429.
// A nil limiter disables the check.
func RateLimit(l *rl.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !l.Allow(ip) {
				logging.FromContext(r.Context()).Warn("rate limit exceeded", "client", ip, "path", r.URL.Path)
				w.Header().Set("Retry-After", "1")
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
