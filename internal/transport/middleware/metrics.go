package middleware

import (
	"net/http"
	"strings"
	"time"
)

// HTTPRecorder receives one observation per served request.
type HTTPRecorder interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics records request counts and latency labelled by the matched route
// pattern. It reads Request.Pattern after the mux has routed, so it has to
// wrap the ServeMux directly, without any middleware in between that clones
// the request.
func Metrics(rec HTTPRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			rec.ObserveHTTP(r.Method, routeLabel(r.Pattern), sw.status, time.Since(start))
		})
	}
}

// routeLabel strips the method and host from a ServeMux pattern so the
// label set stays bounded.
func routeLabel(pattern string) string {
	if pattern == "" {
		return "unmatched"
	}
	if _, path, ok := strings.Cut(pattern, " "); ok {
		pattern = path
	}
	if i := strings.IndexByte(pattern, '/'); i > 0 {
		pattern = pattern[i:]
	}
	return pattern
}
