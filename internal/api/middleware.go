package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nextreadapp/nextread-server/internal/http/response"
)

// requestMetrics counts every request by route pattern and status code.
func (s *Server) requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
	})
}

// rateLimit rejects clients that exceed the inbound token bucket. Keyed by
// client IP, which RealIP has already resolved.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(r.RemoteAddr) {
			s.logger.Warn("rate limit exceeded", "client", r.RemoteAddr, "path", r.URL.Path)
			response.TooManyRequests(w, "Too many requests, slow down", s.logger.Logger)
			return
		}
		next.ServeHTTP(w, r)
	})
}
