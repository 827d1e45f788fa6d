// Package middleware holds the HTTP middleware shared by every dispatch route.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/metrics"
)

// Observability echoes the request id, records m (when non-nil) and logs
// each request. Server errors are logged at WARN, everything else at DEBUG.
func Observability(logger logx.Logger, m *metrics.HTTP) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := chimw.GetReqID(r.Context())
			if reqID != "" {
				w.Header().Set(chimw.RequestIDHeader, reqID)
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			code := ww.Status()
			if code == 0 {
				code = http.StatusOK
			}
			route := routePattern(r)
			elapsed := time.Since(start)

			if m != nil {
				status := strconv.Itoa(code)
				m.Requests.WithLabelValues(r.Method, route, status).Inc()
				m.Duration.WithLabelValues(r.Method, route, status).Observe(elapsed.Seconds())
			}

			fields := []logx.Field{
				logx.String("method", r.Method),
				logx.String("route", route),
				logx.Int("status", code),
				logx.Duration("duration", elapsed),
			}
			if reqID != "" {
				fields = append(fields, logx.String("req_id", reqID))
			}
			if code >= http.StatusInternalServerError {
				logger.Warn("http request", fields...)
				return
			}
			logger.Debug("http request", fields...)
		})
	}
}

// routePattern keeps label cardinality bounded: ids never become labels.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
