package middleware

import (
	"net/http"
	"strconv"
	"time"

	"ticket-commerce-platform/internal/metrics"
)

// MetricsMiddleware records request counts and latency per method and status
func MetricsMiddleware(m *metrics.ServerMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			m.Requests.WithLabelValues(r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
			m.LatencyMS.WithLabelValues(r.Method).Observe(float64(time.Since(start).Milliseconds()))
		})
	}
}
