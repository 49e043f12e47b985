package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics holds the prometheus collectors for the HTTP surface and the
// commerce flows.
type ServerMetrics struct {
	Requests        *prometheus.CounterVec
	LatencyMS       *prometheus.HistogramVec
	OrdersFinalized *prometheus.CounterVec
	TicketsRedeemed *prometheus.CounterVec
}

// New registers and returns the server metrics
func New() *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ticketcommerce",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ticketcommerce",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method"})

	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ticketcommerce",
		Name:      "orders_finalized_total",
		Help:      "Total number of orders finalized, by cart kind.",
	}, []string{"kind"})

	redeemed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ticketcommerce",
		Name:      "tickets_redeemed_total",
		Help:      "Total number of ticket redemption attempts, by outcome.",
	}, []string{"outcome"})

	prometheus.MustRegister(requests, latency, orders, redeemed)
	return &ServerMetrics{
		Requests:        requests,
		LatencyMS:       latency,
		OrdersFinalized: orders,
		TicketsRedeemed: redeemed,
	}
}

// Handler returns the /metrics scrape handler
func Handler() http.Handler {
	return promhttp.Handler()
}
