package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cantina_http_requests_total",
		Help: "HTTP requests by method, path pattern and status code.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cantina_http_request_duration_seconds",
		Help:    "HTTP request latency by path pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cantina_orders_total",
		Help: "Rounds successfully appended to the open order.",
	})

	paymentsAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cantina_payments_total",
		Help: "Accepted payments by mode.",
	}, []string{"mode"})

	paymentsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cantina_payment_rejections_total",
		Help: "Rejected payments by reason.",
	}, []string{"reason"})
)
