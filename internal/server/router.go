package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler registers all routes and returns the handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /beers/fill-stock", s.handleFillStock)
	mux.HandleFunc("GET /beers/stock", s.handleListStock)
	mux.HandleFunc("POST /beers/order", s.handlePlaceOrder)
	mux.HandleFunc("GET /beers/bill", s.handleGetBill)
	mux.HandleFunc("PUT /beers/pay", s.handlePay)

	mux.HandleFunc("POST /nyt/books", s.handleFetchBooks)
	mux.HandleFunc("GET /nyt/books", s.handleCachedBooks)
	mux.HandleFunc("DELETE /nyt/books/reset", s.handleResetBooks)
	mux.HandleFunc("GET /nyt/genres", s.handleGenres)
	mux.HandleFunc("GET /nyt/logs", s.handleLogs)

	return WithRequestID(WithLogging(WithCORS(mux)))
}
