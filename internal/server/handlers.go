// Package server exposes the HTTP API of the service: the tab endpoints under
// /beers and the book-catalog endpoints under /nyt.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mverab/cantina/internal/books"
	"github.com/mverab/cantina/internal/journal"
	"github.com/mverab/cantina/internal/models"
	"github.com/mverab/cantina/internal/tab"
)

const recentLogLimit = 100

// Server holds the request-layer collaborators.
type Server struct {
	session *tab.Session
	books   *books.Client
	fetcher *books.Fetcher
	journal journal.Journal
}

// New creates the request layer over the given session and collaborators.
func New(session *tab.Session, bc *books.Client, fetcher *books.Fetcher, j journal.Journal) *Server {
	return &Server{session: session, books: bc, fetcher: fetcher, journal: j}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Cantina API"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFillStock(w http.ResponseWriter, r *http.Request) {
	var req models.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	stock, err := s.session.Replenish(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Stock filled successfully",
		"stock":   stock,
	})
}

func (s *Server) handleListStock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.ListStock())
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var reqs []models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	order, err := s.session.PlaceOrder(r.Context(), reqs)
	if err != nil {
		slog.Error("place order failed", "error", err)
		writeDomainError(w, err)
		return
	}

	ordersPlaced.Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Order placed",
		"order":   order,
	})
}

func (s *Server) handleGetBill(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Bill())
}

func (s *Server) handlePay(w http.ResponseWriter, r *http.Request) {
	var req models.PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	summary, err := s.session.Pay(r.Context(), req)
	if err != nil {
		_, reason := classify(err)
		paymentsRejected.WithLabelValues(reason).Inc()
		slog.Warn("payment rejected", "mode", req.Mode, "error", err)
		writeDomainError(w, err)
		return
	}

	paymentsAccepted.WithLabelValues(string(req.Mode)).Inc()
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleFetchBooks(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Genre string `json:"genre"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if strings.TrimSpace(req.Genre) == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "genre is required")
		return
	}

	s.fetcher.FetchInBackground(req.Genre)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Fetching books in the background"})
}

func (s *Server) handleCachedBooks(w http.ResponseWriter, r *http.Request) {
	cached := s.books.CachedBooks()
	if len(cached) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No books found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"books": cached})
}

func (s *Server) handleResetBooks(w http.ResponseWriter, r *http.Request) {
	s.books.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Books cache reset successfully."})
}

func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.books.FetchGenres(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"genres": genres})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := s.journal.Recent(r.Context(), recentLogLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	if len(entries) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No logs found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"logs": entries})
}
