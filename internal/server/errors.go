package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mverab/cantina/internal/friends"
	"github.com/mverab/cantina/internal/inventory"
	"github.com/mverab/cantina/internal/settle"
	"github.com/mverab/cantina/internal/tab"
)

// jsonError is the JSON error payload shape.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, jsonError{Error: code, Details: details})
}

// classify maps a domain error to an HTTP status and a stable error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, inventory.ErrNotFound), errors.Is(err, friends.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, inventory.ErrInsufficientStock):
		return http.StatusBadRequest, "insufficient_stock"
	case errors.Is(err, tab.ErrInvalidInput), errors.Is(err, settle.ErrInvalidMode):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, settle.ErrNoFriends):
		return http.StatusBadRequest, "no_friends"
	case errors.Is(err, settle.ErrAlreadyPaid):
		return http.StatusConflict, "already_paid"
	case errors.Is(err, settle.ErrModeConflict):
		return http.StatusConflict, "mode_conflict"
	case errors.Is(err, settle.ErrOverTotal):
		return http.StatusConflict, "over_total"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// writeDomainError translates a domain failure into its transport response.
func writeDomainError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeError(w, status, code, err.Error())
}
