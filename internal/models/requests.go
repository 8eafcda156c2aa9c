package models

import (
	"errors"
	"strings"
)

// StockItem is one replenishment entry. Price is only used when the beer is
// new; replenishing an existing beer never alters its price.
type StockItem struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// StockRequest replenishes the inventory.
type StockRequest struct {
	Items []StockItem `json:"items"`
}

// OrderRequest is one requested purchase: a friend ordering a quantity of one beer.
type OrderRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	User     string `json:"user"`
}

// PayRequest asks to settle the open order in the given mode.
// FriendName is required for individual payments.
type PayRequest struct {
	Mode       PaymentMode `json:"mode"`
	FriendName string      `json:"friend_name,omitempty"`
}

// Validate checks a replenishment entry.
func (s StockItem) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("name is required")
	}
	if s.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if s.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	return nil
}

// Validate checks a single purchase request.
func (o OrderRequest) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return errors.New("name is required")
	}
	if o.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if strings.TrimSpace(o.User) == "" {
		return errors.New("user is required")
	}
	return nil
}

// Validate checks the payment mode.
func (p PayRequest) Validate() error {
	switch p.Mode {
	case ModeEqual, ModeIndividual:
		return nil
	default:
		return errors.New("mode must be \"equal\" or \"individual\"")
	}
}
