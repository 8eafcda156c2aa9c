package models

import "time"

// PaymentMode selects how the open order is settled. Once any payment of one
// mode has been accepted, the order is locked to that mode for its lifetime.
type PaymentMode string

const (
	// ModeUnset means no payment has been accepted yet.
	ModeUnset PaymentMode = ""

	// ModeEqual splits the order total evenly across all friends in one call.
	ModeEqual PaymentMode = "equal"

	// ModeIndividual settles one friend's own consumption, incrementally.
	ModeIndividual PaymentMode = "individual"
)

// RoundItem is a single consumption event: one friend buying a quantity of one beer.
// Immutable once recorded.
type RoundItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Person   string `json:"person"`
}

// Round is one batch of simultaneous purchases recorded with a single timestamp.
type Round struct {
	Created time.Time   `json:"created"`
	Items   []RoundItem `json:"items"`
}

// OrderItem is the per-beer aggregate across all rounds of the open order.
// Total freezes the price paid at purchase time.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Order is the running bill for the open tab.
type Order struct {
	// Created is when the tab was opened.
	Created time.Time `json:"created"`

	// Paid becomes true once the sum of all friend balances covers Total.
	// It is monotonic for the lifetime of the order.
	Paid bool `json:"paid"`

	// PaidMode is the payment-mode lock. Set by the first accepted payment;
	// payments of the other mode are rejected afterwards.
	PaidMode PaymentMode `json:"paid_mode"`

	Subtotal     float64 `json:"subtotal"`
	Taxes        float64 `json:"taxes"`
	Discounts    float64 `json:"discounts"`
	DiscountsStr string  `json:"discounts_str"`
	Total        float64 `json:"total"`

	// Items is the deduplicated line-item summary, derived from Rounds.
	Items []OrderItem `json:"items"`

	// Rounds is the append-only purchase history.
	Rounds []Round `json:"rounds"`
}
