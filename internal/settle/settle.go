// Package settle orchestrates payments against the open order and the friends
// ledger.
//
// The engine holds no state of its own: it reads order totals from the billing
// aggregator, reads and credits balances in the friends ledger, and enforces
// the payment-mode lock. A payment that fails validation mutates nothing.
package settle

import (
	"errors"
	"fmt"
	"math"

	"github.com/mverab/cantina/internal/billing"
	"github.com/mverab/cantina/internal/friends"
	"github.com/mverab/cantina/internal/models"
	"github.com/mverab/cantina/internal/money"
)

var (
	// ErrAlreadyPaid covers both the fully settled order and an individual
	// friend whose due is already covered.
	ErrAlreadyPaid = errors.New("already paid")

	// ErrModeConflict is returned when a payment's mode differs from the mode
	// locked in by an earlier accepted payment.
	ErrModeConflict = errors.New("payment mode conflict")

	// ErrOverTotal is returned when an equal-split payment would push the sum
	// of balances past the order total.
	ErrOverTotal = errors.New("payment exceeds the total bill")

	// ErrNoFriends is returned when an equal split is requested before anyone
	// has ordered.
	ErrNoFriends = errors.New("no friends found to split the bill")

	// ErrInvalidMode is returned for unknown payment modes.
	ErrInvalidMode = errors.New("invalid payment mode")
)

// PriceLookup resolves the current unit price of a beer, 0 for unknown names.
// Individual dues price every historical purchase at the current stock price,
// which can diverge from the frozen line-item totals after a replenishment at
// a different price.
type PriceLookup interface {
	Price(name string) int
}

// Summary is the result of an accepted payment.
type Summary struct {
	Message           string             `json:"message"`
	RemainingBalances map[string]float64 `json:"remaining_balances"`
	BillStatus        string             `json:"bill_status"`
	Order             models.Order       `json:"order"`
}

// Engine applies settlement requests to the two ledgers it is given.
type Engine struct {
	bill    *billing.Aggregator
	friends *friends.Ledger
	prices  PriceLookup
}

// NewEngine wires a settlement engine to the order aggregator, friends ledger
// and stock prices.
func NewEngine(bill *billing.Aggregator, fl *friends.Ledger, prices PriceLookup) *Engine {
	return &Engine{bill: bill, friends: fl, prices: prices}
}

// Pay settles the open order in the requested mode.
//
// The first accepted payment locks the order to its mode; payments in the
// other mode are rejected with ErrModeConflict until a new order is opened.
// Repeating the locked mode is allowed (individual payments are naturally
// incremental).
func (e *Engine) Pay(req models.PayRequest) (*Summary, error) {
	if e.bill.IsPaid() {
		return nil, fmt.Errorf("%w: the bill has already been paid", ErrAlreadyPaid)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}
	if mode := e.bill.Mode(); mode != models.ModeUnset && mode != req.Mode {
		return nil, fmt.Errorf("%w: cannot process %s payment when %s payment is already in progress",
			ErrModeConflict, req.Mode, mode)
	}

	switch req.Mode {
	case models.ModeEqual:
		return e.payEqual()
	default:
		return e.payIndividual(req.FriendName)
	}
}

// payEqual splits the order total evenly across every friend in one call.
// The over-total guard makes the split all-or-nothing: a second call while
// the bill is still open would overshoot and is rejected.
func (e *Engine) payEqual() (*Summary, error) {
	count := e.friends.Count()
	if count == 0 {
		return nil, ErrNoFriends
	}

	share := money.Round2(e.bill.Total() / float64(count))
	if e.friends.TotalPaid()+share*float64(count) > e.bill.Total() {
		return nil, ErrOverTotal
	}

	for _, f := range e.friends.All() {
		if err := e.friends.Credit(f.Name, share); err != nil {
			return nil, err
		}
	}

	e.bill.LockMode(models.ModeEqual)
	return e.finalize(), nil
}

// payIndividual credits one friend with what they still owe for their own
// purchases, capped so the sum of all balances never exceeds the order total
// even under rounding drift across friends.
func (e *Engine) payIndividual(name string) (*Summary, error) {
	if !e.friends.Exists(name) {
		return nil, fmt.Errorf("%w: %s", friends.ErrNotFound, name)
	}

	remaining := e.individualDue(name) - e.friends.Balance(name)
	if remaining <= 0 {
		return nil, fmt.Errorf("%w: %s has already paid their total amount", ErrAlreadyPaid, name)
	}

	payment := math.Min(remaining, e.bill.Total()-e.friends.TotalPaid())
	if err := e.friends.Credit(name, payment); err != nil {
		return nil, err
	}

	e.bill.LockMode(models.ModeIndividual)
	return e.finalize(), nil
}

// individualDue re-walks every round to price one friend's consumption: each
// event at the current stock price, plus taxes, minus a share of the
// order-level discount proportional to the event's revenue share.
func (e *Engine) individualDue(name string) float64 {
	subtotal := e.bill.Subtotal()
	discounts := e.bill.Discounts()

	var due float64
	for _, round := range e.bill.Rounds() {
		for _, item := range round.Items {
			if item.Person != name {
				continue
			}
			itemTotal := float64(item.Quantity * e.prices.Price(item.Name))
			itemTaxes := itemTotal * billing.TaxRate
			var itemDiscount float64
			if subtotal > 0 {
				itemDiscount = itemTotal * (discounts / subtotal)
			}
			due += itemTotal + itemTaxes - itemDiscount
		}
	}
	return due
}

// finalize recomputes paid status and builds the settlement summary.
func (e *Engine) finalize() *Summary {
	if e.friends.TotalPaid() >= e.bill.Total() {
		e.bill.MarkPaid()
	}

	balances := make(map[string]float64)
	for _, f := range e.friends.All() {
		balances[f.Name] = f.Balance
	}

	status := "Pending"
	if e.bill.IsPaid() {
		status = "Paid"
	}

	return &Summary{
		Message:           "Payment processed successfully.",
		RemainingBalances: balances,
		BillStatus:        status,
		Order:             e.bill.Snapshot(),
	}
}
