// Package tab holds the session object for the single shared tab: the stock
// ledger, the open order, the friends ledger and the settlement engine behind
// one mutual-exclusion boundary.
//
// Every purchase and payment mutates shared state across several components
// (reserve-then-append-round, recompute-then-settle), so the session takes a
// single lock around each operation rather than locking the components
// individually.
package tab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mverab/cantina/internal/billing"
	"github.com/mverab/cantina/internal/friends"
	"github.com/mverab/cantina/internal/inventory"
	"github.com/mverab/cantina/internal/journal"
	"github.com/mverab/cantina/internal/models"
	"github.com/mverab/cantina/internal/settle"
)

// ErrInvalidInput is returned for malformed requests: empty orders,
// non-positive quantities, blank names.
var ErrInvalidInput = errors.New("invalid input")

// Session owns the shared tab. Construct one at process start and pass it by
// reference into the request layer.
type Session struct {
	mu      sync.Mutex
	stock   *inventory.Ledger
	bill    *billing.Aggregator
	friends *friends.Ledger
	engine  *settle.Engine
	journal journal.Journal
}

// NewSession builds a session around the given stock ledger, opening a fresh
// order with the given discount-rate source.
func NewSession(stock *inventory.Ledger, rates billing.RateSource, j journal.Journal) *Session {
	bill := billing.NewAggregator(rates)
	fl := friends.NewLedger()
	return &Session{
		stock:   stock,
		bill:    bill,
		friends: fl,
		engine:  settle.NewEngine(bill, fl, stock),
		journal: j,
	}
}

// Replenish adds stock and returns the updated snapshot.
func (s *Session) Replenish(ctx context.Context, req models.StockRequest) (models.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range req.Items {
		if err := item.Validate(); err != nil {
			return models.Stock{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	s.stock.Replenish(req.Items)
	s.journal.Record(ctx, journal.LevelInfo, fmt.Sprintf("stock replenished with %d item(s)", len(req.Items)))
	return s.stock.Snapshot(), nil
}

// ListStock returns a read-only snapshot of the inventory.
func (s *Session) ListStock() models.Stock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock.Snapshot()
}

// PlaceOrder records one round of purchases: stock is reserved, the round is
// appended to the open order and every buyer is registered as a friend.
//
// The whole order is validated before any mutation; a rejected order leaves
// all three ledgers in their pre-call state.
func (s *Session) PlaceOrder(ctx context.Context, reqs []models.OrderRequest) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(reqs) == 0 {
		return models.Order{}, fmt.Errorf("%w: an order must contain at least one item", ErrInvalidInput)
	}
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return models.Order{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	// Validate availability against per-beer aggregate quantities first, so
	// two lines of the same beer cannot pass individually and fail midway.
	wanted := make(map[string]int)
	var names []string
	for _, req := range reqs {
		if _, ok := wanted[req.Name]; !ok {
			names = append(names, req.Name)
		}
		wanted[req.Name] += req.Quantity
	}
	for _, name := range names {
		if err := s.stock.CheckAvailable(name, wanted[name]); err != nil {
			if errors.Is(err, inventory.ErrInsufficientStock) {
				s.journal.Record(ctx, journal.LevelError,
					fmt.Sprintf("order rejected: not enough stock for %s", name))
			}
			return models.Order{}, err
		}
	}

	purchases := make([]billing.Purchase, 0, len(reqs))
	for _, req := range reqs {
		price, err := s.stock.Reserve(req.Name, req.Quantity)
		if err != nil {
			// Cannot happen after the availability check above.
			return models.Order{}, err
		}
		person := strings.TrimSpace(req.User)
		s.friends.Ensure(person)
		purchases = append(purchases, billing.Purchase{
			Item:      models.RoundItem{Name: req.Name, Quantity: req.Quantity, Person: person},
			UnitPrice: price,
		})
	}

	if err := s.bill.AppendRound(purchases); err != nil {
		return models.Order{}, err
	}

	s.journal.Record(ctx, journal.LevelInfo, fmt.Sprintf("order placed: %d purchase(s)", len(purchases)))
	for _, name := range names {
		if err := s.stock.CheckAvailable(name, 1); errors.Is(err, inventory.ErrInsufficientStock) {
			s.journal.Record(ctx, journal.LevelInfo, fmt.Sprintf("stock exhausted for %s", name))
		}
	}

	slog.Debug("round appended", "purchases", len(purchases), "friends", s.friends.Count())
	return s.bill.Snapshot(), nil
}

// Bill returns a snapshot of the open order.
func (s *Session) Bill() models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bill.Snapshot()
}

// Pay settles the open order in the requested mode.
func (s *Session) Pay(ctx context.Context, req models.PayRequest) (*settle.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, err := s.engine.Pay(req)
	if err != nil {
		s.journal.Record(ctx, journal.LevelError, fmt.Sprintf("payment rejected (%s): %v", req.Mode, err))
		return nil, err
	}

	s.journal.Record(ctx, journal.LevelInfo, fmt.Sprintf("payment accepted (%s)", req.Mode))
	if summary.Order.Paid {
		s.journal.Record(ctx, journal.LevelInfo, "bill fully paid")
	}
	return summary, nil
}
