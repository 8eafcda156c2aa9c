// Package billing owns the open order: the append-only round history and the
// derived line-item summary with subtotal, taxes, discounts and total.
//
// All computation is float64 money in the 2-decimal rounding discipline of the
// money package. Serialization of concurrent callers is owned by tab.Session.
package billing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mverab/cantina/internal/models"
	"github.com/mverab/cantina/internal/money"
)

// ErrEmptyRound is returned when a round carries no purchases.
var ErrEmptyRound = errors.New("a round must contain at least one purchase")

// Purchase is one priced consumption event entering a round. UnitPrice is the
// stock price at purchase time; the line item derived from it freezes that
// price even if the beer is later replenished at a different one.
type Purchase struct {
	Item      models.RoundItem
	UnitPrice int
}

// Aggregator maintains the single open order.
type Aggregator struct {
	order models.Order
	rates RateSource
}

// NewAggregator opens a fresh order using the given discount-rate source.
func NewAggregator(rates RateSource) *Aggregator {
	return &Aggregator{
		order: models.Order{Created: time.Now()},
		rates: rates,
	}
}

// AppendRound records one batch of purchases as a new timestamped round and
// recomputes all derived state.
func (a *Aggregator) AppendRound(purchases []Purchase) error {
	if len(purchases) == 0 {
		return ErrEmptyRound
	}

	round := models.Round{Created: time.Now()}
	for _, p := range purchases {
		round.Items = append(round.Items, p.Item)
		a.order.Items = append(a.order.Items, models.OrderItem{
			Name:     p.Item.Name,
			Quantity: p.Item.Quantity,
			Total:    float64(p.UnitPrice * p.Item.Quantity),
		})
	}
	a.order.Rounds = append(a.order.Rounds, round)

	a.recompute()
	return nil
}

// recompute regroups every line entry by beer name and rebuilds
// subtotal/taxes/discounts/total. The discount rate is resampled here on every
// call, so it can drift between rounds within the same open order.
func (a *Aggregator) recompute() {
	type group struct {
		quantity int
		total    float64
	}
	grouped := make(map[string]*group)
	var names []string
	for _, item := range a.order.Items {
		g, ok := grouped[item.Name]
		if !ok {
			g = &group{}
			grouped[item.Name] = g
			names = append(names, item.Name)
		}
		g.quantity += item.Quantity
		g.total += item.Total
	}

	items := make([]models.OrderItem, 0, len(names))
	var subtotal float64
	for _, name := range names {
		g := grouped[name]
		items = append(items, models.OrderItem{Name: name, Quantity: g.quantity, Total: g.total})
		subtotal += g.total
	}

	rate := a.rates.DiscountRate()
	taxes := money.Round2(subtotal * TaxRate)
	discounts := money.Round2(subtotal * rate)

	a.order.Items = items
	a.order.Subtotal = subtotal
	a.order.Taxes = taxes
	a.order.Discounts = discounts
	a.order.DiscountsStr = fmt.Sprintf("%d%% off", int(math.Round(rate*100)))
	a.order.Total = money.Round2(subtotal + taxes - discounts)
}

// Snapshot returns a copy of the order safe to hand to callers.
func (a *Aggregator) Snapshot() models.Order {
	order := a.order
	order.Items = append([]models.OrderItem(nil), a.order.Items...)
	order.Rounds = make([]models.Round, len(a.order.Rounds))
	for i, r := range a.order.Rounds {
		order.Rounds[i] = models.Round{
			Created: r.Created,
			Items:   append([]models.RoundItem(nil), r.Items...),
		}
	}
	return order
}

// Rounds exposes the purchase history for settlement walks.
func (a *Aggregator) Rounds() []models.Round { return a.order.Rounds }

// Subtotal returns the current order subtotal.
func (a *Aggregator) Subtotal() float64 { return a.order.Subtotal }

// Discounts returns the current order-level discount amount.
func (a *Aggregator) Discounts() float64 { return a.order.Discounts }

// Total returns the current grand total.
func (a *Aggregator) Total() float64 { return a.order.Total }

// IsPaid reports whether the order has been fully settled.
func (a *Aggregator) IsPaid() bool { return a.order.Paid }

// MarkPaid flips the paid flag. It is never reset for the order's lifetime;
// only the settlement engine calls this.
func (a *Aggregator) MarkPaid() { a.order.Paid = true }

// Mode returns the current payment-mode lock.
func (a *Aggregator) Mode() models.PaymentMode { return a.order.PaidMode }

// LockMode records the mode of an accepted payment. Only the settlement
// engine calls this.
func (a *Aggregator) LockMode(mode models.PaymentMode) { a.order.PaidMode = mode }
