// Package inventory owns the set of purchasable beers and their available
// quantities.
//
// The ledger itself is not safe for concurrent use; all mutations are
// serialized by the owning tab.Session.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/mverab/cantina/internal/models"
)

var (
	// ErrNotFound is returned when no beer matches the requested name.
	ErrNotFound = errors.New("beer not found")

	// ErrInsufficientStock is returned when a reservation exceeds availability.
	ErrInsufficientStock = errors.New("not enough stock")
)

// Ledger tracks beers by name, preserving insertion order for snapshots.
type Ledger struct {
	beers       []*models.Beer
	byName      map[string]*models.Beer
	lastUpdated time.Time
}

// NewLedger creates a ledger seeded with the given beers.
func NewLedger(seed ...models.Beer) *Ledger {
	l := &Ledger{byName: make(map[string]*models.Beer), lastUpdated: time.Now()}
	for _, b := range seed {
		l.put(b)
	}
	return l
}

func (l *Ledger) put(b models.Beer) {
	beer := b
	l.beers = append(l.beers, &beer)
	l.byName[beer.Name] = &beer
}

// Replenish adds quantities to existing beers and registers new ones.
// Replenishing an existing beer never alters its price.
func (l *Ledger) Replenish(items []models.StockItem) {
	for _, item := range items {
		if beer, ok := l.byName[item.Name]; ok {
			beer.Quantity += item.Quantity
			continue
		}
		l.put(models.Beer{Name: item.Name, Price: item.Price, Quantity: item.Quantity})
	}
	l.lastUpdated = time.Now()
}

// Reserve decrements availability for one beer and returns its unit price.
func (l *Ledger) Reserve(name string, quantity int) (int, error) {
	beer, ok := l.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if beer.Quantity < quantity {
		return 0, fmt.Errorf("%w for %s", ErrInsufficientStock, name)
	}
	beer.Quantity -= quantity
	l.lastUpdated = time.Now()
	return beer.Price, nil
}

// CheckAvailable verifies that the requested quantity of a beer is in stock
// without mutating anything. Callers use it to validate a whole order before
// reserving, so a rejected order leaves the stock untouched.
func (l *Ledger) CheckAvailable(name string, quantity int) error {
	beer, ok := l.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if beer.Quantity < quantity {
		return fmt.Errorf("%w for %s", ErrInsufficientStock, name)
	}
	return nil
}

// Price returns the current unit price of a beer, or 0 if the beer is unknown.
// The zero fallback mirrors how individual dues treat beers that have left the
// catalog.
func (l *Ledger) Price(name string) int {
	if beer, ok := l.byName[name]; ok {
		return beer.Price
	}
	return 0
}

// Snapshot returns a read-only copy of the full stock.
func (l *Ledger) Snapshot() models.Stock {
	beers := make([]models.Beer, len(l.beers))
	for i, b := range l.beers {
		beers[i] = *b
	}
	return models.Stock{LastUpdated: l.lastUpdated, Beers: beers}
}
