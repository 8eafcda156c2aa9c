// Package friends owns the participants discovered from purchases and their
// running paid balances.
//
// Like the inventory ledger, it relies on tab.Session for serialization.
package friends

import (
	"errors"
	"fmt"

	"github.com/mverab/cantina/internal/models"
)

// ErrNotFound is returned when crediting a friend that was never seen on a purchase.
var ErrNotFound = errors.New("friend not found")

// Ledger tracks friends by name in first-seen order.
type Ledger struct {
	order  []string
	byName map[string]*models.Friend
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{byName: make(map[string]*models.Friend)}
}

// Ensure returns the friend with the given name, creating it with a zero
// balance on first sight.
func (l *Ledger) Ensure(name string) *models.Friend {
	if f, ok := l.byName[name]; ok {
		return f
	}
	f := &models.Friend{Name: name}
	l.byName[name] = f
	l.order = append(l.order, name)
	return f
}

// Exists reports whether a friend has been seen on any purchase.
func (l *Ledger) Exists(name string) bool {
	_, ok := l.byName[name]
	return ok
}

// Credit adds amount to a friend's balance. The caller guarantees the amount
// is non-negative.
func (l *Ledger) Credit(name string, amount float64) error {
	f, ok := l.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	f.Balance += amount
	return nil
}

// Balance returns a friend's current paid balance, 0 for unknown names.
func (l *Ledger) Balance(name string) float64 {
	if f, ok := l.byName[name]; ok {
		return f.Balance
	}
	return 0
}

// TotalPaid sums all friends' balances.
func (l *Ledger) TotalPaid() float64 {
	var total float64
	for _, f := range l.byName {
		total += f.Balance
	}
	return total
}

// Count returns the number of friends on the tab.
func (l *Ledger) Count() int {
	return len(l.byName)
}

// All returns a snapshot of every friend in first-seen order.
func (l *Ledger) All() []models.Friend {
	out := make([]models.Friend, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, *l.byName[name])
	}
	return out
}
