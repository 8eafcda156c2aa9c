package inventory

import (
	"errors"
	"testing"

	"github.com/mverab/cantina/internal/models"
)

func testLedger() *Ledger {
	return NewLedger(
		models.Beer{Name: "Corona", Price: 115, Quantity: 5},
		models.Beer{Name: "Quilmes", Price: 120, Quantity: 10},
	)
}

func TestReplenish(t *testing.T) {
	l := testLedger()

	l.Replenish([]models.StockItem{
		{Name: "Corona", Price: 999, Quantity: 3},
		{Name: "Club Colombia", Price: 110, Quantity: 8},
	})

	snap := l.Snapshot()
	if len(snap.Beers) != 3 {
		t.Fatalf("expected 3 beers, got %d", len(snap.Beers))
	}

	corona := snap.Beers[0]
	if corona.Quantity != 8 {
		t.Errorf("Corona quantity = %d, want 8", corona.Quantity)
	}
	if corona.Price != 115 {
		t.Errorf("replenish must not alter an existing beer's price, got %d", corona.Price)
	}

	club := snap.Beers[2]
	if club.Name != "Club Colombia" || club.Price != 110 || club.Quantity != 8 {
		t.Errorf("unexpected new beer: %+v", club)
	}
}

func TestReserve(t *testing.T) {
	tests := []struct {
		name     string
		beer     string
		quantity int
		wantErr  error
		price    int
	}{
		{name: "ok", beer: "Corona", quantity: 2, price: 115},
		{name: "exact remaining stock", beer: "Quilmes", quantity: 10, price: 120},
		{name: "unknown beer", beer: "Pilsen", quantity: 1, wantErr: ErrNotFound},
		{name: "exceeds stock", beer: "Corona", quantity: 6, wantErr: ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLedger()
			price, err := l.Reserve(tt.beer, tt.quantity)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Reserve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Reserve() failed: %v", err)
			}
			if price != tt.price {
				t.Errorf("Reserve() price = %d, want %d", price, tt.price)
			}
		})
	}
}

func TestReserveNeverGoesNegative(t *testing.T) {
	l := testLedger()

	reserved := 0
	for {
		if _, err := l.Reserve("Corona", 2); err != nil {
			if !errors.Is(err, ErrInsufficientStock) {
				t.Fatalf("unexpected error: %v", err)
			}
			break
		}
		reserved += 2
	}

	if reserved != 4 {
		t.Errorf("reserved %d units, want 4", reserved)
	}
	if got := l.Snapshot().Beers[0].Quantity; got != 1 {
		t.Errorf("Corona quantity = %d, want 1", got)
	}
}

func TestCheckAvailableDoesNotMutate(t *testing.T) {
	l := testLedger()

	if err := l.CheckAvailable("Corona", 5); err != nil {
		t.Fatalf("CheckAvailable() failed: %v", err)
	}
	if err := l.CheckAvailable("Corona", 6); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("CheckAvailable() error = %v, want ErrInsufficientStock", err)
	}
	if got := l.Snapshot().Beers[0].Quantity; got != 5 {
		t.Errorf("Corona quantity = %d, want 5", got)
	}
}

func TestPrice(t *testing.T) {
	l := testLedger()

	if got := l.Price("Quilmes"); got != 120 {
		t.Errorf("Price(Quilmes) = %d, want 120", got)
	}
	if got := l.Price("Pilsen"); got != 0 {
		t.Errorf("Price of unknown beer = %d, want 0", got)
	}
}
