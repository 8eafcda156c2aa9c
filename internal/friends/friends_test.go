package friends

import (
	"errors"
	"math"
	"testing"
)

func TestEnsureIsIdempotent(t *testing.T) {
	l := NewLedger()

	first := l.Ensure("Alice")
	second := l.Ensure("Alice")
	if first != second {
		t.Error("Ensure must return the same friend on repeated calls")
	}
	if l.Count() != 1 {
		t.Errorf("Count() = %d, want 1", l.Count())
	}
}

func TestCredit(t *testing.T) {
	l := NewLedger()
	l.Ensure("Alice")

	if err := l.Credit("Alice", 36.33); err != nil {
		t.Fatalf("Credit() failed: %v", err)
	}
	if err := l.Credit("Alice", 10); err != nil {
		t.Fatalf("Credit() failed: %v", err)
	}
	if got := l.Balance("Alice"); math.Abs(got-46.33) > 0.001 {
		t.Errorf("Balance(Alice) = %v, want 46.33", got)
	}

	if err := l.Credit("Bob", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("Credit(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestTotalPaid(t *testing.T) {
	l := NewLedger()
	l.Ensure("Alice")
	l.Ensure("Bob")
	_ = l.Credit("Alice", 50)
	_ = l.Credit("Bob", 25.5)

	if got := l.TotalPaid(); math.Abs(got-75.5) > 0.001 {
		t.Errorf("TotalPaid() = %v, want 75.5", got)
	}
}

func TestAllPreservesFirstSeenOrder(t *testing.T) {
	l := NewLedger()
	for _, name := range []string{"Carol", "Alice", "Bob"} {
		l.Ensure(name)
	}
	l.Ensure("Alice")

	all := l.All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d friends, want 3", len(all))
	}
	for i, want := range []string{"Carol", "Alice", "Bob"} {
		if all[i].Name != want {
			t.Errorf("All()[%d] = %s, want %s", i, all[i].Name, want)
		}
	}
}
