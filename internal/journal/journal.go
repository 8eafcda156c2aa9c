// Package journal records notable service events (orders, rejected payments,
// exhausted stock, catalog fetches) in an append-only log.
//
// The journal is a fire-and-forget side channel: the in-memory tab never reads
// from it and never depends on a write succeeding.
package journal

import "context"

// Levels used by journal entries.
const (
	LevelInfo  = "INFO"
	LevelError = "ERROR"
)

// Entry is one recorded event.
type Entry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string `json:"id"`

	// Level is LevelInfo or LevelError.
	Level string `json:"level"`

	// Message is the human-readable event description.
	Message string `json:"message"`

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64 `json:"created_at"`
}

// Journal is the interface for event recording backends.
type Journal interface {
	// Record appends an entry. Failures are logged, never returned; callers
	// must not depend on the write for correctness.
	Record(ctx context.Context, level, message string)

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)

	// Close releases any resources held by the journal.
	Close() error
}

// Nop is a Journal that discards everything. Used in tests.
type Nop struct{}

func (Nop) Record(context.Context, string, string) {}

func (Nop) Recent(context.Context, int) ([]Entry, error) { return nil, nil }

func (Nop) Close() error { return nil }
