package journal

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}
	defer j.Close()

	ctx := context.Background()

	t.Run("Recent on empty journal", func(t *testing.T) {
		entries, err := j.Recent(ctx, 10)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected no entries, got %d", len(entries))
		}
	})

	t.Run("Record and Recent", func(t *testing.T) {
		j.Record(ctx, LevelInfo, "order placed: 2 purchase(s)")
		j.Record(ctx, LevelError, "payment rejected (equal): no friends found")
		j.Record(ctx, LevelInfo, "bill fully paid")

		entries, err := j.Recent(ctx, 10)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}

		messages := make(map[string]string)
		for _, e := range entries {
			if e.ID == "" {
				t.Error("expected entry ID to be generated")
			}
			if e.CreatedAt == 0 {
				t.Error("expected CreatedAt to be set")
			}
			messages[e.Message] = e.Level
		}
		if messages["payment rejected (equal): no friends found"] != LevelError {
			t.Errorf("unexpected levels: %v", messages)
		}
	})

	t.Run("Recent honors the limit", func(t *testing.T) {
		entries, err := j.Recent(ctx, 2)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("expected 2 entries, got %d", len(entries))
		}
	})
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "journal.db")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open journal in nested directory: %v", err)
	}
	j.Close()
}
