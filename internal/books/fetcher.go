package books

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	fetchAttempts = 3
	fetchWait     = 5 * time.Second
)

// Fetcher runs book fetches in the background with a fixed retry policy:
// up to 3 attempts, 5 seconds apart.
type Fetcher struct {
	client *Client
	wait   time.Duration
	wg     sync.WaitGroup
}

// NewFetcher creates a background fetcher for the given client.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client, wait: fetchWait}
}

// FetchInBackground schedules a retried fetch of the given genre and returns
// immediately.
func (f *Fetcher) FetchInBackground(genre string) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()

		policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(f.wait), fetchAttempts-1)
		err := backoff.Retry(func() error {
			books, err := f.client.FetchBooks(context.Background(), genre)
			if err != nil {
				slog.Warn("book fetch attempt failed", "genre", genre, "error", err)
				return err
			}
			slog.Info("books processed", "genre", genre, "cached", len(books))
			return nil
		}, policy)
		if err != nil {
			slog.Error("book fetch gave up", "genre", genre, "attempts", fetchAttempts, "error", err)
		}
	}()
}

// Wait blocks until all scheduled fetches have finished. Used in tests and
// during shutdown.
func (f *Fetcher) Wait() {
	f.wg.Wait()
}
