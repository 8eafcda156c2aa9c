package books

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverab/cantina/internal/journal"
)

func fakeNYT(t *testing.T, booksByGenre map[string][]map[string]any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /lists/current/{genre}", func(w http.ResponseWriter, r *http.Request) {
		genre := r.PathValue("genre")
		entries, ok := booksByGenre[genre]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": map[string]any{"books": entries},
		})
	})
	mux.HandleFunc("GET /lists/names.json", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"list_name": "Hardcover Fiction", "display_name": "Hardcover Fiction"},
				{"list_name": "Hardcover Nonfiction", "display_name": "Hardcover Nonfiction"},
			},
		})
	})
	return httptest.NewServer(mux)
}

func TestFetchBooksDeduplicatesByURI(t *testing.T) {
	srv := fakeNYT(t, map[string][]map[string]any{
		"hardcover-fiction.json": {
			{"book_uri": "nyt://book/1", "rank": 1, "title": "First", "author": "A", "amazon_product_url": "https://amazon.example/1"},
			{"book_uri": "nyt://book/2", "rank": 2, "title": "Second", "author": "B"},
		},
		"travel.json": {
			{"book_uri": "nyt://book/2", "rank": 1, "title": "Second", "author": "B"},
			{"book_uri": "nyt://book/3", "rank": 3, "title": "Third", "author": "C"},
		},
	})
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", journal.Nop{})
	ctx := context.Background()

	got, err := c.FetchBooks(ctx, "hardcover-fiction")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "https://amazon.example/1", got[0].AmazonURL)

	got, err = c.FetchBooks(ctx, "travel")
	require.NoError(t, err)
	assert.Len(t, got, 3, "book 2 appears in both lists but is cached once")

	// Rank ordering in the cache snapshot.
	ranks := []int{got[0].Rank, got[1].Rank, got[2].Rank}
	assert.Equal(t, []int{1, 1, 3}, ranks)

	c.Reset()
	assert.Empty(t, c.CachedBooks())
}

func TestFetchBooksUpstreamError(t *testing.T) {
	srv := fakeNYT(t, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", journal.Nop{})
	_, err := c.FetchBooks(context.Background(), "unknown-genre")
	require.Error(t, err)
	assert.Empty(t, c.CachedBooks())
}

func TestFetchGenres(t *testing.T) {
	srv := fakeNYT(t, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", journal.Nop{})
	genres, err := c.FetchGenres(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Hardcover Fiction", genres[0].ListName)
}

func TestFetcherRetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": map[string]any{"books": []map[string]any{
				{"book_uri": "nyt://book/1", "rank": 1, "title": "First", "author": "A"},
			}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", journal.Nop{})
	f := NewFetcher(c)
	f.wait = time.Millisecond

	f.FetchInBackground("hardcover-fiction")
	f.Wait()

	assert.Equal(t, int32(3), calls.Load())
	assert.Len(t, c.CachedBooks(), 1)
}

func TestFetcherGivesUpAfterThreeAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", journal.Nop{})
	f := NewFetcher(c)
	f.wait = time.Millisecond

	f.FetchInBackground("hardcover-fiction")
	f.Wait()

	assert.Equal(t, int32(3), calls.Load())
	assert.Empty(t, c.CachedBooks())
}
