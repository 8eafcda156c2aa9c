// Package books integrates with the New York Times best-sellers API: fetching
// lists by genre, caching results deduplicated by book URI, and retrying
// failed fetches in the background.
//
// The package is a collaborator of the tab service, not part of it; nothing
// here touches the order or the ledgers.
package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/mverab/cantina/internal/journal"
)

// DefaultBaseURL is the production NYT books API endpoint.
const DefaultBaseURL = "https://api.nytimes.com/svc/books/v3"

// Book is one best-seller entry. Books are deduplicated by URI across fetches.
type Book struct {
	BookURI     string `json:"book_uri"`
	Rank        int    `json:"rank"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	AmazonURL   string `json:"amazon_url"`
}

// Genre is one best-seller list name.
type Genre struct {
	ListName        string `json:"list_name"`
	DisplayName     string `json:"display_name"`
	ListNameEncoded string `json:"list_name_encoded"`
	Updated         string `json:"updated"`
}

// Client fetches and caches NYT best-seller data.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	journal journal.Journal

	mu     sync.Mutex
	books  map[string]Book // keyed by book URI
	genres []Genre
}

// NewClient creates a client for the given API base URL and key.
func NewClient(baseURL, apiKey string, j journal.Journal) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		journal: j,
		books:   make(map[string]Book),
	}
}

// nytBook matches the wire format of one book entry.
type nytBook struct {
	BookURI          string `json:"book_uri"`
	Rank             int    `json:"rank"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	Description      string `json:"description"`
	AmazonProductURL string `json:"amazon_product_url"`
}

type booksResponse struct {
	Results struct {
		Books []nytBook `json:"books"`
	} `json:"results"`
}

type genresResponse struct {
	Results []Genre `json:"results"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	u := fmt.Sprintf("%s%s?api-key=%s", c.baseURL, path, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// FetchBooks retrieves the current best-seller list for a genre and merges it
// into the cache. Returns the full cache contents after the merge.
func (c *Client) FetchBooks(ctx context.Context, genre string) ([]Book, error) {
	var payload booksResponse
	path := fmt.Sprintf("/lists/current/%s.json", url.PathEscape(genre))
	if err := c.get(ctx, path, &payload); err != nil {
		c.journal.Record(ctx, journal.LevelError, fmt.Sprintf("error fetching books for genre %q: %v", genre, err))
		return nil, err
	}

	c.mu.Lock()
	for _, b := range payload.Results.Books {
		c.books[b.BookURI] = Book{
			BookURI:     b.BookURI,
			Rank:        b.Rank,
			Title:       b.Title,
			Author:      b.Author,
			Description: b.Description,
			AmazonURL:   b.AmazonProductURL,
		}
	}
	c.mu.Unlock()

	c.journal.Record(ctx, journal.LevelInfo,
		fmt.Sprintf("books found for genre %q: %d", genre, len(payload.Results.Books)))
	return c.CachedBooks(), nil
}

// FetchGenres retrieves the list of best-seller list names and caches it.
func (c *Client) FetchGenres(ctx context.Context) ([]Genre, error) {
	var payload genresResponse
	if err := c.get(ctx, "/lists/names.json", &payload); err != nil {
		c.journal.Record(ctx, journal.LevelError, fmt.Sprintf("error fetching genres: %v", err))
		return nil, err
	}

	c.mu.Lock()
	c.genres = payload.Results
	c.mu.Unlock()

	c.journal.Record(ctx, journal.LevelInfo, fmt.Sprintf("genres fetched: %d", len(payload.Results)))
	return payload.Results, nil
}

// CachedBooks returns the cached books ordered by rank, then title.
func (c *Client) CachedBooks() []Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Book, 0, len(c.books))
	for _, b := range c.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// Reset clears the book cache.
func (c *Client) Reset() {
	c.mu.Lock()
	c.books = make(map[string]Book)
	c.mu.Unlock()
	c.journal.Record(context.Background(), journal.LevelInfo, "books cache reset")
}
