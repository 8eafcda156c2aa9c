package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mverab/cantina/internal/billing"
	"github.com/mverab/cantina/internal/books"
	"github.com/mverab/cantina/internal/config"
	"github.com/mverab/cantina/internal/inventory"
	"github.com/mverab/cantina/internal/journal"
	"github.com/mverab/cantina/internal/models"
	"github.com/mverab/cantina/internal/server"
	"github.com/mverab/cantina/internal/tab"
	"github.com/mverab/cantina/pkg/logging"
)

// seedStock is the initial inventory the service opens with.
var seedStock = []models.Beer{
	{Name: "Corona", Price: 115, Quantity: 5},
	{Name: "Quilmes", Price: 120, Quantity: 10},
	{Name: "Club Colombia", Price: 110, Quantity: 8},
}

func main() {
	logging.Setup()
	cfg := config.Load()

	jnl, err := journal.Open(cfg.JournalPath)
	if err != nil {
		slog.Error("failed to open journal", "path", cfg.JournalPath, "error", err)
		os.Exit(1)
	}
	defer jnl.Close()
	slog.Info("journal opened", "path", cfg.JournalPath)

	stock := inventory.NewLedger(seedStock...)
	session := tab.NewSession(stock, billing.RandomRates(), jnl)

	booksClient := books.NewClient(cfg.NYTBaseURL, cfg.NYTAPIKey, jnl)
	fetcher := books.NewFetcher(booksClient)

	srv := server.New(session, booksClient, fetcher, jnl)

	// h2c so the server speaks HTTP/2 without TLS.
	handler := h2c.NewHandler(srv.Handler(), &http2.Server{})
	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "address", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down", "timeout", cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	fetcher.Wait()
}
