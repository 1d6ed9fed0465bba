package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/luxeshop/storefront/internal/admin"
	"github.com/luxeshop/storefront/internal/auth"
	"github.com/luxeshop/storefront/internal/cart"
	"github.com/luxeshop/storefront/internal/catalog"
	"github.com/luxeshop/storefront/internal/config"
	delivery "github.com/luxeshop/storefront/internal/delivery/http"
	"github.com/luxeshop/storefront/internal/messaging"
	"github.com/luxeshop/storefront/internal/order"
	"github.com/luxeshop/storefront/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(logLevel(cfg.LogLevel))

	// --- Session storage ---
	var store session.Store
	if cfg.DataDir != "" {
		store, err = session.NewFileStore(cfg.DataDir)
		if err != nil {
			slog.Error("Failed to init session store", "err", err)
			os.Exit(1)
		}
	} else {
		store = session.NewMemoryStore()
	}

	// --- Event bus ---
	bus := messaging.NewBus(slog.Default())
	defer bus.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Stores and services ---
	cat := catalog.New(catalog.Seed())
	cartSession := cart.New(store, bus)
	authSession := auth.New(auth.SeedUsers(), store, bus, cfg.SimulatedLatency)
	orders := order.New(order.Seed(cat.ByID), bus, cfg.SimulatedLatency)
	dashboard := admin.NewDashboard(cat, orders)

	// Subscribers must attach before the first publish; the in-process bus
	// does not replay.

	// Consumer: orders.placed → admin dashboard projection
	go bus.Consume(ctx, messaging.TopicOrdersPlaced, dashboard.HandleOrderPlaced)

	// Consumers: cart and auth events → notification log (the toast analog)
	go bus.Consume(ctx, messaging.TopicCartEvents, logEvent("cart"))
	go bus.Consume(ctx, messaging.TopicAuthEvents, logEvent("auth"))

	// --- HTTP API ---
	handler := delivery.NewHandler(cat, cartSession, authSession, orders, dashboard)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: delivery.EnableCORS(mux),
	}

	go func() {
		slog.Info("HTTP server starting", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")
	httpServer.Shutdown(context.Background())
}

// logEvent returns a consumer that surfaces domain events as log lines, the
// server-side stand-in for the UI's toast notifications.
func logEvent(source string) func(ctx context.Context, payload []byte) error {
	return func(ctx context.Context, payload []byte) error {
		var event map[string]any
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		slog.Info("Event received", "source", source, "event", event)
		return nil
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
