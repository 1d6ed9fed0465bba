// Package order places mock orders and answers queries over the order
// history for the current session.
package order

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luxeshop/storefront/internal/entity"
	"github.com/luxeshop/storefront/internal/messaging"
)

// Order totals: shipping is free above this subtotal, otherwise flat rate;
// tax is a flat fraction of the subtotal.
const (
	freeShippingThreshold = 100.0
	flatShippingRate      = 10.0
	taxRate               = 0.08
)

// Summary breaks an order total into its parts.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Summarize computes the order summary for a set of cart items.
func Summarize(items []entity.CartItem) Summary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Product.DisplayPrice() * float64(item.Quantity)
	}

	shipping := flatShippingRate
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * taxRate

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Service keeps the order list in memory. Orders placed during the session
// are appended but never persisted; only the cart and auth snapshots
// survive a restart.
type Service struct {
	mu        sync.Mutex
	orders    []entity.Order
	publisher messaging.Publisher
	latency   time.Duration
	now       func() time.Time
	newID     func() string
}

// New creates a Service seeded with the given orders. publisher may be nil.
// latency simulates the "processing" delay of order placement.
func New(seed []entity.Order, publisher messaging.Publisher, latency time.Duration) *Service {
	return &Service{
		orders:    seed,
		publisher: publisher,
		latency:   latency,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Place creates an order from the given cart items. Placement always
// succeeds once the input is non-empty; there is no failure path for the
// simulated payment, matching the reference behavior.
func (s *Service) Place(ctx context.Context, userID string, items []entity.CartItem, shipTo entity.Address, paymentMethod string) (entity.Order, error) {
	if len(items) == 0 {
		return entity.Order{}, fmt.Errorf("order must have at least one item")
	}

	if err := s.wait(ctx); err != nil {
		return entity.Order{}, err
	}

	summary := Summarize(items)
	now := s.now()
	delivery := now.AddDate(0, 0, 5)

	ord := entity.Order{
		ID:                s.newID(),
		UserID:            userID,
		Items:             items,
		Status:            entity.OrderPending,
		TotalAmount:       summary.Total,
		ShippingAddress:   shipTo,
		PaymentMethod:     paymentMethod,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: &delivery,
	}

	s.mu.Lock()
	s.orders = append(s.orders, ord)
	s.mu.Unlock()

	slog.Info("Order placed", "order_id", ord.ID, "user_id", userID, "total", ord.TotalAmount)

	if s.publisher != nil {
		event := entity.OrderPlaced{
			OrderID:     ord.ID,
			UserID:      userID,
			Items:       items,
			TotalAmount: ord.TotalAmount,
			PlacedAt:    now,
		}
		if err := s.publisher.PublishEvent(ctx, messaging.TopicOrdersPlaced, ord.ID, event); err != nil {
			slog.Error("Failed to publish OrderPlaced event", "order_id", ord.ID, "err", err)
		}
	}

	return ord, nil
}

// ByUser returns the orders belonging to userID, newest first.
func (s *Service) ByUser(userID string) []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out
}

// ByID returns the order with the given id, if present.
func (s *Service) ByID(id string) (entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Order{}, false
}

// Recent returns the latest orders, newest first.
func (s *Service) Recent(limit int) []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sortNewestFirst(orders []entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
