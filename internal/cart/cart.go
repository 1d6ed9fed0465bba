// Package cart maintains the shopping cart for the client session.
package cart

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/luxeshop/storefront/internal/entity"
	"github.com/luxeshop/storefront/internal/messaging"
	"github.com/luxeshop/storefront/internal/session"
)

// Session holds the cart items in insertion order plus the slide-over panel
// flag. Every mutation snapshots the state to the session store before
// returning. The mutex only guards against concurrent HTTP handlers; the
// cart is still logically single-writer.
type Session struct {
	mu        sync.Mutex
	items     []entity.CartItem
	isOpen    bool
	store     session.Store
	publisher messaging.Publisher
}

// New creates a cart session, restoring any snapshot previously saved to
// store. publisher may be nil, in which case no events are emitted.
func New(store session.Store, publisher messaging.Publisher) *Session {
	s := &Session{store: store, publisher: publisher}

	var snap entity.CartSession
	found, err := store.Load(session.CartKey, &snap)
	if err != nil {
		slog.Error("Failed to restore cart snapshot", "err", err)
	}
	if found {
		s.items = snap.Items
		s.isOpen = snap.IsOpen
	}
	return s
}

// Add puts quantity units of product into the cart. If a line for the
// product already exists its quantity is incremented, otherwise a new line
// is appended with a snapshot of the product.
func (s *Session) Add(ctx context.Context, product entity.Product, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, entity.CartItem{
			ProductID: product.ID,
			Quantity:  quantity,
			Product:   product,
		})
	}

	s.persist()
	s.publish(ctx, entity.ItemAddedToCart{
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.DisplayPrice(),
	})
	return nil
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op.
func (s *Session) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.removeLocked(productID) {
		return
	}
	s.persist()
	s.publish(ctx, entity.ItemRemovedFromCart{ProductID: productID})
}

// SetQuantity replaces the stored quantity for productID. A quantity of
// zero or below removes the line. Setting a positive quantity on an absent
// product is a no-op; it never creates a line. A plain replacement persists
// the cart but publishes no event (see entity/events.go).
func (s *Session) SetQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		if s.removeLocked(productID) {
			s.persist()
			s.publish(ctx, entity.ItemRemovedFromCart{ProductID: productID})
		}
		return
	}

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart.
func (s *Session) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
	s.publish(ctx, entity.CartCleared{})
}

// Toggle flips the slide-over panel flag.
func (s *Session) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isOpen = !s.isOpen
	s.persist()
}

// Close hides the slide-over panel.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isOpen = false
	s.persist()
}

// Items returns the cart lines in insertion order.
func (s *Session) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// IsOpen reports whether the slide-over panel is showing.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Count returns the total number of units across all lines.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Subtotal is derived, never stored: the sum over items of the display
// price times quantity.
func (s *Session) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Product.DisplayPrice() * float64(item.Quantity)
	}
	return total
}

// Snapshot returns the persisted shape of the session.
func (s *Session) Snapshot() entity.CartSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) removeLocked(productID string) bool {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Session) snapshotLocked() entity.CartSession {
	items := make([]entity.CartItem, len(s.items))
	copy(items, s.items)
	return entity.CartSession{Items: items, IsOpen: s.isOpen}
}

// persist writes the snapshot to the session store. Storage writes are
// fire-and-forget: a failure is logged and the in-memory state stays
// authoritative.
func (s *Session) persist() {
	if err := s.store.Save(session.CartKey, s.snapshotLocked()); err != nil {
		slog.Error("Failed to persist cart snapshot", "err", err)
	}
}

func (s *Session) publish(ctx context.Context, event entity.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, messaging.TopicCartEvents, event.EventType(), event); err != nil {
		slog.Error("Failed to publish cart event", "event", event.EventType(), "err", err)
	}
}
