package entity

import "time"

// Event represents a domain event.
type Event interface {
	EventType() string
}

// --- Cart events ---
//
// Quantity replacement is intentionally silent: setting a new count on an
// existing line persists the cart but publishes nothing. Only additions,
// removals (including a quantity dropping to zero), and clears emit.

// ItemAddedToCart is emitted when a user drops an item into their cart.
type ItemAddedToCart struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

func (e ItemAddedToCart) EventType() string { return "ItemAddedToCart" }

// ItemRemovedFromCart is emitted when a line leaves the cart, either by an
// explicit remove or by the quantity dropping to zero.
type ItemRemovedFromCart struct {
	ProductID string `json:"product_id"`
}

func (e ItemRemovedFromCart) EventType() string { return "ItemRemovedFromCart" }

// CartCleared is emitted when the cart is emptied in one go.
type CartCleared struct{}

func (e CartCleared) EventType() string { return "CartCleared" }

// --- Auth events ---

// UserLoggedIn is emitted on a successful login.
type UserLoggedIn struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (e UserLoggedIn) EventType() string { return "UserLoggedIn" }

// UserRegistered is emitted when a new account is fabricated.
type UserRegistered struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (e UserRegistered) EventType() string { return "UserRegistered" }

// UserLoggedOut is emitted when the session is cleared.
type UserLoggedOut struct {
	UserID string `json:"user_id"`
}

func (e UserLoggedOut) EventType() string { return "UserLoggedOut" }

// --- Order events ---

// OrderPlaced is emitted when an order is successfully placed.
type OrderPlaced struct {
	OrderID     string     `json:"order_id"`
	UserID      string     `json:"user_id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	PlacedAt    time.Time  `json:"placed_at"`
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }
