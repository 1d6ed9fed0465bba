package entity

import (
	"time"
)

// Product represents a product in the catalog. Products are immutable
// reference data for the lifetime of the process.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discount_price,omitempty"`
	Images        []string  `json:"images"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Rating        float64   `json:"rating"`
	Stock         int       `json:"stock"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
}

// DisplayPrice returns the discount price when one is set, otherwise the
// base price. This is the price a customer actually pays.
func (p Product) DisplayPrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// CartItem is a line in a cart or an order. Product is a denormalized
// snapshot taken at add-time.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// CartSession is the persisted shape of a cart: the selected items in
// insertion order plus the slide-over panel flag.
type CartSession struct {
	Items  []CartItem `json:"items"`
	IsOpen bool       `json:"is_open"`
}

// User represents a customer account.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"` // "admin" or "user"
	Avatar string `json:"avatar,omitempty"`
}

// AuthSession is the persisted shape of the signed-in identity.
type AuthSession struct {
	User          *User `json:"user"`
	Authenticated bool  `json:"is_authenticated"`
}

// Address is a shipping address collected at checkout.
type Address struct {
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

// Order statuses.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Order represents a customer order.
type Order struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	Items             []CartItem `json:"items"`
	Status            string     `json:"status"`
	TotalAmount       float64    `json:"total_amount"`
	ShippingAddress   Address    `json:"shipping_address"`
	PaymentMethod     string     `json:"payment_method"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	TrackingNumber    string     `json:"tracking_number,omitempty"`
}

// Sort keys accepted by the listing pipeline.
const (
	SortLatest       = "latest"
	SortPriceLowHigh = "price-low-high"
	SortPriceHighLow = "price-high-low"
	SortPopular      = "popular"
)

// FilterCriteria is the set of user-chosen constraints used to derive a
// product listing. Zero values mean "no constraint".
type FilterCriteria struct {
	Search     string   `json:"search"`
	Categories []string `json:"categories"`
	MinPrice   *float64 `json:"min_price,omitempty"`
	MaxPrice   *float64 `json:"max_price,omitempty"`
	Sort       string   `json:"sort"`
	Tags       []string `json:"tags"`
}
