package order

import (
	"time"

	"github.com/luxeshop/storefront/internal/entity"
)

// ProductLookup resolves a product id to its catalog record. Satisfied by
// the catalog store's ByID.
type ProductLookup func(id string) (entity.Product, bool)

// Seed returns the demo order history. Line items are hydrated with product
// snapshots from the catalog; ids absent from the catalog are skipped.
func Seed(lookup ProductLookup) []entity.Order {
	johnDoe := entity.Address{
		FullName:     "John Doe",
		AddressLine1: "123 Main St",
		City:         "San Francisco",
		State:        "CA",
		PostalCode:   "94105",
		Country:      "USA",
		Phone:        "555-123-4567",
	}

	return []entity.Order{
		{
			ID:                "1",
			UserID:            "2",
			Items:             items(lookup, line{"1", 1}, line{"5", 2}),
			Status:            entity.OrderDelivered,
			TotalAmount:       529.97,
			ShippingAddress:   johnDoe,
			PaymentMethod:     "credit_card",
			CreatedAt:         time.Date(2023, time.November, 10, 10, 30, 0, 0, time.UTC),
			UpdatedAt:         time.Date(2023, time.November, 15, 15, 45, 0, 0, time.UTC),
			EstimatedDelivery: date(2023, time.November, 15),
			TrackingNumber:    "TRK123456789",
		},
		{
			ID:                "2",
			UserID:            "2",
			Items:             items(lookup, line{"4", 1}),
			Status:            entity.OrderShipped,
			TotalAmount:       699.99,
			ShippingAddress:   johnDoe,
			PaymentMethod:     "credit_card",
			CreatedAt:         time.Date(2023, time.December, 5, 14, 20, 0, 0, time.UTC),
			UpdatedAt:         time.Date(2023, time.December, 7, 9, 15, 0, 0, time.UTC),
			EstimatedDelivery: date(2023, time.December, 12),
			TrackingNumber:    "TRK987654321",
		},
	}
}

type line struct {
	productID string
	quantity  int
}

func items(lookup ProductLookup, lines ...line) []entity.CartItem {
	var out []entity.CartItem
	for _, l := range lines {
		p, ok := lookup(l.productID)
		if !ok {
			continue
		}
		out = append(out, entity.CartItem{ProductID: l.productID, Quantity: l.quantity, Product: p})
	}
	return out
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
