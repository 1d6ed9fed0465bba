package catalog

import (
	"time"

	"github.com/luxeshop/storefront/internal/entity"
)

// Seed returns the demo catalog.
func Seed() []entity.Product {
	return []entity.Product{
		{
			ID:            "1",
			Name:          "Premium Wireless Headphones",
			Description:   "Experience premium sound quality with our wireless headphones featuring active noise cancellation and 30-hour battery life.",
			Price:         299.99,
			DiscountPrice: discounted(249.99),
			Images: []string{
				"https://images.pexels.com/photos/577769/pexels-photo-577769.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category:  "Electronics",
			Tags:      []string{"headphones", "wireless", "premium"},
			Rating:    4.8,
			Stock:     45,
			Featured:  true,
			CreatedAt: time.Date(2023, time.May, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			Name:          "Smart Fitness Tracker",
			Description:   "Track your fitness goals with our advanced fitness tracker. Features heart rate monitoring, sleep tracking, and smartphone notifications.",
			Price:         129.99,
			DiscountPrice: discounted(99.99),
			Images: []string{
				"https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/4498482/pexels-photo-4498482.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category:  "Electronics",
			Tags:      []string{"fitness", "tracker", "smart"},
			Rating:    4.5,
			Stock:     78,
			Featured:  true,
			CreatedAt: time.Date(2023, time.June, 22, 14, 45, 0, 0, time.UTC),
		},
		{
			ID:            "3",
			Name:          "Designer Leather Backpack",
			Description:   "Stylish and functional leather backpack perfect for work or leisure. Features multiple compartments and durable construction.",
			Price:         199.99,
			DiscountPrice: discounted(159.99),
			Images: []string{
				"https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/934673/pexels-photo-934673.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category:  "Fashion",
			Tags:      []string{"backpack", "leather", "designer"},
			Rating:    4.7,
			Stock:     32,
			Featured:  false,
			CreatedAt: time.Date(2023, time.July, 5, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:            "4",
			Name:          "Ultra HD Smart TV - 55\"",
			Description:   "Experience stunning 4K resolution with our smart TV. Features built-in streaming apps and voice control.",
			Price:         799.99,
			DiscountPrice: discounted(699.99),
			Images: []string{
				"https://images.pexels.com/photos/9969230/pexels-photo-9969230.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/6316063/pexels-photo-6316063.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category:  "Electronics",
			Tags:      []string{"tv", "smart", "4k"},
			Rating:    4.6,
			Stock:     20,
			Featured:  true,
			CreatedAt: time.Date(2023, time.August, 10, 16, 20, 0, 0, time.UTC),
		},
		{
			ID:            "5",
			Name:          "Artisanal Coffee Maker",
			Description:   "Brew the perfect cup of coffee with our artisanal coffee maker. Features temperature control and timer functions.",
			Price:         149.99,
			DiscountPrice: discounted(129.99),
			Images: []string{
				"https://images.pexels.com/photos/6063229/pexels-photo-6063229.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/3551717/pexels-photo-3551717.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category:  "Home",
			Tags:      []string{"coffee", "kitchen", "appliance"},
			Rating:    4.9,
			Stock:     55,
			Featured:  false,
			CreatedAt: time.Date(2023, time.September, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			ID:            "6",
			Name:          "Professional DSLR Camera",
			Description:   "Capture stunning photos with our professional DSLR camera. Features high resolution sensor and 4K video capabilities.",
			Price:         1299.99,
			DiscountPrice: discounted(1199.99),
			Images: []string{
				"https://images.pexels.com/photos/1203803/pexels-photo-1203803.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/243757/pexels-photo-243757.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category:  "Electronics",
			Tags:      []string{"camera", "photography", "professional"},
			Rating:    4.8,
			Stock:     15,
			Featured:  true,
			CreatedAt: time.Date(2023, time.September, 20, 13, 35, 0, 0, time.UTC),
		},
		{
			ID:            "7",
			Name:          "Ergonomic Office Chair",
			Description:   "Work comfortably with our ergonomic office chair. Features adjustable height, lumbar support, and breathable mesh back.",
			Price:         249.99,
			DiscountPrice: discounted(199.99),
			Images: []string{
				"https://images.pexels.com/photos/1957478/pexels-photo-1957478.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/2082090/pexels-photo-2082090.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category:  "Furniture",
			Tags:      []string{"chair", "office", "ergonomic"},
			Rating:    4.5,
			Stock:     38,
			Featured:  false,
			CreatedAt: time.Date(2023, time.October, 5, 9, 45, 0, 0, time.UTC),
		},
		{
			ID:            "8",
			Name:          "Designer Sunglasses",
			Description:   "Protect your eyes in style with our designer sunglasses. Features polarized lenses and durable frame.",
			Price:         179.99,
			DiscountPrice: discounted(149.99),
			Images: []string{
				"https://images.pexels.com/photos/46710/pexels-photo-46710.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/701877/pexels-photo-701877.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category:  "Fashion",
			Tags:      []string{"sunglasses", "designer", "accessories"},
			Rating:    4.6,
			Stock:     60,
			Featured:  false,
			CreatedAt: time.Date(2023, time.October, 25, 14, 20, 0, 0, time.UTC),
		},
	}
}

func discounted(v float64) *float64 {
	return &v
}
