// Package admin maintains the dashboard stats projection. Counters start
// from the demo baseline and move as order events arrive on the bus.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/luxeshop/storefront/internal/catalog"
	"github.com/luxeshop/storefront/internal/entity"
	"github.com/luxeshop/storefront/internal/order"
)

// Products with stock below this count as low stock on the dashboard.
const lowStockThreshold = 10

// CategorySales is one slice of the sales-by-category breakdown.
type CategorySales struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Stats is the dashboard snapshot.
type Stats struct {
	TotalSales      float64         `json:"total_sales"`
	TotalOrders     int             `json:"total_orders"`
	TotalCustomers  int             `json:"total_customers"`
	LowStockCount   int             `json:"low_stock_count"`
	SalesByCategory []CategorySales `json:"sales_by_category"`
	RecentOrders    []entity.Order  `json:"recent_orders"`
}

// Dashboard projects order events onto the admin counters.
type Dashboard struct {
	mu          sync.Mutex
	totalSales  float64
	totalOrders int

	customers int
	catalog   *catalog.Store
	orders    *order.Service
}

// NewDashboard creates the projection with the demo baseline counters.
func NewDashboard(cat *catalog.Store, orders *order.Service) *Dashboard {
	return &Dashboard{
		totalSales:  12589.99,
		totalOrders: 128,
		customers:   85,
		catalog:     cat,
		orders:      orders,
	}
}

// HandleOrderPlaced consumes an OrderPlaced payload from the bus and rolls
// it into the counters.
func (d *Dashboard) HandleOrderPlaced(ctx context.Context, payload []byte) error {
	var event entity.OrderPlaced
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to unmarshal OrderPlaced event: %w", err)
	}

	d.mu.Lock()
	d.totalOrders++
	d.totalSales += event.TotalAmount
	d.mu.Unlock()

	slog.Info("Projection: order rolled into dashboard", "order_id", event.OrderID, "total", event.TotalAmount)
	return nil
}

// Snapshot returns the current dashboard stats.
func (d *Dashboard) Snapshot() Stats {
	d.mu.Lock()
	sales := d.totalSales
	count := d.totalOrders
	customers := d.customers
	d.mu.Unlock()

	lowStock := 0
	for _, p := range d.catalog.All() {
		if p.Stock < lowStockThreshold {
			lowStock++
		}
	}

	return Stats{
		TotalSales:     sales,
		TotalOrders:    count,
		TotalCustomers: customers,
		LowStockCount:  lowStock,
		SalesByCategory: []CategorySales{
			{Name: "Electronics", Value: 65},
			{Name: "Fashion", Value: 20},
			{Name: "Home", Value: 10},
			{Name: "Other", Value: 5},
		},
		RecentOrders: d.orders.Recent(10),
	}
}
