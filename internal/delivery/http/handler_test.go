package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxeshop/storefront/internal/admin"
	"github.com/luxeshop/storefront/internal/auth"
	"github.com/luxeshop/storefront/internal/cart"
	"github.com/luxeshop/storefront/internal/catalog"
	"github.com/luxeshop/storefront/internal/entity"
	"github.com/luxeshop/storefront/internal/order"
	"github.com/luxeshop/storefront/internal/session"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store := session.NewMemoryStore()
	cat := catalog.New(catalog.Seed())
	cartSession := cart.New(store, nil)
	authSession := auth.New(auth.SeedUsers(), store, nil, 0)
	orders := order.New(order.Seed(cat.ByID), nil, 0)
	dashboard := admin.NewDashboard(cat, orders)

	mux := http.NewServeMux()
	NewHandler(cat, cartSession, authSession, orders, dashboard).RegisterRoutes(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestListProductsWithSort(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/products?sort=price-low-high", "")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decode[[]entity.Product](t, rec)
	require.Len(t, products, 8)
	assert.Equal(t, "2", products[0].ID)
	assert.Equal(t, "6", products[7].ID)
}

func TestListProductsWithFilters(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/products?category=Electronics&max_price=500", "")
	products := decode[[]entity.Product](t, rec)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Electronics", p.Category)
	}
}

func TestGetProductNotFound(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/products/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductViewCarriesDisplayFields(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decode[ProductView](t, rec)
	assert.Equal(t, "$249.99", view.PriceDisplay)
	assert.Equal(t, 17, view.DiscountPercent)
	assert.NotEmpty(t, view.DescriptionShort)
}

func TestFeaturedProducts(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/products/featured", "")
	require.Equal(t, http.StatusOK, rec.Code)
	products := decode[[]entity.Product](t, rec)
	assert.Len(t, products, 4)
}

func TestCartAddUpdateRemove(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/cart/items", `{"product_id":"1","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[CartView](t, rec)
	assert.Equal(t, 2, view.Count)

	rec = do(t, mux, http.MethodPut, "/api/cart/items/1", `{"quantity":5}`)
	view = decode[CartView](t, rec)
	assert.Equal(t, 5, view.Count)
	assert.InDelta(t, 5*249.99, view.Subtotal, 0.001)
	assert.Equal(t, "$1,249.95", view.SubtotalDisplay)

	rec = do(t, mux, http.MethodDelete, "/api/cart/items/1", "")
	view = decode[CartView](t, rec)
	assert.Empty(t, view.Items)
}

func TestCartAddUnknownProduct(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/cart/items", `{"product_id":"999","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogin(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/auth/login", `{"email":"nobody@x.com","password":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, mux, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"anything"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decode[entity.User](t, rec)
	assert.Equal(t, "admin", user.Role)

	rec = do(t, mux, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/auth/register",
		`{"name":"New","email":"new@example.com","password":"123","confirm_password":"123"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[map[string]map[string]string](t, rec)
	assert.Equal(t, "Password must be at least 6 characters", body["errors"]["password"])

	rec = do(t, mux, http.MethodPost, "/api/auth/register",
		`{"name":"New","email":"new@example.com","password":"123456","confirm_password":"123456"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestValidateCheckoutStep(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/checkout/validate?step=payment",
		`{"card_name":"John","card_number":"1234","expiry_date":"12/25","cvv":"123"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[map[string]map[string]string](t, rec)
	assert.Equal(t, "Invalid card number", body["errors"]["card_number"])
}

func TestCheckoutSummaryFormatsTotals(t *testing.T) {
	mux := newTestMux(t)

	do(t, mux, http.MethodPost, "/api/cart/items", `{"product_id":"2","quantity":2}`)

	rec := do(t, mux, http.MethodGet, "/api/checkout/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decode[SummaryView](t, rec)
	assert.Equal(t, "$199.98", view.SubtotalDisplay)
	assert.Equal(t, "Free", view.ShippingDisplay)
	assert.Equal(t, "$215.98", view.TotalDisplay)
}

func TestPlaceOrderFlow(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, mux, http.MethodPost, "/api/cart/items", `{"product_id":"2","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := `{
		"shipping": {
			"full_name": "John Doe",
			"email": "john@example.com",
			"phone": "555-123-4567",
			"address_line1": "123 Main St",
			"city": "San Francisco",
			"state": "ca",
			"postal_code": "94105",
			"country": "us"
		},
		"payment": {
			"card_name": "John Doe",
			"card_number": "4242 4242 4242 4242",
			"expiry_date": "12/25",
			"cvv": "123"
		}
	}`
	rec = do(t, mux, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	ord := decode[OrderView](t, rec)
	assert.Equal(t, entity.OrderPending, ord.Status)
	// 2 x 99.99 ships free, plus 8% tax.
	assert.InDelta(t, 199.98*1.08, ord.TotalAmount, 0.001)
	assert.Equal(t, "$215.98", ord.TotalDisplay)
	assert.NotEmpty(t, ord.EstimatedDeliveryDisplay)

	// Placing the order clears the cart.
	rec = do(t, mux, http.MethodGet, "/api/cart", "")
	view := decode[CartView](t, rec)
	assert.Empty(t, view.Items)

	// The order shows up in the user's history.
	rec = do(t, mux, http.MethodGet, "/api/orders", "")
	orders := decode[[]entity.Order](t, rec)
	require.NotEmpty(t, orders)
	assert.Equal(t, ord.ID, orders[0].ID)
}

func TestPlaceOrderRejectsInvalidPayment(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/cart/items", `{"product_id":"1","quantity":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := `{
		"shipping": {
			"full_name": "John Doe",
			"email": "john@example.com",
			"phone": "555-123-4567",
			"address_line1": "123 Main St",
			"city": "San Francisco",
			"postal_code": "94105"
		},
		"payment": {"card_name": "John Doe", "card_number": "1234", "expiry_date": "12/25", "cvv": "123"}
	}`
	rec = do(t, mux, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// The cart is untouched on a validation failure.
	rec = do(t, mux, http.MethodGet, "/api/cart", "")
	view := decode[CartView](t, rec)
	assert.Len(t, view.Items, 1)
}

func TestPlaceOrderWithEmptyCart(t *testing.T) {
	mux := newTestMux(t)

	payload := `{
		"shipping": {
			"full_name": "John Doe",
			"email": "john@example.com",
			"phone": "555-123-4567",
			"address_line1": "123 Main St",
			"city": "San Francisco",
			"postal_code": "94105"
		},
		"payment": {"card_name": "John Doe", "card_number": "4242424242424242", "expiry_date": "12/25", "cvv": "123"}
	}`
	rec := do(t, mux, http.MethodPost, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminStatsRequiresAdmin(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/admin/stats", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	do(t, mux, http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"pw"}`)
	rec = do(t, mux, http.MethodGet, "/api/admin/stats", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	do(t, mux, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"pw"}`)
	rec = do(t, mux, http.MethodGet, "/api/admin/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[admin.Stats](t, rec)
	assert.Equal(t, 128, stats.TotalOrders)
}
