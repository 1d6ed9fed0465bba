// Package http exposes the storefront state to the presentation layer as a
// JSON API.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/luxeshop/storefront/internal/admin"
	"github.com/luxeshop/storefront/internal/auth"
	"github.com/luxeshop/storefront/internal/cart"
	"github.com/luxeshop/storefront/internal/catalog"
	"github.com/luxeshop/storefront/internal/checkout"
	"github.com/luxeshop/storefront/internal/entity"
	"github.com/luxeshop/storefront/internal/format"
	"github.com/luxeshop/storefront/internal/listing"
	"github.com/luxeshop/storefront/internal/order"
)

// Handler handles HTTP requests for the storefront.
type Handler struct {
	catalog   *catalog.Store
	cart      *cart.Session
	auth      *auth.Session
	orders    *order.Service
	dashboard *admin.Dashboard
	validator *checkout.Validator
}

func NewHandler(
	cat *catalog.Store,
	cartSession *cart.Session,
	authSession *auth.Session,
	orders *order.Service,
	dashboard *admin.Dashboard,
) *Handler {
	return &Handler{
		catalog:   cat,
		cart:      cartSession,
		auth:      authSession,
		orders:    orders,
		dashboard: dashboard,
		validator: checkout.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.handleListProducts)
	mux.HandleFunc("GET /api/products/featured", h.handleFeaturedProducts)
	mux.HandleFunc("GET /api/products/{id}", h.handleGetProduct)
	mux.HandleFunc("GET /api/categories", h.handleListCategories)
	mux.HandleFunc("GET /api/tags", h.handleListTags)

	mux.HandleFunc("GET /api/cart", h.handleGetCart)
	mux.HandleFunc("POST /api/cart/items", h.handleAddToCart)
	mux.HandleFunc("PUT /api/cart/items/{id}", h.handleSetQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.handleRemoveFromCart)
	mux.HandleFunc("DELETE /api/cart", h.handleClearCart)
	mux.HandleFunc("POST /api/cart/toggle", h.handleToggleCart)
	mux.HandleFunc("POST /api/cart/close", h.handleCloseCart)

	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)
	mux.HandleFunc("GET /api/auth/me", h.handleMe)

	mux.HandleFunc("GET /api/checkout/summary", h.handleCheckoutSummary)
	mux.HandleFunc("POST /api/checkout/validate", h.handleValidateStep)

	mux.HandleFunc("POST /api/orders", h.handlePlaceOrder)
	mux.HandleFunc("GET /api/orders", h.handleListOrders)
	mux.HandleFunc("GET /api/orders/{id}", h.handleGetOrder)

	mux.HandleFunc("GET /api/admin/stats", h.handleAdminStats)
}

// --- Products ---

// ProductView decorates a product with the display strings the UI renders:
// the formatted price, the card-sized description, and the discount badge
// percentage when a discount applies.
type ProductView struct {
	entity.Product
	PriceDisplay     string `json:"price_display"`
	DescriptionShort string `json:"description_short"`
	DiscountPercent  int    `json:"discount_percent,omitempty"`
}

func productView(p entity.Product) ProductView {
	v := ProductView{
		Product:          p,
		PriceDisplay:     format.Price(p.DisplayPrice()),
		DescriptionShort: format.Truncate(p.Description, 100),
	}
	if p.DiscountPrice != nil {
		v.DiscountPercent = format.DiscountPercent(p.Price, *p.DiscountPrice)
	}
	return v
}

func productViews(products []entity.Product) []ProductView {
	out := make([]ProductView, len(products))
	for i, p := range products {
		out[i] = productView(p)
	}
	return out
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r)
	products := listing.Apply(h.catalog.All(), criteria)
	writeJSON(w, http.StatusOK, productViews(products))
}

func (h *Handler) handleFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, productViews(h.catalog.Featured()))
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.catalog.ByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, productView(product))
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *Handler) handleListTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Tags())
}

func criteriaFromQuery(r *http.Request) entity.FilterCriteria {
	q := r.URL.Query()
	c := entity.FilterCriteria{
		Search:     q.Get("search"),
		Categories: q["category"],
		Sort:       q.Get("sort"),
		Tags:       q["tag"],
	}
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		c.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		c.MaxPrice = &v
	}
	return c
}

// --- Cart ---

// CartView is the cart as the UI consumes it: the lines plus the derived
// totals.
type CartView struct {
	Items           []entity.CartItem `json:"items"`
	IsOpen          bool              `json:"is_open"`
	Count           int               `json:"count"`
	Subtotal        float64           `json:"subtotal"`
	SubtotalDisplay string            `json:"subtotal_display"`
}

func (h *Handler) cartView() CartView {
	subtotal := h.cart.Subtotal()
	return CartView{
		Items:           h.cart.Items(),
		IsOpen:          h.cart.IsOpen(),
		Count:           h.cart.Count(),
		Subtotal:        subtotal,
		SubtotalDisplay: format.Price(subtotal),
	}
}

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartView())
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	if err := h.cart.Add(r.Context(), product, req.Quantity); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.cartView())
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.cart.SetQuantity(r.Context(), r.PathValue("id"), req.Quantity)
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Remove(r.Context(), r.PathValue("id"))
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) handleToggleCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Toggle()
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) handleCloseCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Close()
	writeJSON(w, http.StatusOK, h.cartView())
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, ok, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		slog.Error("Failed to log in", "err", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var form checkout.RegisterForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := h.validator.Register(form); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	user, err := h.auth.Register(r.Context(), form.Email, form.Password, form.Name)
	if err != nil {
		slog.Error("Failed to register", "err", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := h.auth.Current()
	if !ok {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// --- Checkout ---

// SummaryView decorates the order summary with its display strings. Free
// shipping renders as "Free", not "$0.00".
type SummaryView struct {
	order.Summary
	SubtotalDisplay string `json:"subtotal_display"`
	ShippingDisplay string `json:"shipping_display"`
	TaxDisplay      string `json:"tax_display"`
	TotalDisplay    string `json:"total_display"`
}

func summaryView(s order.Summary) SummaryView {
	shipping := format.Price(s.Shipping)
	if s.Shipping == 0 {
		shipping = "Free"
	}
	return SummaryView{
		Summary:         s,
		SubtotalDisplay: format.Price(s.Subtotal),
		ShippingDisplay: shipping,
		TaxDisplay:      format.Price(s.Tax),
		TotalDisplay:    format.Price(s.Total),
	}
}

func (h *Handler) handleCheckoutSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, summaryView(order.Summarize(h.cart.Items())))
}

// handleValidateStep validates one checkout step. A non-empty error map
// blocks progression to the next step.
func (h *Handler) handleValidateStep(w http.ResponseWriter, r *http.Request) {
	step := r.URL.Query().Get("step")

	var errs checkout.FieldErrors
	switch step {
	case "shipping":
		var form checkout.ShippingForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		errs = h.validator.Shipping(form)
	case "payment":
		var form checkout.PaymentForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		errs = h.validator.Payment(form)
	default:
		writeError(w, http.StatusBadRequest, "unknown checkout step")
		return
	}

	if len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"errors": errs})
}

// --- Orders ---

// OrderView decorates an order with the display strings of its total and
// dates.
type OrderView struct {
	entity.Order
	TotalDisplay             string `json:"total_display"`
	CreatedAtDisplay         string `json:"created_at_display"`
	EstimatedDeliveryDisplay string `json:"estimated_delivery_display,omitempty"`
}

func orderView(o entity.Order) OrderView {
	v := OrderView{
		Order:            o,
		TotalDisplay:     format.Price(o.TotalAmount),
		CreatedAtDisplay: format.Date(o.CreatedAt),
	}
	if o.EstimatedDelivery != nil {
		v.EstimatedDeliveryDisplay = format.Date(*o.EstimatedDelivery)
	}
	return v
}

func orderViews(orders []entity.Order) []OrderView {
	out := make([]OrderView, len(orders))
	for i, o := range orders {
		out[i] = orderView(o)
	}
	return out
}

type placeOrderRequest struct {
	Shipping checkout.ShippingForm `json:"shipping"`
	Payment  checkout.PaymentForm  `json:"payment"`
}

func (h *Handler) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	errs := h.validator.Shipping(req.Shipping)
	for field, msg := range h.validator.Payment(req.Payment) {
		errs[field] = msg
	}
	if len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	items := h.cart.Items()
	if len(items) == 0 {
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	var userID string
	if user, ok := h.auth.Current(); ok {
		userID = user.ID
	}

	shipTo := entity.Address{
		FullName:     req.Shipping.FullName,
		AddressLine1: req.Shipping.AddressLine1,
		AddressLine2: req.Shipping.AddressLine2,
		City:         req.Shipping.City,
		State:        req.Shipping.State,
		PostalCode:   req.Shipping.PostalCode,
		Country:      req.Shipping.Country,
		Phone:        req.Shipping.Phone,
	}

	ord, err := h.orders.Place(r.Context(), userID, items, shipTo, "credit_card")
	if err != nil {
		slog.Error("Failed to place order", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	h.cart.Clear(r.Context())
	writeJSON(w, http.StatusCreated, orderView(ord))
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := h.auth.Current()
	if !ok {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	writeJSON(w, http.StatusOK, orderViews(h.orders.ByUser(user.ID)))
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	ord, ok := h.orders.ByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, orderView(ord))
}

// --- Admin ---

func (h *Handler) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	user, ok := h.auth.Current()
	if !ok || user.Role != "admin" {
		writeError(w, http.StatusForbidden, "admin access required")
		return
	}
	writeJSON(w, http.StatusOK, h.dashboard.Snapshot())
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// EnableCORS is a middleware to allow the browser frontend to connect.
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
