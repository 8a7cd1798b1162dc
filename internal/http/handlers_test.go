package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/storefront/internal/catalog"
	"github.com/shopease/storefront/internal/domain"
	"github.com/shopease/storefront/internal/events"
	"github.com/shopease/storefront/internal/repository"
	"github.com/shopease/storefront/internal/service"
	"github.com/shopease/storefront/internal/store"
)

func setupRouter(t *testing.T, products ...domain.Product) http.Handler {
	t.Helper()
	if products == nil {
		products = []domain.Product{
			{Name: "Mug", Price: 100, Category: "Home", Image: "mug.jpg"},
			{Name: "Lamp", Price: 250, Category: "Office", Image: "lamp.jpg"},
		}
	}
	svc := service.New(context.Background(), catalog.New(products), nil,
		repository.NewMemoryRepository(), store.NewMemoryStore(), events.NewLogPublisher())
	return NewRouter(svc, 5*time.Second)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, setupRouter(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListProducts(t *testing.T) {
	rec := doRequest(t, setupRouter(t), http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[ProductsResponse](t, rec)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, domain.CurrencyINR, resp.Currency)
	// Name sort is the default.
	assert.Equal(t, "Lamp", resp.Products[0].Name)
	assert.Equal(t, "INR 250", resp.Products[0].DisplayPrice)
}

func TestListProducts_SearchAndSort(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products?search=mu", "")
	resp := decode[ProductsResponse](t, rec)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Mug", resp.Products[0].Name)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/products?sort=price-high-low", "")
	resp = decode[ProductsResponse](t, rec)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "Lamp", resp.Products[0].Name)
}

func TestListProducts_EmptyCatalog(t *testing.T) {
	router := setupEmptyRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products?search=mug&category=Home", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ProductsResponse](t, rec)
	assert.Empty(t, resp.Products)
}

func TestGetProduct(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/Mug", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ProductResponse](t, rec)
	assert.Equal(t, "Mug", resp.Name)
	assert.Equal(t, 100.0, resp.Price)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/products/Teapot", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategories(t *testing.T) {
	rec := doRequest(t, setupRouter(t), http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[CategoriesResponse](t, rec)
	assert.Equal(t, []string{"Home", "Office"}, resp.Categories)
}

func TestCartFlow(t *testing.T) {
	router := setupRouter(t)

	// Empty cart to start.
	rec := doRequest(t, router, http.MethodGet, "/api/v1/cart/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[CartResponse](t, rec)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.Count)

	// Add twice, quantity accumulates.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/cart/items", `{"name":"Mug"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doRequest(t, router, http.MethodPost, "/api/v1/cart/items", `{"name":"Mug"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	cart = decode[CartResponse](t, rec)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 2, cart.Count)
	assert.Equal(t, 200.0, cart.Total)
	assert.Equal(t, "INR 200", cart.DisplayTotal)

	// Decrement, then remove.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/cart/items/Mug/decrement", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decode[CartResponse](t, rec)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/cart/items/Mug", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decode[CartResponse](t, rec)
	assert.Empty(t, cart.Lines)
}

func TestAddCartItem_Errors(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", `{"name":"Teapot"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/cart/items", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/cart/items", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_WorkedExample(t *testing.T) {
	router := setupRouter(t)

	// Two mugs at 100 each, displayed in USD at 0.012.
	doRequest(t, router, http.MethodPost, "/api/v1/cart/items", `{"name":"Mug"}`)
	doRequest(t, router, http.MethodPost, "/api/v1/cart/items", `{"name":"Mug"}`)
	rec := doRequest(t, router, http.MethodPut, "/api/v1/currency/", `{"currency":"USD"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/cart/", "")
	cart := decode[CartResponse](t, rec)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "USD 2.40", cart.Lines[0].DisplayLineTotal)
	assert.Equal(t, "USD 2.40", cart.DisplayTotal)

	// Checkout keeps the total in base currency.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/checkout", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	order := decode[OrderResponse](t, rec)
	assert.Equal(t, 200.0, order.Total)
	assert.Equal(t, domain.OrderStatusPlaced, order.Status)

	// Cart is empty afterwards and the order is listed.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/cart/", "")
	cart = decode[CartResponse](t, rec)
	assert.Empty(t, cart.Lines)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/orders", "")
	orders := decode[OrdersResponse](t, rec)
	require.Len(t, orders.Orders, 1)
	assert.Equal(t, order.ID, orders.Orders[0].ID)
}

func TestCheckout_EmptyCart(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/checkout", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "empty_cart", resp.Code)
}

func TestWishlistToggle(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/wishlist/toggle", `{"name":"Mug"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	toggle := decode[ToggleResponse](t, rec)
	assert.True(t, toggle.Wishlisted)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/wishlist/", "")
	wishlist := decode[WishlistResponse](t, rec)
	require.Len(t, wishlist.Products, 1)
	assert.True(t, wishlist.Products[0].Wishlisted)

	// Products view reflects membership.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/products", "")
	products := decode[ProductsResponse](t, rec)
	for _, p := range products.Products {
		assert.Equal(t, p.Name == "Mug", p.Wishlisted)
	}

	// Toggle back off.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/wishlist/toggle", `{"name":"Mug"}`)
	toggle = decode[ToggleResponse](t, rec)
	assert.False(t, toggle.Wishlisted)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/wishlist/", "")
	wishlist = decode[WishlistResponse](t, rec)
	assert.Empty(t, wishlist.Products)
}

func TestCurrency(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/currency/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cur := decode[CurrencyResponse](t, rec)
	assert.Equal(t, domain.CurrencyINR, cur.Currency)

	rec = doRequest(t, router, http.MethodPut, "/api/v1/currency/", `{"currency":"GBP"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPut, "/api/v1/currency/", `{"currency":"DOGE"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "invalid_currency", resp.Code)

	// Failed switch leaves the previous selection.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/currency/", "")
	cur = decode[CurrencyResponse](t, rec)
	assert.Equal(t, domain.CurrencyGBP, cur.Currency)
}

func TestRequestIDHeader(t *testing.T) {
	rec := doRequest(t, setupRouter(t), http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func setupEmptyRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := service.New(context.Background(), catalog.New(nil), nil,
		repository.NewMemoryRepository(), store.NewMemoryStore(), events.NewLogPublisher())
	return NewRouter(svc, 5*time.Second)
}
