package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shopease/storefront/internal/service"
)

// NewRouter wires every core operation onto the HTTP surface. The handlers are
// presentation glue only; all state rules live in the service.
func NewRouter(svc *service.Storefront, requestTimeout time.Duration) http.Handler {
	productHandler := NewProductHandler(svc, requestTimeout)
	cartHandler := NewCartHandler(svc, requestTimeout)
	wishlistHandler := NewWishlistHandler(svc, requestTimeout)
	ordersHandler := NewOrdersHandler(svc, requestTimeout)
	currencyHandler := NewCurrencyHandler(svc, requestTimeout)
	catalogHandler := NewCatalogHandler(svc, requestTimeout)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", productHandler.List)
		r.Get("/products/{name}", productHandler.Get)
		r.Get("/categories", productHandler.Categories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Post("/items", cartHandler.AddItem)
			r.Post("/items/{name}/decrement", cartHandler.DecrementItem)
			r.Delete("/items/{name}", cartHandler.RemoveItem)
		})
		r.Post("/checkout", cartHandler.Checkout)

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlistHandler.Get)
			r.Post("/toggle", wishlistHandler.Toggle)
		})

		r.Get("/orders", ordersHandler.List)

		r.Route("/currency", func(r chi.Router) {
			r.Get("/", currencyHandler.Get)
			r.Put("/", currencyHandler.Set)
		})

		r.Post("/catalog/refresh", catalogHandler.Refresh)
	})

	return r
}
