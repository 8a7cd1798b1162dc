package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shopease/storefront/internal/catalog"
	"github.com/shopease/storefront/internal/currency"
	"github.com/shopease/storefront/internal/domain"
	"github.com/shopease/storefront/internal/service"
)

type ProductHandler struct {
	svc     *service.Storefront
	timeout time.Duration
}

func NewProductHandler(svc *service.Storefront, timeout time.Duration) *ProductHandler {
	return &ProductHandler{svc: svc, timeout: timeout}
}

type ProductResponse struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	DisplayPrice string   `json:"display_price"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	Gallery      []string `json:"gallery,omitempty"`
	Wishlisted   bool     `json:"wishlisted"`
}

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Currency domain.Currency   `json:"currency"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// List serves the browsing view: search, category filter and sort are passed
// explicitly so the core stays UI-agnostic.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := catalog.Query{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		Sort:     catalog.SortKey(params.Get("sort")),
	}

	cur := h.svc.Currency()
	wishlisted := wishlistIndex(h.svc)

	products := h.svc.Catalog().Query(q)
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p, cur, wishlisted)
	}

	respondJSON(w, http.StatusOK, &ProductsResponse{Products: out, Currency: cur})
}

// Get serves the product-details view.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "product name is required")
		return
	}

	p, ok := h.svc.Catalog().Get(name)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found in catalog")
		return
	}

	resp := toProductResponse(p, h.svc.Currency(), wishlistIndex(h.svc))
	respondJSON(w, http.StatusOK, &resp)
}

// Categories serves the distinct category list for the filter control.
func (h *ProductHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &CategoriesResponse{Categories: h.svc.Catalog().Categories()})
}

func toProductResponse(p domain.Product, cur domain.Currency, wishlisted map[string]bool) ProductResponse {
	return ProductResponse{
		Name:         p.Name,
		Price:        p.Price,
		DisplayPrice: currency.Format(p.Price, cur),
		Description:  p.Description,
		Image:        p.Image,
		Category:     p.Category,
		Gallery:      p.Gallery,
		Wishlisted:   wishlisted[p.Name],
	}
}

func wishlistIndex(svc *service.Storefront) map[string]bool {
	entries := svc.Wishlist()
	idx := make(map[string]bool, len(entries))
	for _, p := range entries {
		idx[p.Name] = true
	}
	return idx
}
