package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopease/storefront/internal/domain"
	"github.com/shopease/storefront/internal/service"
)

type WishlistHandler struct {
	svc     *service.Storefront
	timeout time.Duration
}

func NewWishlistHandler(svc *service.Storefront, timeout time.Duration) *WishlistHandler {
	return &WishlistHandler{svc: svc, timeout: timeout}
}

type ToggleRequestDTO struct {
	Name string `json:"name"`
}

type WishlistResponse struct {
	Products []ProductResponse `json:"products"`
	Currency domain.Currency   `json:"currency"`
}

type ToggleResponse struct {
	Name       string `json:"name"`
	Wishlisted bool   `json:"wishlisted"`
}

func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	cur := h.svc.Currency()
	entries := h.svc.Wishlist()

	out := make([]ProductResponse, len(entries))
	for i, p := range entries {
		out[i] = toProductResponse(p, cur, nil)
		out[i].Wishlisted = true
	}
	respondJSON(w, http.StatusOK, &WishlistResponse{Products: out, Currency: cur})
}

// Toggle is the single wishlist entry point: present removes, absent adds.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req ToggleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "product name is required")
		return
	}

	added, err := h.svc.ToggleWishlist(ctx, req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &ToggleResponse{Name: req.Name, Wishlisted: added})
}
