package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shopease/storefront/internal/currency"
	"github.com/shopease/storefront/internal/domain"
	"github.com/shopease/storefront/internal/service"
)

type CartHandler struct {
	svc     *service.Storefront
	timeout time.Duration
}

func NewCartHandler(svc *service.Storefront, timeout time.Duration) *CartHandler {
	return &CartHandler{svc: svc, timeout: timeout}
}

type AddItemRequestDTO struct {
	Name string `json:"name"`
}

type CartLineResponse struct {
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	LineTotal        float64 `json:"line_total"`
	DisplayLineTotal string  `json:"display_line_total"`
}

type CartResponse struct {
	Lines        []CartLineResponse `json:"lines"`
	Count        int                `json:"count"`
	Total        float64            `json:"total"`
	DisplayTotal string             `json:"display_total"`
	Currency     domain.Currency    `json:"currency"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "product name is required")
		return
	}

	if _, err := h.svc.AddToCart(ctx, req.Name); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, h.cartResponse())
}

func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "product name is required")
		return
	}

	h.svc.DecrementOrRemove(ctx, name)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "product name is required")
		return
	}

	h.svc.RemoveLine(ctx, name)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	order, err := h.svc.Checkout(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	log.Printf("order %d placed, request-id %s", order.ID, getRequestID(r.Context()))
	respondJSON(w, http.StatusCreated, toOrderResponse(*order, h.svc.Currency()))
}

func (h *CartHandler) cartResponse() *CartResponse {
	cur := h.svc.Currency()
	lines := h.svc.Cart()

	out := make([]CartLineResponse, len(lines))
	count := 0
	total := 0.0
	for i, line := range lines {
		lineTotal := line.LineTotal()
		out[i] = CartLineResponse{
			Name:             line.Product.Name,
			Image:            line.Product.Image,
			Quantity:         line.Quantity,
			UnitPrice:        line.Product.Price,
			LineTotal:        lineTotal,
			DisplayLineTotal: currency.Format(lineTotal, cur),
		}
		count += line.Quantity
		total += lineTotal
	}

	return &CartResponse{
		Lines:        out,
		Count:        count,
		Total:        total,
		DisplayTotal: currency.Format(total, cur),
		Currency:     cur,
	}
}
