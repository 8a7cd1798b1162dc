package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopease/storefront/internal/domain"
	"github.com/shopease/storefront/internal/service"
)

type CurrencyHandler struct {
	svc     *service.Storefront
	timeout time.Duration
}

func NewCurrencyHandler(svc *service.Storefront, timeout time.Duration) *CurrencyHandler {
	return &CurrencyHandler{svc: svc, timeout: timeout}
}

type CurrencyResponse struct {
	Currency domain.Currency `json:"currency"`
}

type SetCurrencyRequestDTO struct {
	Currency string `json:"currency"`
}

func (h *CurrencyHandler) Get(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &CurrencyResponse{Currency: h.svc.Currency()})
}

// Set switches the display currency. The client owns re-rendering every
// visible view afterwards; prices in all responses are already converted.
func (h *CurrencyHandler) Set(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req SetCurrencyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.svc.SetCurrency(ctx, domain.Currency(req.Currency)); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &CurrencyResponse{Currency: h.svc.Currency()})
}
