package http

import (
	"context"
	"net/http"
	"time"

	"github.com/shopease/storefront/internal/currency"
	"github.com/shopease/storefront/internal/domain"
	"github.com/shopease/storefront/internal/service"
)

type OrdersHandler struct {
	svc     *service.Storefront
	timeout time.Duration
}

func NewOrdersHandler(svc *service.Storefront, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{svc: svc, timeout: timeout}
}

type OrderLineResponse struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderResponse struct {
	ID           int64               `json:"id"`
	CreatedAt    time.Time           `json:"created_at"`
	Status       domain.OrderStatus  `json:"status"`
	Lines        []OrderLineResponse `json:"lines"`
	Total        float64             `json:"total"`
	DisplayTotal string              `json:"display_total"`
}

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orders, err := h.svc.Orders(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	cur := h.svc.Currency()
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o, cur)
	}
	respondJSON(w, http.StatusOK, &OrdersResponse{Orders: out})
}

func toOrderResponse(o domain.Order, cur domain.Currency) OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineResponse{
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
		}
	}
	return OrderResponse{
		ID:           o.ID,
		CreatedAt:    o.CreatedAt,
		Status:       o.Status,
		Lines:        lines,
		Total:        o.Total,
		DisplayTotal: currency.Format(o.Total, cur),
	}
}
