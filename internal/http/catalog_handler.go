package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/shopease/storefront/internal/service"
)

type CatalogHandler struct {
	svc     *service.Storefront
	timeout time.Duration
}

func NewCatalogHandler(svc *service.Storefront, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{svc: svc, timeout: timeout}
}

type RefreshResponse struct {
	Products int `json:"products"`
}

// Refresh re-runs feed ingestion on demand. Concurrent calls are collapsed
// into one fetch; a failed fetch leaves the current catalog in place.
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	n, err := h.svc.RefreshCatalog(ctx)
	if err != nil {
		log.Printf("catalog refresh failed: %v", err)
		respondError(w, http.StatusBadGateway, "feed_unavailable", "catalog feed is unavailable")
		return
	}

	respondJSON(w, http.StatusOK, &RefreshResponse{Products: n})
}
