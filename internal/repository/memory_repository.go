package repository

import (
	"context"
	"sync"

	"github.com/shopease/storefront/internal/domain"
)

// MemoryRepository keeps order history in process memory, newest first. Used
// when no database path is configured and as the test double.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) SaveOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append([]domain.Order{*order}, r.orders...)
	return nil
}

func (r *MemoryRepository) ListOrders(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
